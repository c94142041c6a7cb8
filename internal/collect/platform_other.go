//go:build !windows

package collect

import (
	"fmt"
	"os"
	"strings"

	"github.com/jaypipes/ghw"
)

// dmiPath holds the fixed device-identification files exposed by the kernel.
const dmiPath = "/sys/devices/virtual/dmi/id/"

// unixPlatform answers host-detail queries through ghw and DMI sysfs reads.
type unixPlatform struct{}

func newPlatform() Platform {
	return unixPlatform{}
}

// readDMI returns the trimmed content of one DMI identification file, or ""
// when it is absent or unreadable.
func readDMI(name string) string {
	data, err := os.ReadFile(dmiPath + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (unixPlatform) CPUName() (string, error) {
	info, err := ghw.CPU(ghw.WithDisableWarnings())
	if err != nil {
		return "", err
	}
	if len(info.Processors) == 0 || strings.TrimSpace(info.Processors[0].Model) == "" {
		return "", fmt.Errorf("no processor entries")
	}
	return strings.TrimSpace(info.Processors[0].Model), nil
}

// MemoryModules has no portable per-DIMM source here; the memory report
// falls through to dmidecode.
func (unixPlatform) MemoryModules() ([]MemoryModule, error) {
	return nil, fmt.Errorf("per-module detail requires dmidecode on this platform")
}

func (unixPlatform) VideoControllers() ([]VideoController, error) {
	info, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return nil, err
	}

	controllers := make([]VideoController, 0, len(info.GraphicsCards))
	for _, card := range info.GraphicsCards {
		if card.DeviceInfo == nil {
			continue
		}
		name := ""
		if card.DeviceInfo.Vendor != nil {
			name = card.DeviceInfo.Vendor.Name
		}
		if card.DeviceInfo.Product != nil {
			name = strings.TrimSpace(name + " " + card.DeviceInfo.Product.Name)
		}
		if name == "" {
			continue
		}
		controllers = append(controllers, VideoController{Name: name})
	}
	if len(controllers) == 0 {
		return nil, fmt.Errorf("no graphics cards enumerated")
	}
	return controllers, nil
}

func (unixPlatform) PhysicalDisks() ([]PhysicalDisk, error) {
	info, err := ghw.Block(ghw.WithDisableWarnings())
	if err != nil {
		return nil, err
	}

	disks := make([]PhysicalDisk, 0, len(info.Disks))
	for _, d := range info.Disks {
		model := strings.TrimSpace(d.Model)
		if model == "" || model == "unknown" {
			continue
		}
		if vendor := strings.TrimSpace(d.Vendor); vendor != "" && vendor != "unknown" {
			model = vendor + " " + model
		}
		disks = append(disks, PhysicalDisk{
			Model:     model,
			SizeBytes: d.SizeBytes,
			Interface: d.StorageController.String(),
		})
	}
	if len(disks) == 0 {
		return nil, fmt.Errorf("no identifiable physical disks")
	}
	return disks, nil
}

func (unixPlatform) Baseboard() (Baseboard, error) {
	b := Baseboard{}

	if info, err := ghw.Baseboard(ghw.WithDisableWarnings()); err == nil {
		b.Manufacturer = cleanDMI(info.Vendor)
		b.Product = cleanDMI(info.Product)
		b.Version = cleanDMI(info.Version)
		b.SerialNumber = cleanDMI(info.SerialNumber)
	}

	// DMI sysfs as the direct fallback for fields ghw left blank.
	if b.Manufacturer == "" {
		b.Manufacturer = readDMI("board_vendor")
	}
	if b.Product == "" {
		b.Product = readDMI("board_name")
	}
	if b.Version == "" {
		b.Version = readDMI("board_version")
	}

	if b.Manufacturer == "" && b.Product == "" {
		return Baseboard{}, fmt.Errorf("baseboard identity unreadable")
	}
	return b, nil
}

func (unixPlatform) BIOS() (BIOSInfo, error) {
	info := BIOSInfo{}

	if bios, err := ghw.BIOS(ghw.WithDisableWarnings()); err == nil {
		info.Vendor = cleanDMI(bios.Vendor)
		info.Version = cleanDMI(bios.Version)
		info.Date = cleanDMI(bios.Date)
	}

	if info.Vendor == "" {
		info.Vendor = readDMI("bios_vendor")
	}
	if info.Version == "" {
		info.Version = readDMI("bios_version")
	}
	if info.Date == "" {
		info.Date = readDMI("bios_date")
	}

	if info.Vendor == "" && info.Version == "" {
		return BIOSInfo{}, fmt.Errorf("BIOS identity unreadable")
	}
	return info, nil
}

// ThermalZoneCelsius is Windows-only; gopsutil sensors cover this host.
func (unixPlatform) ThermalZoneCelsius() (float64, error) {
	return 0, fmt.Errorf("ACPI thermal zone query not available")
}

// cleanDMI drops ghw's "unknown" filler values.
func cleanDMI(s string) string {
	s = strings.TrimSpace(s)
	if s == "unknown" {
		return ""
	}
	return s
}
