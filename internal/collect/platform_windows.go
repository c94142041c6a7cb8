//go:build windows

package collect

import (
	"fmt"
	"strings"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows/registry"
)

type win32Processor struct {
	Name string
}

type win32PhysicalMemory struct {
	Capacity      uint64
	Speed         uint32
	Manufacturer  string
	PartNumber    string
	DeviceLocator string
}

type win32VideoController struct {
	Name          string
	DriverVersion string
	AdapterRAM    uint32
}

type win32DiskDrive struct {
	Model         string
	Size          uint64
	InterfaceType string
}

type win32BaseBoard struct {
	Manufacturer string
	Product      string
	Version      string
	SerialNumber string
}

type win32BIOS struct {
	Manufacturer      string
	SMBIOSBIOSVersion string
}

type msAcpiThermalZoneTemperature struct {
	CurrentTemperature uint32
}

// windowsPlatform answers host-detail queries through WMI and the registry.
type windowsPlatform struct{}

func newPlatform() Platform {
	return windowsPlatform{}
}

func (windowsPlatform) CPUName() (string, error) {
	// Registry first, it answers even when the WMI service is wedged.
	k, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`HARDWARE\DESCRIPTION\System\CentralProcessor\0`, registry.QUERY_VALUE)
	if err == nil {
		name, _, verr := k.GetStringValue("ProcessorNameString")
		k.Close()
		if verr == nil && strings.TrimSpace(name) != "" {
			return strings.TrimSpace(name), nil
		}
	}

	var procs []win32Processor
	if err := wmi.Query("SELECT Name FROM Win32_Processor", &procs); err != nil {
		return "", err
	}
	if len(procs) == 0 || strings.TrimSpace(procs[0].Name) == "" {
		return "", fmt.Errorf("no processor rows")
	}
	return strings.TrimSpace(procs[0].Name), nil
}

func (windowsPlatform) MemoryModules() ([]MemoryModule, error) {
	var pm []win32PhysicalMemory
	q := "SELECT Capacity, Speed, Manufacturer, PartNumber, DeviceLocator FROM Win32_PhysicalMemory"
	if err := wmi.Query(q, &pm); err != nil {
		return nil, err
	}

	modules := make([]MemoryModule, 0, len(pm))
	for _, m := range pm {
		if m.Capacity == 0 {
			continue
		}
		modules = append(modules, MemoryModule{
			CapacityBytes: m.Capacity,
			SpeedMHz:      uint64(m.Speed),
			Manufacturer:  strings.TrimSpace(m.Manufacturer),
			PartNumber:    strings.TrimSpace(m.PartNumber),
			Slot:          strings.TrimSpace(m.DeviceLocator),
		})
	}
	return modules, nil
}

func (windowsPlatform) VideoControllers() ([]VideoController, error) {
	var vcs []win32VideoController
	q := "SELECT Name, DriverVersion, AdapterRAM FROM Win32_VideoController"
	if err := wmi.Query(q, &vcs); err != nil {
		return nil, err
	}

	controllers := make([]VideoController, 0, len(vcs))
	for _, vc := range vcs {
		if strings.TrimSpace(vc.Name) == "" {
			continue
		}
		controllers = append(controllers, VideoController{
			Name:          strings.TrimSpace(vc.Name),
			DriverVersion: strings.TrimSpace(vc.DriverVersion),
			MemoryBytes:   uint64(vc.AdapterRAM),
		})
	}
	return controllers, nil
}

func (windowsPlatform) PhysicalDisks() ([]PhysicalDisk, error) {
	var drives []win32DiskDrive
	q := "SELECT Model, Size, InterfaceType FROM Win32_DiskDrive"
	if err := wmi.Query(q, &drives); err != nil {
		return nil, err
	}

	disks := make([]PhysicalDisk, 0, len(drives))
	for _, d := range drives {
		if strings.TrimSpace(d.Model) == "" {
			continue
		}
		disks = append(disks, PhysicalDisk{
			Model:     strings.TrimSpace(d.Model),
			SizeBytes: d.Size,
			Interface: strings.TrimSpace(d.InterfaceType),
		})
	}
	return disks, nil
}

func (windowsPlatform) Baseboard() (Baseboard, error) {
	var boards []win32BaseBoard
	q := "SELECT Manufacturer, Product, Version, SerialNumber FROM Win32_BaseBoard"
	if err := wmi.Query(q, &boards); err != nil {
		return Baseboard{}, err
	}
	if len(boards) == 0 {
		return Baseboard{}, fmt.Errorf("no baseboard rows")
	}

	b := Baseboard{
		Manufacturer: strings.TrimSpace(boards[0].Manufacturer),
		Product:      strings.TrimSpace(boards[0].Product),
		Version:      strings.TrimSpace(boards[0].Version),
		SerialNumber: strings.TrimSpace(boards[0].SerialNumber),
	}
	if b.SerialNumber == "Default string" {
		b.SerialNumber = ""
	}
	if b.Manufacturer == "" && b.Product == "" {
		return Baseboard{}, fmt.Errorf("empty baseboard identity")
	}
	return b, nil
}

func (windowsPlatform) BIOS() (BIOSInfo, error) {
	var rows []win32BIOS
	if err := wmi.Query("SELECT Manufacturer, SMBIOSBIOSVersion FROM Win32_BIOS", &rows); err != nil {
		return BIOSInfo{}, err
	}
	if len(rows) == 0 {
		return BIOSInfo{}, fmt.Errorf("no BIOS rows")
	}
	info := BIOSInfo{
		Vendor:  strings.TrimSpace(rows[0].Manufacturer),
		Version: strings.TrimSpace(rows[0].SMBIOSBIOSVersion),
	}
	if info.Vendor == "" && info.Version == "" {
		return BIOSInfo{}, fmt.Errorf("empty BIOS identity")
	}
	return info, nil
}

func (windowsPlatform) ThermalZoneCelsius() (float64, error) {
	var zones []msAcpiThermalZoneTemperature
	q := "SELECT CurrentTemperature FROM MSAcpi_ThermalZoneTemperature"
	if err := wmi.QueryNamespace(q, &zones, `root\wmi`); err != nil {
		return 0, err
	}
	if len(zones) == 0 {
		return 0, fmt.Errorf("no thermal zone rows")
	}
	// Reported in tenths of Kelvin.
	return float64(zones[0].CurrentTemperature)/10 - 273.15, nil
}
