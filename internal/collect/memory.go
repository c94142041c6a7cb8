package collect

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/mamix14/SystemInfoTool/internal/report"
)

// MemoryReport builds the RAM detail block: live usage, per-module hardware
// detail where a source can supply it, and swap.
func (c *Collector) MemoryReport(ctx context.Context) string {
	var b strings.Builder
	b.WriteString(title("MEMORY INFORMATION"))

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		fmt.Fprintf(&b, "Total RAM: %s\n", report.HumanBytes(vm.Total))
		fmt.Fprintf(&b, "Available: %s\n", report.HumanBytes(vm.Available))
		fmt.Fprintf(&b, "Used: %s (%.1f%%)\n", report.HumanBytes(vm.Used), vm.UsedPercent)
		fmt.Fprintf(&b, "Free: %s\n", report.HumanBytes(vm.Free))
	} else {
		b.WriteString("Memory statistics unavailable\n")
	}

	b.WriteString("\n" + titleRule + "\n")
	b.WriteString("RAM MODULES:\n")
	b.WriteString(titleRule + "\n\n")

	b.WriteString(FirstOf(ctx, "RAM module details unavailable\n",
		Strategy{Name: "platform-modules", Probe: func(ctx context.Context) (string, error) {
			modules, err := c.platform.MemoryModules()
			if err != nil {
				return "", err
			}
			return formatModules(modules), nil
		}},
		Strategy{Name: "wmic-memorychip", Probe: func(ctx context.Context) (string, error) {
			out, err := c.run.Run(ctx, 2*c.cmdTimeout, "wmic", "memorychip", "get",
				"capacity,speed,manufacturer,partnumber,devicelocator", "/format:list")
			if err != nil {
				return "", err
			}
			return formatModules(parseWmicModules(out)), nil
		}},
		Strategy{Name: "dmidecode", Probe: func(ctx context.Context) (string, error) {
			out, err := c.run.Run(ctx, 2*c.cmdTimeout, "dmidecode", "--type", "17")
			if err != nil {
				return "", err
			}
			return formatModules(parseDmidecodeModules(out)), nil
		}},
	))

	if swap, err := mem.SwapMemoryWithContext(ctx); err == nil {
		b.WriteString("\nSwap Memory:\n")
		fmt.Fprintf(&b, "  Total: %s\n", report.HumanBytes(swap.Total))
		fmt.Fprintf(&b, "  Used: %s (%.1f%%)\n", report.HumanBytes(swap.Used), swap.UsedPercent)
		fmt.Fprintf(&b, "  Free: %s\n", report.HumanBytes(swap.Free))
	}

	return b.String()
}

// formatModules renders one numbered paragraph per installed module,
// omitting fields the source did not supply.
func formatModules(modules []MemoryModule) string {
	var b strings.Builder
	n := 0
	for _, m := range modules {
		if m.CapacityBytes == 0 {
			continue
		}
		n++
		fmt.Fprintf(&b, "Module %d:\n", n)
		fmt.Fprintf(&b, "  Capacity: %s\n", report.HumanBytes(m.CapacityBytes))
		if m.Manufacturer != "" {
			fmt.Fprintf(&b, "  Manufacturer: %s\n", m.Manufacturer)
		}
		if m.PartNumber != "" {
			fmt.Fprintf(&b, "  Part Number: %s\n", m.PartNumber)
		}
		if m.SpeedMHz > 0 {
			fmt.Fprintf(&b, "  Speed: %d MHz\n", m.SpeedMHz)
		}
		if m.Slot != "" {
			fmt.Fprintf(&b, "  Slot: %s\n", m.Slot)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func parseWmicModules(out string) []MemoryModule {
	var modules []MemoryModule
	for _, rec := range parseKeyValueList(out) {
		capacity, err := strconv.ParseUint(rec["Capacity"], 10, 64)
		if err != nil || capacity == 0 {
			continue
		}
		speed, _ := strconv.ParseUint(rec["Speed"], 10, 64)
		modules = append(modules, MemoryModule{
			CapacityBytes: capacity,
			SpeedMHz:      speed,
			Manufacturer:  rec["Manufacturer"],
			PartNumber:    rec["PartNumber"],
			Slot:          rec["DeviceLocator"],
		})
	}
	return modules
}

// parseDmidecodeModules reads `dmidecode --type 17` output. Each populated
// DIMM appears as an indented field block; empty banks report their size as
// "No Module Installed".
func parseDmidecodeModules(out string) []MemoryModule {
	var modules []MemoryModule
	var current *MemoryModule

	flush := func() {
		if current != nil && current.CapacityBytes > 0 {
			modules = append(modules, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Handle ") {
			flush()
			current = &MemoryModule{}
			continue
		}
		if current == nil {
			continue
		}
		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "Size":
			current.CapacityBytes = parseDmidecodeSize(value)
		case "Speed":
			if mhz, _, found := strings.Cut(value, " "); found {
				current.SpeedMHz, _ = strconv.ParseUint(mhz, 10, 64)
			}
		case "Manufacturer":
			if value != "Unknown" && value != "Not Specified" {
				current.Manufacturer = value
			}
		case "Part Number":
			if value != "Unknown" && value != "Not Specified" {
				current.PartNumber = value
			}
		case "Locator":
			current.Slot = value
		}
	}
	flush()
	return modules
}

// parseDmidecodeSize converts values like "8192 MB" or "16 GB" to bytes.
// Anything unparsable, including "No Module Installed", yields zero.
func parseDmidecodeSize(value string) uint64 {
	num, unit, ok := strings.Cut(value, " ")
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return 0
	}
	switch unit {
	case "KB":
		return n << 10
	case "MB":
		return n << 20
	case "GB":
		return n << 30
	case "TB":
		return n << 40
	}
	return 0
}
