package collect

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/mamix14/SystemInfoTool/internal/report"
)

// StorageReport builds the storage detail block: mounted partitions with
// usage, lifetime disk I/O totals, and the physical drives behind them.
func (c *Collector) StorageReport(ctx context.Context) string {
	var b strings.Builder
	b.WriteString(title("STORAGE INFORMATION"))

	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		c.log.WithError(err).Debug("partition enumeration failed")
	}
	for _, p := range partitions {
		fmt.Fprintf(&b, "Device: %s\n", p.Device)
		fmt.Fprintf(&b, "  Mountpoint: %s\n", p.Mountpoint)
		fmt.Fprintf(&b, "  File System: %s\n", p.Fstype)

		if usage, err := disk.UsageWithContext(ctx, p.Mountpoint); err == nil {
			fmt.Fprintf(&b, "  Total: %s\n", report.HumanBytes(usage.Total))
			fmt.Fprintf(&b, "  Used: %s (%.1f%%)\n", report.HumanBytes(usage.Used), usage.UsedPercent)
			fmt.Fprintf(&b, "  Free: %s\n", report.HumanBytes(usage.Free))
		} else {
			b.WriteString("  (Permission denied)\n")
		}
		b.WriteString("\n")
	}

	if counters, err := disk.IOCountersWithContext(ctx); err == nil && len(counters) > 0 {
		var read, written uint64
		for _, io := range counters {
			read += io.ReadBytes
			written += io.WriteBytes
		}
		b.WriteString("Total Disk I/O:\n")
		fmt.Fprintf(&b, "  Read: %s\n", report.HumanBytes(read))
		fmt.Fprintf(&b, "  Written: %s\n\n", report.HumanBytes(written))
	}

	b.WriteString(FirstOf(ctx, "",
		Strategy{Name: "platform-disks", Probe: func(ctx context.Context) (string, error) {
			disks, err := c.platform.PhysicalDisks()
			if err != nil {
				return "", err
			}
			return formatPhysicalDisks(disks), nil
		}},
		Strategy{Name: "wmic-diskdrive", Probe: func(ctx context.Context) (string, error) {
			out, err := c.run.Run(ctx, c.cmdTimeout, "wmic", "diskdrive", "get",
				"model,size,interfacetype", "/format:list")
			if err != nil {
				return "", err
			}
			return formatPhysicalDisks(parseWmicDisks(out)), nil
		}},
	))

	return b.String()
}

func formatPhysicalDisks(disks []PhysicalDisk) string {
	if len(disks) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Physical Disks:\n")
	for _, d := range disks {
		fmt.Fprintf(&b, "\n  %s\n", d.Model)
		if d.SizeBytes > 0 {
			fmt.Fprintf(&b, "    Capacity: %s\n", report.HumanBytes(d.SizeBytes))
		}
		if d.Interface != "" {
			fmt.Fprintf(&b, "    Interface: %s\n", d.Interface)
		}
	}
	return b.String()
}

func parseWmicDisks(out string) []PhysicalDisk {
	var disks []PhysicalDisk
	for _, rec := range parseKeyValueList(out) {
		model := rec["Model"]
		if model == "" {
			continue
		}
		size, _ := strconv.ParseUint(rec["Size"], 10, 64)
		disks = append(disks, PhysicalDisk{
			Model:     model,
			SizeBytes: size,
			Interface: rec["InterfaceType"],
		})
	}
	return disks
}
