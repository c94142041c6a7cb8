package collect

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/mamix14/SystemInfoTool/internal/report"
)

// SummaryReport builds the landing tab: scan timestamp plus a handful of
// headline facts.
func (c *Collector) SummaryReport(ctx context.Context, scanTime time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scan Date: %s\n\n", scanTime.Format("2006-01-02 15:04:05"))

	if info, err := host.InfoWithContext(ctx); err == nil {
		fmt.Fprintf(&b, "System: %s %s\n", osName(info.OS), info.KernelVersion)
	} else {
		fmt.Fprintf(&b, "System: %s\n", osName(runtime.GOOS))
	}
	fmt.Fprintf(&b, "Processor: %s\n", c.cpuName(ctx))

	physical, perr := cpu.CountsWithContext(ctx, false)
	logical, lerr := cpu.CountsWithContext(ctx, true)
	if perr == nil && lerr == nil {
		fmt.Fprintf(&b, "CPU Cores: %d Physical, %d Logical\n", physical, logical)
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		fmt.Fprintf(&b, "Total RAM: %s\n", report.HumanBytes(vm.Total))
	}

	if partitions, err := disk.PartitionsWithContext(ctx, false); err == nil {
		fmt.Fprintf(&b, "Storage Devices: %d\n", len(partitions))
	}

	b.WriteString("\n" + titleRule + "\n")
	b.WriteString("Click other tabs for detailed information")
	return b.String()
}

// ComponentsOverview builds the quick at-a-glance tab: just the names of the
// main components, one box-drawn block each.
func (c *Collector) ComponentsOverview(ctx context.Context) string {
	var b strings.Builder
	b.WriteString("ALL COMPONENTS - QUICK OVERVIEW\n")
	b.WriteString(wideRule + "\n\n")

	b.WriteString("┌─ PROCESSOR\n│\n")
	fmt.Fprintf(&b, "└─ %s\n", c.cpuName(ctx))
	physical, perr := cpu.CountsWithContext(ctx, false)
	logical, lerr := cpu.CountsWithContext(ctx, true)
	if perr == nil && lerr == nil {
		fmt.Fprintf(&b, "   • Cores: %d Physical / %d Logical\n", physical, logical)
	}
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 && infos[0].Mhz > 0 {
		fmt.Fprintf(&b, "   • Frequency: %.0f MHz\n", infos[0].Mhz)
	}
	b.WriteString("\n")

	b.WriteString("┌─ GRAPHICS CARD(S)\n│\n")
	if names := c.gpuNames(ctx); len(names) > 0 {
		for _, name := range names {
			fmt.Fprintf(&b, "└─ %s\n", name)
		}
	} else {
		b.WriteString("└─ No GPU detected\n")
	}
	b.WriteString("\n")

	b.WriteString("┌─ MEMORY (RAM)\n│\n")
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		fmt.Fprintf(&b, "└─ Total: %s\n", report.HumanBytes(vm.Total))
	} else {
		b.WriteString("└─ Unknown\n")
	}
	if modules, err := c.platform.MemoryModules(); err == nil {
		n := 0
		for _, m := range modules {
			if m.CapacityBytes == 0 {
				continue
			}
			n++
			fmt.Fprintf(&b, "   • Module %d: %s", n, report.HumanBytes(m.CapacityBytes))
			if m.SpeedMHz > 0 {
				fmt.Fprintf(&b, " @ %dMHz", m.SpeedMHz)
			}
			if m.Manufacturer != "" && m.Manufacturer != "Unknown" {
				fmt.Fprintf(&b, " (%s", m.Manufacturer)
				if m.PartNumber != "" {
					fmt.Fprintf(&b, " %s", m.PartNumber)
				}
				b.WriteString(")")
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString("┌─ MOTHERBOARD\n│\n")
	if board, err := c.platform.Baseboard(); err == nil {
		fmt.Fprintf(&b, "└─ %s\n", strings.TrimSpace(board.Manufacturer+" "+board.Product))
	} else {
		b.WriteString("└─ Unknown motherboard\n")
	}
	b.WriteString("\n")

	b.WriteString("┌─ STORAGE DEVICES\n│\n")
	if disks, err := c.platform.PhysicalDisks(); err == nil && len(disks) > 0 {
		for _, d := range disks {
			fmt.Fprintf(&b, "└─ %s", d.Model)
			if d.SizeBytes > 0 {
				fmt.Fprintf(&b, " (%s)", report.HumanBytes(d.SizeBytes))
			}
			b.WriteString("\n")
		}
	}
	if total := c.totalPartitionBytes(ctx); total > 0 {
		fmt.Fprintf(&b, "   • Total Storage: %s\n", report.HumanBytes(total))
	}
	b.WriteString("\n")

	b.WriteString("┌─ OPERATING SYSTEM\n│\n")
	if info, err := host.InfoWithContext(ctx); err == nil {
		fmt.Fprintf(&b, "└─ %s %s\n", osName(info.OS), info.KernelVersion)
		fmt.Fprintf(&b, "   • Version: %s\n", strings.TrimSpace(info.Platform+" "+info.PlatformVersion))
	} else {
		fmt.Fprintf(&b, "└─ %s\n", osName(runtime.GOOS))
	}

	b.WriteString("\n" + wideRule + "\n")
	b.WriteString("\n💡 Click other tabs for detailed specifications")
	return b.String()
}

func (c *Collector) totalPartitionBytes(ctx context.Context) uint64 {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return 0
	}
	var total uint64
	for _, p := range partitions {
		if usage, err := disk.UsageWithContext(ctx, p.Mountpoint); err == nil {
			total += usage.Total
		}
	}
	return total
}
