package collect

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

// OSReport builds the operating-system detail block.
func (c *Collector) OSReport(ctx context.Context) string {
	var b strings.Builder
	b.WriteString(title("OPERATING SYSTEM"))

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		c.log.WithError(err).Debug("host info failed")
		fmt.Fprintf(&b, "System: %s\n", osName(runtime.GOOS))
		fmt.Fprintf(&b, "Machine: %s\n", runtime.GOARCH)
		return b.String()
	}

	fmt.Fprintf(&b, "System: %s\n", osName(info.OS))
	fmt.Fprintf(&b, "Node Name: %s\n", info.Hostname)
	fmt.Fprintf(&b, "Release: %s\n", info.KernelVersion)
	fmt.Fprintf(&b, "Version: %s\n", strings.TrimSpace(info.Platform+" "+info.PlatformVersion))
	fmt.Fprintf(&b, "Machine: %s\n", info.KernelArch)
	fmt.Fprintf(&b, "Processor: %s\n\n", c.cpuName(ctx))

	boot := time.Unix(int64(info.BootTime), 0)
	fmt.Fprintf(&b, "Boot Time: %s\n", boot.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Uptime: %s\n", formatUptime(info.Uptime))

	if info.VirtualizationSystem != "" {
		fmt.Fprintf(&b, "\nVirtualization: %s (%s)\n", info.VirtualizationSystem, info.VirtualizationRole)
	}

	return b.String()
}

// osName maps the lowercase runtime identifiers to display names.
func osName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "windows":
		return "Windows"
	case "darwin":
		return "Darwin"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	}
	if goos == "" {
		return "Unknown"
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}

func formatUptime(seconds uint64) string {
	d := time.Duration(seconds) * time.Second
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	minutes := (d % time.Hour) / time.Minute
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
