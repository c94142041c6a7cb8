package collect

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
)

// cpuName resolves the marketing name of the processor. The platform layer
// answers from the registry or WMI where it can; wmic and gopsutil cover the
// rest of the field.
func (c *Collector) cpuName(ctx context.Context) string {
	return FirstOf(ctx, "Unknown CPU",
		Strategy{Name: "platform", Probe: func(ctx context.Context) (string, error) {
			return c.platform.CPUName()
		}},
		Strategy{Name: "wmic-cpu", Probe: func(ctx context.Context) (string, error) {
			out, err := c.run.Run(ctx, c.cmdTimeout, "wmic", "cpu", "get", "name")
			if err != nil {
				return "", err
			}
			// First line is the column header.
			lines := strings.Split(out, "\n")
			if len(lines) < 2 {
				return "", fmt.Errorf("unexpected wmic output")
			}
			return strings.TrimSpace(lines[1]), nil
		}},
		Strategy{Name: "gopsutil", Probe: func(ctx context.Context) (string, error) {
			infos, err := cpu.InfoWithContext(ctx)
			if err != nil {
				return "", err
			}
			if len(infos) == 0 {
				return "", fmt.Errorf("no cpu info entries")
			}
			return strings.TrimSpace(infos[0].ModelName), nil
		}},
	)
}

// CPUReport builds the processor detail block, including a live per-core
// usage sample over the configured window.
func (c *Collector) CPUReport(ctx context.Context) string {
	var b strings.Builder
	b.WriteString(title("CPU INFORMATION"))

	fmt.Fprintf(&b, "Processor: %s\n", c.cpuName(ctx))
	fmt.Fprintf(&b, "Architecture: %s\n", runtime.GOARCH)

	physical, perr := cpu.CountsWithContext(ctx, false)
	logical, lerr := cpu.CountsWithContext(ctx, true)
	if perr == nil {
		fmt.Fprintf(&b, "Physical Cores: %d\n", physical)
	}
	if lerr == nil {
		fmt.Fprintf(&b, "Total Cores: %d\n", logical)
	}
	b.WriteString("\n")

	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 && infos[0].Mhz > 0 {
		fmt.Fprintf(&b, "Frequency: %.2f MHz\n\n", infos[0].Mhz)
	}

	perCore, err := cpu.PercentWithContext(ctx, c.sampleWindow, true)
	if err != nil || len(perCore) == 0 {
		b.WriteString("CPU usage unavailable\n")
		return b.String()
	}

	b.WriteString("CPU Usage Per Core:\n")
	total := 0.0
	for i, pct := range perCore {
		fmt.Fprintf(&b, "  Core %d: %.1f%%\n", i, pct)
		total += pct
	}
	fmt.Fprintf(&b, "\nTotal CPU Usage: %.1f%%\n", total/float64(len(perCore)))

	return b.String()
}
