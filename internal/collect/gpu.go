package collect

import (
	"context"
	"fmt"
	"strings"

	"github.com/mamix14/SystemInfoTool/internal/report"
)

// nvidiaQuery is the fixed field list asked of nvidia-smi; gpuFromCSV
// depends on this order.
const nvidiaQuery = "--query-gpu=name,driver_version,temperature.gpu,memory.total,memory.used,memory.free,utilization.gpu"

// GPUReport builds the graphics detail block. nvidia-smi gives the richest
// answer where present; the platform layer covers every other adapter.
func (c *Collector) GPUReport(ctx context.Context) string {
	var b strings.Builder
	b.WriteString(title("GPU INFORMATION"))

	found := false

	out, err := c.run.Run(ctx, c.cmdTimeout, "nvidia-smi", nvidiaQuery, "--format=csv,noheader,nounits")
	if err == nil && out != "" {
		b.WriteString("NVIDIA GPU(s):\n\n")
		for i, line := range strings.Split(out, "\n") {
			if block := gpuFromCSV(i, line); block != "" {
				b.WriteString(block)
				found = true
			}
		}
	} else if err != nil {
		c.log.WithError(err).Debug("nvidia-smi not usable")
	}

	if vcs, err := c.platform.VideoControllers(); err == nil && len(vcs) > 0 {
		if !found {
			b.WriteString("Detected GPU(s):\n\n")
		}
		for _, vc := range vcs {
			b.WriteString(vc.Name + "\n")
			if vc.DriverVersion != "" {
				fmt.Fprintf(&b, "  Driver: %s\n", vc.DriverVersion)
			}
			if vc.MemoryBytes > 0 {
				fmt.Fprintf(&b, "  Memory: %s\n", report.HumanBytes(vc.MemoryBytes))
			}
			b.WriteString("\n")
		}
		found = true
	}

	if !found {
		b.WriteString("No GPU information available\n")
	}
	return b.String()
}

// gpuFromCSV renders one nvidia-smi CSV row, or "" when the row is short.
func gpuFromCSV(index int, line string) string {
	parts := strings.Split(line, ",")
	if len(parts) < 7 {
		return ""
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "GPU %d: %s\n", index, parts[0])
	fmt.Fprintf(&b, "  Driver Version: %s\n", parts[1])
	fmt.Fprintf(&b, "  Temperature: %s°C\n", parts[2])
	fmt.Fprintf(&b, "  Memory Total: %s MB\n", parts[3])
	fmt.Fprintf(&b, "  Memory Used: %s MB\n", parts[4])
	fmt.Fprintf(&b, "  Memory Free: %s MB\n", parts[5])
	fmt.Fprintf(&b, "  GPU Utilization: %s%%\n\n", parts[6])
	return b.String()
}

// gpuNames answers the overview tab: adapter names only, one per line
// rendered by the caller.
func (c *Collector) gpuNames(ctx context.Context) []string {
	if out, err := c.run.Run(ctx, c.cmdTimeout, "nvidia-smi", "--query-gpu=name", "--format=csv,noheader"); err == nil && out != "" {
		var names []string
		for _, line := range strings.Split(out, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				names = append(names, line)
			}
		}
		if len(names) > 0 {
			return names
		}
	}

	vcs, err := c.platform.VideoControllers()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(vcs))
	for _, vc := range vcs {
		names = append(names, vc.Name)
	}
	return names
}
