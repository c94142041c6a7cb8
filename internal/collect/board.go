package collect

import (
	"context"
	"fmt"
	"strings"

	"github.com/distatus/battery"
	"github.com/shirou/gopsutil/v3/host"
)

// MotherboardReport builds the board detail block: baseboard identity,
// firmware, temperature sensors, and battery state.
func (c *Collector) MotherboardReport(ctx context.Context) string {
	var b strings.Builder
	b.WriteString(title("MOTHERBOARD INFORMATION"))

	b.WriteString(FirstOf(ctx, "Unavailable (may need root)\n",
		Strategy{Name: "platform-baseboard", Probe: func(ctx context.Context) (string, error) {
			board, err := c.platform.Baseboard()
			if err != nil {
				return "", err
			}
			return formatBaseboard(board), nil
		}},
		Strategy{Name: "dmidecode-baseboard", Probe: func(ctx context.Context) (string, error) {
			out, err := c.run.Run(ctx, c.cmdTimeout, "dmidecode", "--type", "baseboard")
			if err != nil {
				return "", err
			}
			return formatBaseboard(parseDmidecodeBaseboard(out)), nil
		}},
	))

	b.WriteString("\n" + thinRule + "\n")
	b.WriteString("BIOS Information:\n")
	b.WriteString(thinRule + "\n\n")

	if bios, err := c.platform.BIOS(); err == nil {
		if bios.Vendor != "" {
			fmt.Fprintf(&b, "Manufacturer: %s\n", bios.Vendor)
		}
		if bios.Version != "" {
			fmt.Fprintf(&b, "Version: %s\n", bios.Version)
		}
		if bios.Date != "" {
			fmt.Fprintf(&b, "Release Date: %s\n", bios.Date)
		}
	} else {
		c.log.WithError(err).Debug("BIOS query failed")
		b.WriteString("BIOS information unavailable\n")
	}

	b.WriteString("\n" + titleRule + "\n")
	b.WriteString("TEMPERATURE SENSORS\n")
	b.WriteString(titleRule + "\n\n")
	b.WriteString(c.temperatureBlock(ctx))

	b.WriteString("\n" + titleRule + "\n")
	b.WriteString("POWER / BATTERY\n")
	b.WriteString(titleRule + "\n\n")
	b.WriteString(batteryBlock())

	return b.String()
}

func formatBaseboard(board Baseboard) string {
	var b strings.Builder
	if board.Manufacturer != "" {
		fmt.Fprintf(&b, "Manufacturer: %s\n", board.Manufacturer)
	}
	if board.Product != "" {
		fmt.Fprintf(&b, "Model: %s\n", board.Product)
	}
	if board.Version != "" {
		fmt.Fprintf(&b, "Version: %s\n", board.Version)
	}
	if board.SerialNumber != "" {
		fmt.Fprintf(&b, "Serial Number: %s\n", board.SerialNumber)
	}
	return b.String()
}

func parseDmidecodeBaseboard(out string) Baseboard {
	board := Baseboard{}
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" || value == "Not Specified" {
			continue
		}
		switch key {
		case "Manufacturer":
			board.Manufacturer = value
		case "Product Name":
			board.Product = value
		case "Version":
			board.Version = value
		case "Serial Number":
			if value != "Default string" {
				board.SerialNumber = value
			}
		}
	}
	return board
}

func (c *Collector) temperatureBlock(ctx context.Context) string {
	if temps, err := host.SensorsTemperaturesWithContext(ctx); err == nil && len(temps) > 0 {
		var b strings.Builder
		for _, t := range temps {
			fmt.Fprintf(&b, "  %s: %.1f°C", t.SensorKey, t.Temperature)
			if t.High > 0 {
				fmt.Fprintf(&b, " (High: %.1f°C)", t.High)
			}
			if t.Critical > 0 {
				fmt.Fprintf(&b, " (Critical: %.1f°C)", t.Critical)
			}
			b.WriteString("\n")
		}
		return b.String()
	}

	if celsius, err := c.platform.ThermalZoneCelsius(); err == nil {
		return fmt.Sprintf("CPU Temperature: %.1f°C\n", celsius)
	}

	return "Temperature sensors not available.\n" +
		"\nNote: Windows does not expose temperature sensors through standard APIs.\n" +
		"For temperature monitoring on Windows, use:\n" +
		"  - HWMonitor (https://www.cpuid.com/softwares/hwmonitor.html)\n" +
		"  - Core Temp (https://www.alcpu.com/CoreTemp/)\n" +
		"  - Open Hardware Monitor (https://openhardwaremonitor.org/)\n"
}

func batteryBlock() string {
	batteries, err := battery.GetAll()
	if err != nil && len(batteries) == 0 {
		return "Battery info unavailable\n"
	}
	if len(batteries) == 0 {
		return "No battery (desktop system)\n"
	}

	var b strings.Builder
	for _, bat := range batteries {
		if bat == nil || bat.Full <= 0 {
			continue
		}
		fmt.Fprintf(&b, "Battery: %.0f%%\n", bat.Current/bat.Full*100)
		fmt.Fprintf(&b, "State: %s\n", bat.State.String())
	}
	if b.Len() == 0 {
		return "No battery (desktop system)\n"
	}
	return b.String()
}
