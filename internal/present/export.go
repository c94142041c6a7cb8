package present

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mamix14/SystemInfoTool/internal/report"
)

// Render concatenates every slot into one export document, in slot order.
// Slots that have not been scanned yet render as empty sections; the section
// headers always appear.
func Render(slots map[report.Category]string) string {
	var b strings.Builder
	for _, category := range report.Order {
		b.WriteString(report.SectionHeader(category))
		b.WriteString(slots[category])
		b.WriteString("\n")
	}
	return b.String()
}

// WriteReport writes the rendered slots to a timestamped file in dir and
// returns the bare filename.
func WriteReport(dir string, slots map[report.Category]string) (string, error) {
	name := "system_info_" + time.Now().Format("20060102_150405") + ".txt"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(Render(slots)), 0o644); err != nil {
		return "", err
	}
	return name, nil
}
