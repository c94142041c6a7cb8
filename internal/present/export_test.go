package present

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamix14/SystemInfoTool/internal/report"
)

func TestRenderEmitsEveryHeaderInOrder(t *testing.T) {
	out := Render(nil)

	last := -1
	for _, category := range report.Order {
		header := report.SectionHeader(category)
		idx := strings.Index(out, header)
		require.GreaterOrEqual(t, idx, 0, "missing header for %s", category)
		assert.Greater(t, idx, last, "%s out of order", category)
		last = idx
	}
	assert.Contains(t, out, "ALL COMPONENTS\n")
}

func TestRenderRoundTripsSlotTexts(t *testing.T) {
	slots := map[report.Category]string{}
	for i, category := range report.Order {
		slots[category] = strings.Repeat("line for "+string(category)+"\n", i+1)
	}

	out := Render(slots)

	// Each section sits between its own header and the next one; what is in
	// between must be the slot text byte for byte, plus the closing newline.
	for i, category := range report.Order {
		header := report.SectionHeader(category)
		start := strings.Index(out, header) + len(header)
		end := len(out)
		if i+1 < len(report.Order) {
			end = strings.Index(out, report.SectionHeader(report.Order[i+1]))
		}
		assert.Equal(t, slots[category]+"\n", out[start:end], "section %s", category)
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	slots := map[report.Category]string{report.CPU: "CPU INFORMATION\n"}

	name, err := WriteReport(dir, slots)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^system_info_\d{8}_\d{6}\.txt$`), name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, Render(slots), string(data))
}

func TestWriteReportBadDir(t *testing.T) {
	_, err := WriteReport(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}
