package collect

import "strings"

// Rules used inside category bodies. The 60-column rule is reserved for the
// overview block and the export section headers.
var (
	titleRule = strings.Repeat("=", 50)
	wideRule  = strings.Repeat("=", 60)
	thinRule  = strings.Repeat("-", 50)
)

// title renders a category heading with its underline.
func title(name string) string {
	return name + "\n" + titleRule + "\n\n"
}

// parseKeyValueList parses `wmic ... /format:list` output into one map per
// record. Records are key=value lines separated by blank lines; empty values
// are dropped.
func parseKeyValueList(out string) []map[string]string {
	var records []map[string]string
	current := map[string]string{}

	flush := func() {
		if len(current) > 0 {
			records = append(records, current)
			current = map[string]string{}
		}
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			current[strings.TrimSpace(key)] = value
		}
	}
	flush()
	return records
}
