// Package report defines the inventory categories, the fixed slot order
// used by the presenter and the export file, and shared text formatting.
package report

import (
	"fmt"
	"strings"
)

// Category names one inventory slot. The values double as tab labels and
// export section headers.
type Category string

const (
	Summary       Category = "Summary"
	AllComponents Category = "All Components"
	CPU           Category = "CPU"
	Memory        Category = "Memory"
	GPU           Category = "GPU"
	Storage       Category = "Storage"
	Motherboard   Category = "Motherboard"
	Network       Category = "Network"
	OS            Category = "OS"
)

// Order is the fixed declaration order of all slots. Scans populate slots in
// this order and exports emit sections in this order.
var Order = []Category{
	Summary,
	AllComponents,
	CPU,
	Memory,
	GPU,
	Storage,
	Motherboard,
	Network,
	OS,
}

// Section is the immutable result a scan worker hands back to the
// presenter, one per category.
type Section struct {
	Category Category
	Text     string
}

const headerRule = "============================================================"

// SectionHeader renders the export header block for a category.
func SectionHeader(c Category) string {
	return fmt.Sprintf("\n%s\n%s\n%s\n\n", headerRule, strings.ToUpper(string(c)), headerRule)
}

// Valid reports whether c is one of the declared categories.
func Valid(c Category) bool {
	for _, known := range Order {
		if known == c {
			return true
		}
	}
	return false
}

// Lookup resolves a case-insensitive tab label to its category.
func Lookup(name string) (Category, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, c := range Order {
		if strings.ToLower(string(c)) == needle {
			return c, true
		}
	}
	return "", false
}
