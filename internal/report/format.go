package report

import "fmt"

// byte-size unit prefixes, binary steps of 1024
var sizeUnits = []string{"", "K", "M", "G", "T", "P"}

// HumanBytes converts a raw byte count to a fixed-point value with a binary
// prefix, e.g. 1536 -> "1.50KB". The numeric magnitude stays below 1024
// except once the PB prefix is exhausted.
func HumanBytes(n uint64) string {
	val := float64(n)
	for _, unit := range sizeUnits {
		if val < 1024 {
			return fmt.Sprintf("%.2f%sB", val, unit)
		}
		val /= 1024
	}
	return fmt.Sprintf("%.2fPB", val*1024)
}
