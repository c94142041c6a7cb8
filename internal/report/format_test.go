package report

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0.00B"},
		{1, "1.00B"},
		{1023, "1023.00B"},
		{1024, "1.00KB"},
		{1536, "1.50KB"},
		{1024 * 1024, "1.00MB"},
		{5 * 1024 * 1024 * 1024, "5.00GB"},
		{1024 * 1024 * 1024 * 1024, "1.00TB"},
		{1024 * 1024 * 1024 * 1024 * 1024, "1.00PB"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, HumanBytes(tc.in), "HumanBytes(%d)", tc.in)
	}
}

// The magnitude must stay in [0, 1024) for every representable count below
// the PB cap, and larger counts must never pick a smaller unit.
func TestHumanBytesMagnitudeAndMonotonicity(t *testing.T) {
	unitRank := map[string]int{"B": 0, "KB": 1, "MB": 2, "GB": 3, "TB": 4, "PB": 5}

	parse := func(s string) (float64, int) {
		var unit string
		for suffix := range unitRank {
			if strings.HasSuffix(s, suffix) && len(suffix) > len(unit) {
				unit = suffix
			}
		}
		require.NotEmpty(t, unit, "no unit suffix in %q", s)
		val, err := strconv.ParseFloat(strings.TrimSuffix(s, unit), 64)
		require.NoError(t, err)
		return val, unitRank[unit]
	}

	const pbCap = uint64(1024) * 1024 * 1024 * 1024 * 1024 * 1024

	inputs := []uint64{0, 1, 512, 1023, 1024, 1025, 4096, 999_999, 1 << 20,
		1<<20 + 1, 1 << 30, 1 << 40, 1 << 50, 1<<50 + 12345}

	prevRank := -1
	for _, b := range inputs {
		val, rank := parse(HumanBytes(b))
		if b < pbCap {
			assert.GreaterOrEqual(t, val, 0.0)
			assert.Less(t, val, 1024.0, "HumanBytes(%d)", b)
		}
		assert.GreaterOrEqual(t, rank, prevRank, "unit shrank at %d", b)
		prevRank = rank
	}
}
