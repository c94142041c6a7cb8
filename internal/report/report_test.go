package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderIsStable(t *testing.T) {
	want := []Category{Summary, AllComponents, CPU, Memory, GPU, Storage, Motherboard, Network, OS}
	assert.Equal(t, want, Order)
	assert.Len(t, Order, 9)
}

func TestSectionHeader(t *testing.T) {
	h := SectionHeader(AllComponents)
	assert.True(t, strings.HasPrefix(h, "\n"))
	assert.Contains(t, h, "ALL COMPONENTS\n")
	assert.True(t, strings.HasSuffix(h, "\n\n"))
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("cpu")
	assert.True(t, ok)
	assert.Equal(t, CPU, c)

	c, ok = Lookup("  all components ")
	assert.True(t, ok)
	assert.Equal(t, AllComponents, c)

	_, ok = Lookup("bios")
	assert.False(t, ok)
}

func TestValid(t *testing.T) {
	for _, c := range Order {
		assert.True(t, Valid(c))
	}
	assert.False(t, Valid(Category("Peripherals")))
}
