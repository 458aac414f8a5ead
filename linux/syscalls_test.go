package linux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_CheckConsistency(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, r.CheckConsistency())
}

func TestRegistry_LookupKnown(t *testing.T) {
	r := NewRegistry()

	name, found := r.Lookup(1) // write on x86_64
	assert.True(t, found)
	assert.Equal(t, "SYS_write", name)
}

func TestRegistry_LookupOutOfBounds(t *testing.T) {
	r := NewRegistry()

	_, found := r.Lookup(-1)
	assert.False(t, found)

	_, found = r.Lookup(1 << 20)
	assert.False(t, found)
}

func TestRegistry_LookupUnnamedSlot(t *testing.T) {
	r := NewRegistry()

	// 14 has no x86_64 entry in the table (rt_sigprocmask is unmapped here).
	_, found := r.Lookup(14)
	assert.False(t, found)
}

func TestRegistry_ResetClearsMaxAndObserved(t *testing.T) {
	r := NewRegistry()
	r.SetMax("SYS_write", 5)
	r.Observe(1)

	r.Reset()

	max, observed := r.Stats(1)
	assert.Equal(t, 0, max)
	assert.Equal(t, 0, observed)
}

func TestRegistry_SetMaxUnknownName(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.SetMax("SYS_does_not_exist", 10))
}

func TestRegistry_ObserveWhitelistViolation(t *testing.T) {
	r := NewRegistry()
	r.Reset()
	r.SetMax("SYS_write", 0)

	violated := r.Observe(1)
	assert.True(t, violated)

	_, observed := r.Stats(1)
	assert.Equal(t, 1, observed)
}

func TestRegistry_ObserveNegativeMaxIsUnbounded(t *testing.T) {
	r := NewRegistry()
	r.SetMax("SYS_write", -1)

	for i := 0; i < 100; i++ {
		assert.False(t, r.Observe(1))
	}
}

func TestRegistry_ObserveMonotoneNonDecreasing(t *testing.T) {
	r := NewRegistry()
	r.SetMax("SYS_write", 1000)

	last := 0
	for i := 0; i < 5; i++ {
		r.Observe(1)
		_, observed := r.Stats(1)
		assert.GreaterOrEqual(t, observed, last)
		last = observed
	}
}
