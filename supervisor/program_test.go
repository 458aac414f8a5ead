package supervisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nurse/linux"
)

func TestNewProgram_Defaults(t *testing.T) {
	limits := linux.NewLimitTable()
	reg := linux.NewRegistry()
	argv := []string{"/bin/true"}

	p := NewProgram(argv, limits, reg)

	assert.Equal(t, argv, p.ChildArgv)
	assert.Same(t, limits, p.Limits)
	assert.Same(t, reg, p.Registry)
	assert.False(t, p.TraceEnabled)
	assert.False(t, p.ReportChildFailure)
	assert.Equal(t, 0, p.Pid)
	assert.False(t, p.InCall)
	assert.Equal(t, 0, p.Counter)
}
