//go:build linux && amd64

package supervisor

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nurse/linux"
)

// traceStopped starts p and returns once the child is halted at its
// post-exec trap, for tests that need a live traced process.
func traceStopped(t *testing.T) *Program {
	t.Helper()
	p := NewProgram([]string{"/bin/sleep", "5"}, linux.NewLimitTable(), linux.NewRegistry())
	_, err := start(p)
	require.NoError(t, err)
	require.True(t, wasTrapped(p.LastStatus))
	t.Cleanup(func() {
		syscall.Kill(p.Pid, syscall.SIGKILL)
		var ws syscall.WaitStatus
		syscall.Wait4(p.Pid, &ws, 0, nil)
	})
	return p
}

func TestGetRegisters_LiveProcess(t *testing.T) {
	p := traceStopped(t)

	regs, err := GetRegisters(p.Pid)
	require.NoError(t, err)
	assert.NotZero(t, regs.raw.Rsp)
}

func TestReadCString_ReadsArgcWord(t *testing.T) {
	p := traceStopped(t)

	regs, err := GetRegisters(p.Pid)
	require.NoError(t, err)

	// At the post-exec entry point, the word at the stack pointer holds
	// argc as a little-endian quadword; for a two-element argv ("/bin/sleep",
	// "5") that value's low byte is non-zero and the next byte is zero,
	// so the extractor should stop after one byte without truncating.
	data, truncated, err := ReadCString(p.Pid, uintptr(regs.raw.Rsp), wordSize)
	require.NoError(t, err)
	assert.False(t, truncated)
	assert.Equal(t, []byte{2}, data)
}
