package supervisor

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nurse/linux"
)

// TestStart_ReachesPostExecTrap exercises the real bootstrap path against a
// trivial child: the initial wait must report the post-exec syscall-stop
// sentinel before any resource limit is applied.
func TestStart_ReachesPostExecTrap(t *testing.T) {
	limits := linux.NewLimitTable()
	limits.Activate("NOFILE", 64, 64)

	p := NewProgram([]string{"/bin/true"}, limits, linux.NewRegistry())

	_, err := start(p)
	require.NoError(t, err)
	assert.True(t, wasTrapped(p.LastStatus))
	assert.Greater(t, p.Pid, 0)

	// Let the traced child run to completion instead of leaving it stopped.
	syscall.PtraceDetach(p.Pid)
	var ws syscall.WaitStatus
	syscall.Wait4(p.Pid, &ws, 0, nil)
}

func TestStart_UnknownExecutableFails(t *testing.T) {
	p := NewProgram([]string{"/no/such/executable-nurse-test"}, linux.NewLimitTable(), linux.NewRegistry())
	_, err := start(p)
	assert.Error(t, err)
}
