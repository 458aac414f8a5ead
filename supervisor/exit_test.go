package supervisor

import (
	"os/exec"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitStatusFor runs a trivial child to completion and returns its real
// syscall.WaitStatus, so Classify is exercised against a kernel-produced
// status rather than a hand-built one.
func waitStatusFor(t *testing.T, args ...string) syscall.WaitStatus {
	t.Helper()
	cmd := exec.Command(args[0], args[1:]...)
	err := cmd.Run()
	var ws syscall.WaitStatus
	if exitErr, ok := err.(*exec.ExitError); ok {
		ws = exitErr.Sys().(syscall.WaitStatus)
	} else {
		require.NoError(t, err)
		ws = cmd.ProcessState.Sys().(syscall.WaitStatus)
	}
	return ws
}

func TestClassify_Exited(t *testing.T) {
	ws := waitStatusFor(t, "/bin/sh", "-c", "exit 7")
	o := Classify(ws)
	assert.Equal(t, "exited", o.Kind)
	assert.Equal(t, 7, o.Code)
}

func TestClassify_Signaled(t *testing.T) {
	ws := waitStatusFor(t, "/bin/sh", "-c", "kill -KILL $$")
	o := Classify(ws)
	assert.Equal(t, "signaled", o.Kind)
	assert.Equal(t, int(syscall.SIGKILL), o.Signal)
}

func TestOutcome_Describe(t *testing.T) {
	assert.Contains(t, Outcome{Kind: "exited", Code: 0}.Describe(), "code 0")
	assert.Contains(t, Outcome{Kind: "signaled", Signal: int(syscall.SIGKILL)}.Describe(), "SIGKILL")
	assert.Contains(t, Outcome{Kind: "unknown"}.Describe(), "unrecognized")
}

func TestOutcome_SupervisorExitCode_NormalMode(t *testing.T) {
	assert.Equal(t, 0, Outcome{Kind: "exited", Code: 7}.SupervisorExitCode(false))
	assert.Equal(t, 0, Outcome{Kind: "signaled", Signal: 9}.SupervisorExitCode(false))
}

func TestOutcome_SupervisorExitCode_PropagateMode(t *testing.T) {
	assert.Equal(t, 0, Outcome{Kind: "exited", Code: 0}.SupervisorExitCode(true))
	assert.Equal(t, 1, Outcome{Kind: "exited", Code: 7}.SupervisorExitCode(true))
	assert.Equal(t, 1, Outcome{Kind: "signaled", Signal: 9}.SupervisorExitCode(true))
}
