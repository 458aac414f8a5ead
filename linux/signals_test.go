package linux

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalDiagnostic_Known(t *testing.T) {
	assert.Equal(t, "killed", SignalDiagnostic(int(syscall.SIGKILL)))
	assert.Equal(t, "segmentation violation", SignalDiagnostic(int(syscall.SIGSEGV)))
}

func TestSignalDiagnostic_Unknown(t *testing.T) {
	assert.Equal(t, "unrecognized signal", SignalDiagnostic(999))
}

func TestSignalName(t *testing.T) {
	assert.Equal(t, "SIGKILL", SignalName(int(syscall.SIGKILL)))
	assert.Equal(t, "", SignalName(999))
}
