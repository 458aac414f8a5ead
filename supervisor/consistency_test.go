package supervisor

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nurse/errors"
	"nurse/linux"
)

func TestCheckConsistency_OK(t *testing.T) {
	reg := linux.NewRegistry()
	assert.NoError(t, CheckConsistency(reg))
}

func TestInstallTeardownHook_RejectsNonPositivePid(t *testing.T) {
	_, err := InstallTeardownHook(0)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.ErrTeardownHook))

	_, err = InstallTeardownHook(-1)
	require.Error(t, err)
}

func TestInstallTeardownHook_ReturnsCancel(t *testing.T) {
	cancel, err := InstallTeardownHook(os.Getpid())
	require.NoError(t, err)
	require.NotNil(t, cancel)
	cancel()
}
