package policy

import (
	"os"
	"path/filepath"
	"testing"

	"nurse/errors"
	"nurse/linux"

	"github.com/stretchr/testify/assert"
)

func TestResolvePath_Default(t *testing.T) {
	os.Unsetenv(EnvConfigFile)
	assert.Equal(t, DefaultPath, ResolvePath())
}

func TestResolvePath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigFile, "/tmp/custom.conf")
	assert.Equal(t, "/tmp/custom.conf", ResolvePath())
}

func TestLoadFrom_MissingFile(t *testing.T) {
	reg := linux.NewRegistry()
	enabled, err := LoadFrom("/nonexistent/path/to/nurse.conf", reg)

	assert.False(t, enabled)
	assert.True(t, errors.IsKind(err, errors.ErrPolicyMissing))
}

func TestLoadFrom_ResetsThenSetsWhitelist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nurse.conf")
	err := os.WriteFile(path, []byte("SYS_write 0\nSYS_exit_group -1\n"), 0o644)
	assert.NoError(t, err)

	reg := linux.NewRegistry()
	reg.SetMax("SYS_read", 99) // should be cleared by reset

	enabled, err := LoadFrom(path, reg)
	assert.NoError(t, err)
	assert.True(t, enabled)

	max, _ := reg.Stats(0) // SYS_read
	assert.Equal(t, 0, max)

	max, _ = reg.Stats(1) // SYS_write
	assert.Equal(t, 0, max)

	max, _ = reg.Stats(231) // SYS_exit_group
	assert.Equal(t, -1, max)
}

func TestLoadFrom_SkipsBlankAndMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nurse.conf")
	content := "\n   \nSYS_write 5\nnotenoughfields\nSYS_open not-a-number\nSYS_close 10\n"
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)

	reg := linux.NewRegistry()
	enabled, err := LoadFrom(path, reg)
	assert.NoError(t, err)
	assert.True(t, enabled)

	max, _ := reg.Stats(1) // SYS_write
	assert.Equal(t, 5, max)

	max, _ = reg.Stats(3) // SYS_close
	assert.Equal(t, 10, max)
}

func TestLoadFrom_IgnoresUnmatchedToken(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nurse.conf")
	err := os.WriteFile(path, []byte("SYS_not_a_real_syscall 5\n"), 0o644)
	assert.NoError(t, err)

	reg := linux.NewRegistry()
	_, err = LoadFrom(path, reg)
	assert.NoError(t, err)
}
