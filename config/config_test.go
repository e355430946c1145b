package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/lintconfig/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "log_level: debug\n")

	settings, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ".", settings.CWD)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, 20, settings.MaxProbeDirs)
}

func TestLoad_ExplicitValuesAreNotOverridden(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "cwd: /project\nlog_level: debug\nmax_probe_dirs: 8\n")

	settings, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/project", settings.CWD)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, 8, settings.MaxProbeDirs)
}

func TestLoad_RejectsNonPositiveMaxProbeDirs(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "max_probe_dirs: -1\n")

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefault_AppliesDefaults(t *testing.T) {
	t.Parallel()

	settings := config.Default()
	assert.Equal(t, ".", settings.CWD)
	assert.Equal(t, "info", settings.LogLevel)
	assert.Equal(t, 20, settings.MaxProbeDirs)
}

func TestNewLoader_DeferredUntilInvoked(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "cwd: /project\n")
	loader := config.NewLoader(path)

	settings, err := loader()
	require.NoError(t, err)
	assert.Equal(t, "/project", settings.CWD)
}
