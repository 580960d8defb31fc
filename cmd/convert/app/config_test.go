package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory so no user config is read.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

// TestLoadConfig verifies the defaults.
func TestLoadConfig(t *testing.T) {
	isolate(t)

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "master", config.DevRef)
	assert.Equal(t, "environments", config.Mode)
	assert.Equal(t, "yaml", config.DocumentFormat)
	assert.True(t, config.CloneContent)
	assert.False(t, config.KeepWorkDir)
	assert.Empty(t, config.Catalog)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
}

// TestConfig_EnvironmentVariables verifies BOOSTERCONV_* variables.
func TestConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)
	t.Setenv("BOOSTERCONV_CATALOG", "/srv/bundles")
	t.Setenv("BOOSTERCONV_DEV_REF", "v42")
	t.Setenv("BOOSTERCONV_MODE", "catalog")
	t.Setenv("BOOSTERCONV_CLONE_CONTENT", "false")
	t.Setenv("BOOSTERCONV_KEEP_WORK_DIR", "true")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/srv/bundles", config.Catalog)
	assert.Equal(t, "v42", config.DevRef)
	assert.Equal(t, "catalog", config.Mode)
	assert.False(t, config.CloneContent)
	assert.True(t, config.KeepWorkDir)
	assert.Equal(t, "debug", config.LogLevel)
}

// TestConfig_File verifies an explicit config file.
func TestConfig_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "convert.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: ./bundles\nwork_dir: /var/tmp\noutput_format: json\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "./bundles", config.Catalog)
	assert.Equal(t, "/var/tmp", config.WorkDir)
	assert.Equal(t, "json", config.DocumentFormat)
	assert.Equal(t, "master", config.DevRef)
	assert.Equal(t, path, config.ConfigFile)
}

// TestConfig_EnvironmentOverridesFile verifies precedence of the environment.
func TestConfig_EnvironmentOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "convert.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dev_ref: from-file\n"), 0o644))
	t.Setenv("BOOSTERCONV_DEV_REF", "from-env")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", config.DevRef)
}

// TestConfig_MissingFile verifies an explicit config file must exist.
func TestConfig_MissingFile(t *testing.T) {
	isolate(t)
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
