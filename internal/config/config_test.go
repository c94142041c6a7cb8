package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sysinfotool.yaml")
	data := "command_timeout: 8s\nsample_window: 250ms\nexport_dir: /tmp/reports\ndebug: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8*time.Second, cfg.CommandTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.SampleWindow)
	assert.Equal(t, "/tmp/reports", cfg.ExportDir)
	assert.True(t, cfg.Debug)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sysinfotool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("command_timeout: [oops"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SYSINFOTOOL_DEBUG", "1")
	t.Setenv("SYSINFOTOOL_EXPORT_DIR", "/var/tmp")
	t.Setenv("SYSINFOTOOL_COMMAND_TIMEOUT", "9s")
	t.Setenv("SYSINFOTOOL_SAMPLE_WINDOW", "500ms")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/var/tmp", cfg.ExportDir)
	assert.Equal(t, 9*time.Second, cfg.CommandTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.SampleWindow)
}

func TestZeroDurationsFallBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sysinfotool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("command_timeout: 0s\nsample_window: 0s\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().CommandTimeout, cfg.CommandTimeout)
	assert.Equal(t, Default().SampleWindow, cfg.SampleWindow)
}
