package config

import (
	"os"
	"path/filepath"
	"testing"

	"elastic-agent-access/protocol"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eaconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, protocol.V1, cfg.ProtocolVersion())
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "version: \"1.0\"\nlog-level: DEBUG\ncheck-schema: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{Version: "1.0", LogLevel: "DEBUG", CheckSchema: false}, cfg)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	path := writeFile(t, "log-level: DEBUG\n")
	t.Setenv(EnvLogLevel, "ERROR")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ERROR", cfg.LogLevel)
	assert.True(t, cfg.CheckSchema)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	t.Setenv(EnvVersion, "3.0")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotSupported), "%v", err)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := writeFile(t, "log-level: LOUD\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotValid), "%v", err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeFile(t, "version: [\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotValid), "%v", err)
}
