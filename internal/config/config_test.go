package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tt2nck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Greater(t, cfg.Workers, 0)
	assert.Greater(t, cfg.ChunkSize, 0)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, "workers: 3\nchunkSize: 16\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{Workers: 3, ChunkSize: 16}, cfg)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "workers: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, Default().ChunkSize, cfg.ChunkSize)
}

func TestLoadRejectsNonPositiveValues(t *testing.T) {
	_, err := Load(writeConfig(t, "workers: -1\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "chunkSize: 0\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "workers: [not a number\n"))
	assert.Error(t, err)
}
