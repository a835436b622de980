package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc2025.yaml")
	data := "input_dir: /data/puzzles\nday08:\n  connections: 250\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/puzzles", cfg.InputDir)
	assert.Equal(t, 250, cfg.Day08.Connections)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc2025.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_dir: here\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "here", cfg.InputDir)
	assert.Equal(t, Default().Day08.Connections, cfg.Day08.Connections)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc2025.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_dir: [broken\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
