package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johntlangton/chess/internal/rules"
)

func TestReadPositions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.txt")
	content := "# openings\n" +
		rules.InitialFEN + "\n" +
		"\n" +
		"8/8/8/8/8/8/8/R7 w - - 0 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	positions, err := readPositions(path)
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, rules.InitialFEN, positions[0])
	assert.Equal(t, "8/8/8/8/8/8/8/R7 w - - 0 1", positions[1])
}

func TestReadPositionsMissingFile(t *testing.T) {
	_, err := readPositions(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultListenAddr, cfg.GetString(cfgKeyListenAddr))
	assert.Greater(t, cfg.GetInt(cfgKeyWorkers), 0)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chess.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: \":9090\"\nworkers: 2\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.GetString(cfgKeyListenAddr))
	assert.Equal(t, 2, cfg.GetInt(cfgKeyWorkers))
}

func TestLoadConfigExplicitFileMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
