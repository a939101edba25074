package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LianHaeming/raw2hdr-site/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestChartCommand(t *testing.T) {
	out, err := execute(t, "chart", "transfer", "--format", "svg", "--out", "")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")

	path := filepath.Join(t.TempDir(), "hist.png")
	_, err = execute(t, "chart", "histogram-hdr", "--format", "png", "--out", path, "--seed", "7")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(data[:4]))

	_, err = execute(t, "chart", "nope", "--out", "")
	assert.Error(t, err)
	_, err = execute(t, "chart", "transfer", "--format", "gif", "--out", "")
	assert.Error(t, err)
}

func TestNotesCommand(t *testing.T) {
	out, err := execute(t, "notes")
	require.NoError(t, err)
	assert.Contains(t, out, "bit-depth")
	assert.Contains(t, out, "science")

	out, err = execute(t, "notes", "nits")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = execute(t, "notes", "missing")
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("PORT", "9123")

	out, err := execute(t, "config", "--write", "")
	require.NoError(t, err)
	assert.Contains(t, out, `port: "9123"`)
	assert.Contains(t, out, "max: 1000")

	path := filepath.Join(t.TempDir(), "conf", "raw2hdr.yaml")
	out, err = execute(t, "config", "--write", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	saved, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, saved.Validate())
	assert.Equal(t, "9123", saved.Server.Port)
	assert.Equal(t, 30, saved.Stream.FPS)
}
