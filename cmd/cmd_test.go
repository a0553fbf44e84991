package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/linkbio/internal/circuit"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LINKBIO_CONFIG", "")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "export", "--out", dir, "--mode", "production")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported production site to "+dir)

	page, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `/social-links/assets/style.css`)
}

func TestExportCommand_BadMode(t *testing.T) {
	_, err := run(t, "export", "--out", t.TempDir(), "--mode", "staging")
	assert.Error(t, err)
}

func TestSimulateCommand(t *testing.T) {
	out, err := run(t, "simulate", "--frames", "120", "--seed", "5", "--width", "320", "--height", "200")
	require.NoError(t, err)

	var summary circuit.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, uint64(120), summary.Frames)
	assert.Equal(t, circuit.LineCount, summary.Horizontal+summary.Vertical)
	assert.Less(t, summary.MaxPos, 320.0)
}

func TestActivityCommand_BadTab(t *testing.T) {
	_, err := run(t, "activity", "--tab", "settings")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tab")
}
