package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	expected := []string{
		"generate", "init", "list", "render", "config",
		"watch", "deploy", "version",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "command %s not registered", name)
	}
}

func TestResolvePath(t *testing.T) {
	orig := projectRoot
	defer func() { projectRoot = orig }()
	projectRoot = "/project"

	assert.Equal(t, "/abs/templates", resolvePath("/abs/templates"))
	assert.Equal(t, filepath.Join("/project", "templates"), resolvePath("./templates"))
}

func TestNormalizeFlag(t *testing.T) {
	assert.EqualValues(t, "log-level", normalizeFlag(nil, "log_level"))
	assert.EqualValues(t, "dry-run", normalizeFlag(nil, "dry-run"))
}

func TestGenerateDryRunEndToEnd(t *testing.T) {
	orig := projectRoot
	defer func() {
		projectRoot = orig
		generateDryRun = false
	}()

	dir := t.TempDir()
	rootCmd.SetArgs([]string{"generate", "component", "Button", "--dry-run", "--root", dir})
	require.NoError(t, rootCmd.Execute())

	// Dry runs plan paths but write nothing.
	_, err := os.Stat(filepath.Join(dir, "src", "components", "button"))
	assert.True(t, os.IsNotExist(err))
}

func TestFailedCommandPrintsError(t *testing.T) {
	orig := projectRoot
	defer func() {
		projectRoot = orig
		renderDataFile = ""
		rootCmd.SetErr(nil)
	}()

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{
		"render", "component",
		"--data", filepath.Join(t.TempDir(), "nonexistent.json"),
		"--root", t.TempDir(),
	})

	require.Error(t, rootCmd.Execute())
	assert.Contains(t, stderr.String(), "reading context file")
}

func TestUnknownCommandPrintsError(t *testing.T) {
	defer rootCmd.SetErr(nil)

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"nosuchcommand"})

	require.Error(t, rootCmd.Execute())
	assert.Contains(t, stderr.String(), "unknown command")
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, "dev", version)
	assert.Equal(t, "none", commit)
}
