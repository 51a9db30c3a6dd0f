package pty

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectShellPrefersEnv(t *testing.T) {
	t.Setenv("SHELL", "/bin/sh")

	shell, err := DetectShell()
	require.NoError(t, err)
	assert.Equal(t, "/bin/sh", shell)
}

func TestDetectShellFallback(t *testing.T) {
	t.Setenv("SHELL", "/nonexistent/shell")

	shell, err := DetectShell()
	require.NoError(t, err)
	assert.True(t, isExecutable(shell), "detected shell %q must be executable", shell)
}

func TestIsExecutable(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(plain, []byte("#!/bin/sh\n"), 0644))
	assert.False(t, isExecutable(plain))

	script := filepath.Join(dir, "script")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0755))
	assert.True(t, isExecutable(script))

	assert.False(t, isExecutable(dir), "directories are not executables")
	assert.False(t, isExecutable(filepath.Join(dir, "missing")))
}
