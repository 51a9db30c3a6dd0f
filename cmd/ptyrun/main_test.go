package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetTrailingArgs(t *testing.T) {
	name, args, err := target([]string{"ls", "-l", "/tmp"}, false)
	require.NoError(t, err)
	assert.Equal(t, "ls", name)
	assert.Equal(t, []string{"-l", "/tmp"}, args)
}

func TestTargetNoArgsIsUsageError(t *testing.T) {
	_, _, err := target(nil, false)
	assert.ErrorIs(t, err, errUsage)
}

func TestTargetShellFlag(t *testing.T) {
	t.Setenv("SHELL", "/bin/sh")

	name, args, err := target(nil, true)
	require.NoError(t, err)
	assert.Equal(t, "/bin/sh", name)
	assert.Empty(t, args)
}

func TestTargetArgsWinOverShellFlag(t *testing.T) {
	name, args, err := target([]string{"vi"}, true)
	require.NoError(t, err)
	assert.Equal(t, "vi", name)
	assert.Empty(t, args)
}
