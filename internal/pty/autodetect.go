package pty

import (
	"fmt"
	"os"
)

// DetectShell finds the shell to launch when the caller asked for one
// instead of naming a program: $SHELL first, then /bin/bash, /bin/zsh,
// /bin/sh. Returns an error if none of them is executable.
func DetectShell() (string, error) {
	if shell := os.Getenv("SHELL"); shell != "" && isExecutable(shell) {
		return shell, nil
	}

	for _, candidate := range []string{"/bin/bash", "/bin/zsh", "/bin/sh"} {
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no shell found: checked $SHELL, /bin/bash, /bin/zsh, /bin/sh")
}

// isExecutable reports whether path is a regular file with an execute bit.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode()&0111 != 0
}
