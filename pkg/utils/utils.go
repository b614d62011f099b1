// Package utils provides common utility functions for hyprspace.
// It includes helpers for file operations, command lookup and terminal
// detection.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
)

// ============================================================================
// Command Utilities
// ============================================================================

// CommandExists checks if a command exists in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// ============================================================================
// File System Utilities
// ============================================================================

// GetHomeDir returns home directory
func GetHomeDir() string {
	return os.Getenv("HOME")
}

// ExpandHomeDir expands ~ in paths
func ExpandHomeDir(path string) string {
	if len(path) > 0 && path[0] == '~' {
		return filepath.Join(GetHomeDir(), path[1:])
	}
	return path
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(path string) error {
	path = ExpandHomeDir(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}
	return nil
}

// ============================================================================
// Terminal Detection
// ============================================================================

// IsTerminal checks if program is running in a terminal
func IsTerminal() bool {
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	stdinIsTTY := (stdinInfo.Mode() & os.ModeCharDevice) != 0

	if !stdinIsTTY {
		return false
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	tty.Close()

	return true
}
