// Package launch executes workspace scripts as child processes.
// The child inherits the terminal; Run blocks until it exits.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Run executes the script at path with inherited stdio and waits for it
// to finish. Missing files, permission problems and non-zero exits all
// come back as errors for the caller to surface.
func Run(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot launch %s: %w", filepath.Base(path), err)
	}

	cmd := exec.Command(path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("launch %s: %w", filepath.Base(path), err)
	}

	return nil
}
