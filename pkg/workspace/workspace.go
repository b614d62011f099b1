// Package workspace implements the script store for hyprspace.
// Workspace layout scripts live in a single directory and follow the
// workspace-<name>.sh naming convention. The directory is the source of
// truth: every listing re-reads it, nothing is cached and existing
// scripts are never overwritten.
package workspace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	filePrefix = "workspace-"
	fileSuffix = ".sh"

	// dispatchPrefix is the line the generated scripts use to switch
	// workspaces. Number extraction looks for it verbatim.
	dispatchPrefix = "hyprctl dispatch workspace"
)

// ErrAlreadyExists is returned by Save when a script with the same name
// is already present in the store.
var ErrAlreadyExists = errors.New("script already exists")

// IsAlreadyExists checks if the error is a name collision
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// Entry represents one workspace script found in the store
type Entry struct {
	// Short name (e.g. "backend" for "workspace-backend.sh")
	Name string
	// File name (e.g. "workspace-backend.sh")
	FileName string
	// Full path to the script
	Path string
	// Workspace number parsed from the script body, nil if no
	// recognizable dispatch line was found
	Number *int
}

// Label returns the display form of the workspace number ("3" or "?")
func (e Entry) Label() string {
	if e.Number == nil {
		return "?"
	}
	return strconv.Itoa(*e.Number)
}

// ResolvePath maps a short name to its storage path. Pure, no I/O.
func ResolvePath(dir, name string) string {
	return filepath.Join(dir, filePrefix+name+fileSuffix)
}

// ValidName reports whether name can be used as a filename component.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, "/\\ \t\n")
}

// Exists checks if a script with the given short name is present
func Exists(dir, name string) bool {
	_, err := os.Stat(ResolvePath(dir, name))
	return err == nil
}

// List scans dir for workspace-*.sh files and returns entries sorted by
// file name. A missing directory yields an empty list. Files whose
// contents cannot be read or parsed still appear, with Number == nil.
func List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read scripts directory: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}

		fileName := de.Name()
		if !strings.HasPrefix(fileName, filePrefix) || !strings.HasSuffix(fileName, fileSuffix) {
			continue
		}

		name := strings.TrimSuffix(strings.TrimPrefix(fileName, filePrefix), fileSuffix)
		path := filepath.Join(dir, fileName)

		entries = append(entries, Entry{
			Name:     name,
			FileName: fileName,
			Path:     path,
			Number:   extractFromFile(path),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].FileName < entries[j].FileName
	})

	return entries, nil
}

// Save writes content to the conventional path for name and marks it
// executable. Returns ErrAlreadyExists if the script is already present;
// the existing file is left untouched.
func Save(dir, name, content string) error {
	path := ResolvePath(dir, name)

	// O_EXCL гарантира, че никога не презаписваме съществуващ скрипт
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o755)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s: %w", path, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create script: %w", err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write script: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}

	// umask може да е свалил exec битовете при create
	if err := os.Chmod(path, 0o755); err != nil {
		return fmt.Errorf("failed to set script permissions: %w", err)
	}

	return nil
}

// ExtractNumber scans script text for the first workspace dispatch line
// and parses its numeric argument. Comment and blank lines are skipped.
// Returns nil when nothing parsable is found; extraction is best-effort
// and never fails a listing.
func ExtractNumber(r io.Reader) *int {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, dispatchPrefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		n, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil || n < 0 {
			continue
		}
		return &n
	}
	return nil
}

// extractFromFile отваря файла и подава съдържанието на ExtractNumber
func extractFromFile(path string) *int {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	return ExtractNumber(f)
}
