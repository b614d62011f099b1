package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, dir, fileName, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestListEmptyDir(t *testing.T) {
	entries, err := List(t.TempDir())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty listing, got %d entries", len(entries))
	}
}

func TestListMissingDir(t *testing.T) {
	entries, err := List(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing dir must not fail listing: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty listing, got %d entries", len(entries))
	}
}

func TestListParsesWorkspaceNumber(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "workspace-dash.sh", "#!/bin/bash\n\nhyprctl dispatch workspace 3\n")

	entries, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Name != "dash" {
		t.Errorf("Name = %q, want %q", e.Name, "dash")
	}
	if e.FileName != "workspace-dash.sh" {
		t.Errorf("FileName = %q", e.FileName)
	}
	if e.Number == nil || *e.Number != 3 {
		t.Errorf("Number = %v, want 3", e.Number)
	}
}

func TestListToleratesUnparsableScript(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "workspace-broken.sh", "this is not a layout script\n\x00\xff\n")

	entries, err := List(dir)
	if err != nil {
		t.Fatalf("unparsable script must not fail listing: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Number != nil {
		t.Errorf("Number = %v, want nil", entries[0].Number)
	}
}

func TestListSkipsNonMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "workspace-good.sh", "hyprctl dispatch workspace 1\n")
	writeScript(t, dir, "notes.txt", "not a script")
	writeScript(t, dir, "workspace-wrong.txt", "hyprctl dispatch workspace 2\n")
	writeScript(t, dir, "other.sh", "hyprctl dispatch workspace 3\n")
	if err := os.Mkdir(filepath.Join(dir, "workspace-dir.sh"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "good" {
		t.Errorf("expected only workspace-good.sh, got %+v", entries)
	}
}

func TestListSortedByFileName(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zulu", "alpha", "mike"} {
		writeScript(t, dir, "workspace-"+name+".sh", "hyprctl dispatch workspace 1\n")
	}

	entries, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var got []string
	for _, e := range entries {
		got = append(got, e.Name)
	}
	want := []string{"alpha", "mike", "zulu"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *int
	}{
		{
			name:    "simple dispatch",
			content: "#!/bin/bash\nhyprctl dispatch workspace 5\n",
			want:    intPtr(5),
		},
		{
			name:    "comments and blanks skipped",
			content: "# hyprctl dispatch workspace 9\n\n  \nhyprctl dispatch workspace 2\n",
			want:    intPtr(2),
		},
		{
			name:    "first dispatch wins",
			content: "hyprctl dispatch workspace 1\nhyprctl dispatch workspace 2\n",
			want:    intPtr(1),
		},
		{
			name:    "no dispatch line",
			content: "echo hello\n",
			want:    nil,
		},
		{
			name:    "dispatch without number",
			content: "hyprctl dispatch workspace\n",
			want:    nil,
		},
		{
			name:    "non-numeric argument",
			content: "hyprctl dispatch workspace next\n",
			want:    nil,
		},
		{
			name:    "negative number rejected",
			content: "hyprctl dispatch workspace -1\n",
			want:    nil,
		},
		{
			name:    "indented dispatch",
			content: "  hyprctl dispatch workspace 7\n",
			want:    intPtr(7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNumber(strings.NewReader(tt.content))
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("got %d, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("got nil, want %d", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("got %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestSaveCreatesExecutableScript(t *testing.T) {
	dir := t.TempDir()

	if err := Save(dir, "media", "#!/bin/bash\nhyprctl dispatch workspace 4\n"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	path := ResolvePath(dir, "media")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("script not created: %v", err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Errorf("script not executable, mode = %v", info.Mode())
	}

	if !Exists(dir, "media") {
		t.Error("Exists returned false for saved script")
	}
}

func TestSaveNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	original := "#!/bin/bash\nhyprctl dispatch workspace 4\n"

	if err := Save(dir, "media", original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	err := Save(dir, "media", "something else entirely")
	if !IsAlreadyExists(err) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// The file on disk must be untouched.
	data, err := os.ReadFile(ResolvePath(dir, "media"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Errorf("file content changed after failed save: %q", data)
	}
}

func TestSaveIoErrorIsNotAlreadyExists(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing"), "media", "content")
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if IsAlreadyExists(err) {
		t.Errorf("write failure misreported as ErrAlreadyExists: %v", err)
	}
}

func TestResolvePath(t *testing.T) {
	got := ResolvePath("/home/test/.config/hyprspace", "backend")
	want := "/home/test/.config/hyprspace/workspace-backend.sh"
	if got != want {
		t.Errorf("ResolvePath = %q, want %q", got, want)
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"backend", "music-2", "dash_board", "a"}
	for _, name := range valid {
		if !ValidName(name) {
			t.Errorf("ValidName(%q) = false, want true", name)
		}
	}

	invalid := []string{"", "with space", "with/slash", "with\\backslash", "with\ttab", "with\nnewline"}
	for _, name := range invalid {
		if ValidName(name) {
			t.Errorf("ValidName(%q) = true, want false", name)
		}
	}
}

func intPtr(n int) *int {
	return &n
}
