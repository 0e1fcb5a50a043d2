package cli

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/puzzle"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"layout", "render", "check", "generate", "place", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,json", []string{"svg", "json"}},
		{"svg, text , dot", []string{"svg", "text", "dot"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCacheDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error = %v", err)
	}
	want := filepath.Join("/tmp/xdg-cache", appName)
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"words.txt", "words"},
		{"dir/animals.txt", "dir/animals"},
		{"noext", "noext"},
		{"-", "crossword"},
	}
	for _, tt := range tests {
		if got := outputBase(tt.input); got != tt.want {
			t.Errorf("outputBase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatExt(t *testing.T) {
	if got := formatExt("text"); got != "txt" {
		t.Errorf("formatExt(text) = %q, want txt", got)
	}
	if got := formatExt("svg"); got != "svg" {
		t.Errorf("formatExt(svg) = %q, want svg", got)
	}
}

func TestWriteArtifactsAndReadLayout(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "puzzle")

	layoutJSON := []byte(`{
		"rows": 10,
		"cols": 10,
		"placements": [
			{"id": "w1", "letters": "REACT", "row": 4, "col": 2, "orientation": "across"}
		]
	}`)

	paths, err := writeArtifacts(base, map[string][]byte{
		"json": layoutJSON,
		"text": []byte("grid"),
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("writeArtifacts() wrote %d files, want 2", len(paths))
	}
	if _, err := os.Stat(base + ".txt"); err != nil {
		t.Errorf("text artifact missing: %v", err)
	}

	lf, err := readLayout(base + ".json")
	if err != nil {
		t.Fatalf("readLayout() error = %v", err)
	}
	if lf.Rows != 10 || lf.Cols != 10 {
		t.Errorf("readLayout() grid = %dx%d, want 10x10", lf.Rows, lf.Cols)
	}
	if len(lf.Placements) != 1 || lf.Placements[0].Letters != "REACT" {
		t.Errorf("readLayout() placements = %+v", lf.Placements)
	}
	if lf.Placements[0].Orientation != puzzle.Across {
		t.Errorf("orientation = %q, want across", lf.Placements[0].Orientation)
	}
}

func TestReadLayoutMissingFile(t *testing.T) {
	_, err := readLayout(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestFormatWordList(t *testing.T) {
	words := []puzzle.Word{
		{ID: "a", Letters: "REACT", Clue: "frontend library"},
		{ID: "b", Letters: "GO"},
	}

	got := formatWordList(words)
	want := "REACT - frontend library\nGO\n"
	if got != want {
		t.Errorf("formatWordList() = %q, want %q", got, want)
	}
}
