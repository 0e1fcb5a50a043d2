package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/pipeline"
	"github.com/mattkessler/crossweave/pkg/puzzle"
	"github.com/mattkessler/crossweave/pkg/wordlist"
)

// readWords loads a word list from a file path, or stdin when path is "-".
func readWords(path string) ([]puzzle.Word, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "opening word list %s", path)
		}
		defer f.Close()
		r = f
	}
	return wordlist.Parse(r)
}

// formatExt maps a render format to its file extension.
func formatExt(format string) string {
	switch format {
	case pipeline.FormatText:
		return "txt"
	default:
		return format
	}
}

// writeArtifacts writes rendered artifacts next to base, one file per
// format, and returns the written paths sorted for stable output.
func writeArtifacts(base string, artifacts map[string][]byte) ([]string, error) {
	paths := make([]string, 0, len(artifacts))
	for format, data := range artifacts {
		path := base + "." + formatExt(format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "writing %s", path)
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// outputBase derives the artifact base path from the input file name,
// stripping its extension.
func outputBase(input string) string {
	if input == "-" {
		return "crossword"
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext)
}

// layoutFile is the subset of the JSON artifact needed to reload a layout.
type layoutFile struct {
	Rows       int                `json:"rows"`
	Cols       int                `json:"cols"`
	Placements []puzzle.Placement `json:"placements"`
}

// readLayout loads a previously written JSON layout artifact.
func readLayout(path string) (layoutFile, error) {
	var lf layoutFile
	data, err := os.ReadFile(path)
	if err != nil {
		return lf, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading layout %s", path)
	}
	if err := json.Unmarshal(data, &lf); err != nil {
		return lf, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parsing layout %s", path)
	}
	if err := errors.ValidateGridSize(lf.Rows, lf.Cols); err != nil {
		return lf, err
	}
	return lf, nil
}
