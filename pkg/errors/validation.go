package errors

import (
	"strings"
	"unicode"
)

// Grid dimension limits. The layout engine itself accepts any positive
// bound; these limits cap what the surfaces (CLI flags, API requests,
// config files) will hand it.
const (
	MinGridSize = 1
	MaxGridSize = 100
)

// ValidateGridSize validates grid dimensions supplied by a user-facing
// surface. Both axes must be positive and within MaxGridSize.
func ValidateGridSize(rows, cols int) error {
	if rows < MinGridSize || cols < MinGridSize {
		return New(ErrCodeInvalidGrid, "grid dimensions must be positive, got %dx%d", rows, cols)
	}
	if rows > MaxGridSize || cols > MaxGridSize {
		return New(ErrCodeInvalidGrid, "grid dimensions too large (max %d per axis), got %dx%d", MaxGridSize, rows, cols)
	}
	return nil
}

// ValidateLetters validates a word's answer string as the layout core
// expects it: non-empty, uppercase alphanumeric, no separators. Word
// sources are responsible for sanitizing raw input into this shape (see
// the wordlist package); this check guards the boundary.
func ValidateLetters(letters string) error {
	if letters == "" {
		return New(ErrCodeInvalidWord, "word letters cannot be empty")
	}
	if len(letters) > 64 {
		return New(ErrCodeInvalidWord, "word too long (max 64 letters): %q", letters)
	}
	for _, r := range letters {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			continue
		}
		return New(ErrCodeInvalidWord, "word letters must be uppercase alphanumeric, got %q", letters)
	}
	return nil
}

// ValidateOrientation validates an orientation string from an external
// source (API request, stored document).
func ValidateOrientation(o string) error {
	if o != "across" && o != "down" {
		return New(ErrCodeInvalidInput, "orientation must be %q or %q, got %q", "across", "down", o)
	}
	return nil
}

// ValidateTitle validates a puzzle title for storage: printable, no
// control characters, bounded length.
func ValidateTitle(title string) error {
	if len(title) > 200 {
		return New(ErrCodeInvalidInput, "title too long (max 200 characters)")
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "title contains control characters")
		}
	}
	return nil
}

// ValidatePuzzleID validates a puzzle identifier for storage lookups.
// IDs are generated as UUIDs but the check is deliberately loose: any
// short token without path separators or control characters is accepted,
// so hand-written IDs in test fixtures keep working.
func ValidatePuzzleID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "puzzle ID cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "puzzle ID too long")
	}
	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidInput, "puzzle ID cannot contain path separators")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "puzzle ID contains control characters")
		}
	}
	return nil
}
