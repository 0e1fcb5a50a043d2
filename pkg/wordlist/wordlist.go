// Package wordlist turns raw word/clue text into puzzle words and keeps
// placements linked to their words across re-parses.
//
// The expected input format is one entry per line:
//
//	WORD - clue text
//
// A colon or tab separator is also accepted, blank lines and lines
// starting with '#' are skipped, and answers are sanitized to the
// uppercase alphanumeric shape the layout core expects. Word identities
// are freshly generated UUIDs; [Rematch] re-links existing placements to
// regenerated words by structural equality, so a user editing clue text
// does not lose manual placements for untouched entries.
package wordlist

import (
	"bufio"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/puzzle"
)

// separators tried in order when splitting a line into answer and clue.
var separators = []string{" - ", "\t", ": ", " – "}

// Parse reads word/clue lines from r and returns them in input order.
// Each word receives a fresh UUID identity. Lines whose answer sanitizes
// to nothing (all punctuation, say) are rejected rather than dropped
// silently, so a typo'd list fails loudly.
func Parse(r io.Reader) ([]puzzle.Word, error) {
	var words []puzzle.Word
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		answer, clue := splitEntry(raw)
		letters := Sanitize(answer)
		if letters == "" {
			return nil, errors.New(errors.ErrCodeInvalidWord, "line %d: no letters in %q", line, raw)
		}
		if err := errors.ValidateLetters(letters); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidWord, err, "line %d", line)
		}
		words = append(words, puzzle.Word{
			ID:      uuid.NewString(),
			Letters: letters,
			Clue:    clue,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read word list")
	}
	return words, nil
}

// ParseString is a convenience wrapper around [Parse] for in-memory text.
func ParseString(s string) ([]puzzle.Word, error) {
	return Parse(strings.NewReader(s))
}

// splitEntry separates a line into its answer and clue parts. A line
// without a separator is an answer with an empty clue.
func splitEntry(line string) (answer, clue string) {
	for _, sep := range separators {
		if before, after, ok := strings.Cut(line, sep); ok {
			return strings.TrimSpace(before), strings.TrimSpace(after)
		}
	}
	return line, ""
}

// Sanitize uppercases s and strips everything that is not an ASCII
// letter or digit, leaving the answer shape the grid core stores.
func Sanitize(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Rematch re-links placements to a regenerated word list by structural
// equality on (letters, clue). A placement whose word still exists in the
// new list is returned with the new word's identity; placements whose
// words disappeared are dropped. Each new word is consumed at most once,
// so duplicate entries keep at most one placement each.
func Rematch(placements []puzzle.Placement, words []puzzle.Word) []puzzle.Placement {
	type key struct{ letters, clue string }
	available := make(map[key][]puzzle.Word, len(words))
	for _, w := range words {
		k := key{w.Letters, w.Clue}
		available[k] = append(available[k], w)
	}

	out := make([]puzzle.Placement, 0, len(placements))
	for _, p := range placements {
		k := key{p.Letters, p.Clue}
		pool := available[k]
		if len(pool) == 0 {
			continue
		}
		p.Word = pool[0]
		available[k] = pool[1:]
		out = append(out, p)
	}
	return out
}
