package render

import (
	"fmt"
	"strings"

	"github.com/mattkessler/crossweave/pkg/puzzle"
)

// TextOption configures text rendering via [Text].
type TextOption func(*textRenderer)

type textRenderer struct {
	letters bool
	clues   []puzzle.Clue
}

// WithTextLetters prints solution letters instead of open-cell markers.
func WithTextLetters() TextOption { return func(r *textRenderer) { r.letters = true } }

// WithTextClues appends the clue list below the grid.
func WithTextClues(clues []puzzle.Clue) TextOption {
	return func(r *textRenderer) { r.clues = clues }
}

// Text renders the board as a terminal-friendly grid. Blocked cells are
// drawn as '#', open cells as '_' (or their letter), and collisions as
// '!' so a bad manual placement is visible at a glance.
func Text(b puzzle.Board, opts ...TextOption) string {
	r := textRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var sb strings.Builder
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			cell := b.At(row, col)
			switch {
			case cell.Letter == "":
				sb.WriteByte('#')
			case cell.Collision:
				sb.WriteByte('!')
			case r.letters:
				sb.WriteString(cell.Letter)
			default:
				sb.WriteByte('_')
			}
		}
		sb.WriteByte('\n')
	}

	if len(r.clues) > 0 {
		sb.WriteByte('\n')
		writeClues(&sb, "Across", puzzle.Across, r.clues)
		writeClues(&sb, "Down", puzzle.Down, r.clues)
	}
	return sb.String()
}

func writeClues(sb *strings.Builder, heading string, o puzzle.Orientation, clues []puzzle.Clue) {
	wrote := false
	for _, c := range clues {
		if c.Orientation != o {
			continue
		}
		if !wrote {
			fmt.Fprintf(sb, "%s:\n", heading)
			wrote = true
		}
		text := c.Text
		if text == "" {
			text = fmt.Sprintf("(%d letters)", len(c.Letters))
		}
		fmt.Fprintf(sb, "  %d. %s\n", c.Number, text)
	}
}
