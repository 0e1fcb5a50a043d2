package render

import (
	"encoding/json"

	"github.com/mattkessler/crossweave/pkg/puzzle"
)

// JSONOption configures JSON rendering via [JSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	placements []puzzle.Placement
	clues      []puzzle.Clue
	letters    bool
	style      string
}

// WithJSONPlacements includes the numbered placements in the output so a
// consumer can reconstruct the grid without re-running the layout.
func WithJSONPlacements(ps []puzzle.Placement) JSONOption {
	return func(r *jsonRenderer) { r.placements = ps }
}

// WithJSONClues includes the clue list in the output.
func WithJSONClues(clues []puzzle.Clue) JSONOption {
	return func(r *jsonRenderer) { r.clues = clues }
}

// WithJSONLetters includes solution letters per cell. Without this,
// cells only report openness, numbering, and collisions, which is the
// shape a solving frontend wants.
func WithJSONLetters() JSONOption { return func(r *jsonRenderer) { r.letters = true } }

// WithJSONStyle records the style name in the output for round-trip
// rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Rows       int                `json:"rows"`
	Cols       int                `json:"cols"`
	Style      string             `json:"style,omitempty"`
	Cells      []jsonCell         `json:"cells"`
	Clues      []jsonClue         `json:"clues,omitempty"`
	Placements []puzzle.Placement `json:"placements,omitempty"`
}

type jsonCell struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Letter    string `json:"letter,omitempty"`
	Number    int    `json:"number,omitempty"`
	Collision bool   `json:"collision,omitempty"`
}

type jsonClue struct {
	Number      int    `json:"number"`
	Orientation string `json:"orientation"`
	Length      int    `json:"length"`
	Text        string `json:"text"`
	Letters     string `json:"letters,omitempty"`
}

// JSON renders the board as indented JSON. Only open cells are emitted;
// consumers treat absent coordinates as blocks.
func JSON(b puzzle.Board, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Rows:       b.Rows,
		Cols:       b.Cols,
		Style:      r.style,
		Placements: r.placements,
	}

	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			cell := b.At(row, col)
			if cell.Letter == "" {
				continue
			}
			jc := jsonCell{Row: row, Col: col, Number: cell.Number, Collision: cell.Collision}
			if r.letters {
				jc.Letter = cell.Letter
			}
			out.Cells = append(out.Cells, jc)
		}
	}

	for _, c := range r.clues {
		jc := jsonClue{
			Number:      c.Number,
			Orientation: string(c.Orientation),
			Length:      len(c.Letters),
			Text:        c.Text,
		}
		if r.letters {
			jc.Letters = c.Letters
		}
		out.Clues = append(out.Clues, jc)
	}

	return json.MarshalIndent(out, "", "  ")
}
