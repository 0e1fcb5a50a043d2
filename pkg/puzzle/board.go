package puzzle

import (
	"slices"
	"strings"
)

// Debugf, when set, receives diagnostic messages from board derivation,
// currently only out-of-bounds clipping reports. Placements are expected to
// be bounds-checked before they reach [Derive]; a clipped write means an
// upstream producer violated that contract. The write is still skipped
// silently so a stale or hand-edited document renders instead of erroring.
var Debugf func(format string, args ...any)

// Cell is a single board cell derived from the placement set.
type Cell struct {
	// Letter is the letter occupying the cell, or "" when empty. When
	// placements disagree the first writer's letter is kept and Collision
	// is set.
	Letter string `json:"letter,omitempty"`
	// Number is the clue number anchored at this cell, or 0. Numbers
	// increase in row-major order of distinct origin cells.
	Number int `json:"number,omitempty"`
	// WordIDs lists the identities of every placement covering the cell.
	WordIDs []string `json:"word_ids,omitempty"`
	// Collision is true when two or more placements assign different
	// letters to the cell.
	Collision bool `json:"collision,omitempty"`
}

// Board is a rows x cols matrix of cells. It is always derived from a
// placement set by [Derive] and holds no identity of its own.
type Board struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Cells [][]Cell `json:"cells"`
}

// At returns the cell at (row, col). Out-of-range coordinates return an
// empty cell, which simplifies neighbor checks at the board edge.
func (b Board) At(row, col int) Cell {
	if row < 0 || row >= b.Rows || col < 0 || col >= b.Cols {
		return Cell{}
	}
	return b.Cells[row][col]
}

// occupied reports whether the cell at (row, col) holds a letter.
// Off-board coordinates count as empty.
func (b Board) occupied(row, col int) bool {
	return b.At(row, col).Letter != ""
}

// Clue is a flat clue-list entry produced by [Derive], sorted by number.
// Two placements sharing an origin cell share a number but appear as
// separate entries (one across, one down).
type Clue struct {
	Number      int         `json:"number"`
	Text        string      `json:"text"`
	Letters     string      `json:"letters"`
	Orientation Orientation `json:"orientation"`
}

// Derive computes the board and clue list for a placement set on a
// rows x cols grid. It never fails: an empty placement list yields an
// all-empty board and no clues, and letters whose cells fall outside the
// grid are skipped (see [Debugf]).
//
// Derivation is deterministic: the same placements, rows, and cols always
// produce an identical board and clue list. Placements are processed in
// slice order, but the only order-sensitive output is which letter a
// collision cell displays - the collision flag itself is symmetric.
//
// The returned placements slice mirrors the input with clue numbers filled
// in; the input is not modified.
func Derive(placements []Placement, rows, cols int) (Board, []Clue, []Placement) {
	b := Board{Rows: rows, Cols: cols, Cells: make([][]Cell, rows)}
	for r := range b.Cells {
		b.Cells[r] = make([]Cell, cols)
	}

	numbered := slices.Clone(placements)

	for i := range numbered {
		p := &numbered[i]
		p.Number = 0
		for j := 0; j < len(p.Letters); j++ {
			r, c := p.CellAt(j)
			if r < 0 || r >= rows || c < 0 || c >= cols {
				if Debugf != nil {
					Debugf("clipped cell (%d,%d) of word %q on %dx%d board", r, c, p.Letters, rows, cols)
				}
				continue
			}
			cell := &b.Cells[r][c]
			letter := string(p.Letters[j])
			if cell.Letter != "" && cell.Letter != letter {
				cell.Collision = true
			}
			if cell.Letter == "" {
				cell.Letter = letter
			}
			cell.WordIDs = append(cell.WordIDs, p.ID)
		}
	}

	// Numbering pass: row-major scan of distinct origin cells.
	next := 1
	var clues []Clue
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			num := 0
			for i := range numbered {
				p := &numbered[i]
				if p.Row != r || p.Col != c {
					continue
				}
				if num == 0 {
					num = next
					next++
					b.Cells[r][c].Number = num
				}
				p.Number = num
				clues = append(clues, Clue{
					Number:      num,
					Text:        p.Clue,
					Letters:     p.Letters,
					Orientation: p.Orientation,
				})
			}
		}
	}

	return b, clues, numbered
}

// String renders the board as a compact text grid, one rune per cell with
// '.' for empty cells. Intended for tests and debug output; the render
// package produces the presentable formats.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if l := b.Cells[r][c].Letter; l != "" {
				sb.WriteString(l)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
