package puzzle

// Strictness selects how much spacing [CanPlace] enforces around a
// candidate word. All levels share the same bounds and letter-match core,
// so the crossing math lives in exactly one place.
type Strictness int

const (
	// Interactive checks bounds and letter matches only. Used by manual
	// placement and hover previews, where the user may deliberately park a
	// word flush against another.
	Interactive Strictness = iota
	// AutoStrict adds the full adjacency rules with a two-cell gap
	// requirement between parallel word runs. The layout engine tries this
	// level first.
	AutoStrict
	// AutoRelaxed is AutoStrict with the two-cell gap requirement dropped:
	// one empty cell between parallel runs suffices.
	AutoRelaxed
)

// CanPlace reports whether letters can be placed on the board with its
// origin at (row, col) extending along o.
//
// Every level rejects placements that extend outside the board, and
// placements where an occupied target cell holds a different letter (a
// crossing is only valid on an exact match).
//
// The Auto levels additionally reject placements that would create
// unintended adjacent runs:
//
//   - each newly-written cell must have empty cells one step to either
//     side, perpendicular to the word (no flush parallel runs);
//   - under AutoStrict, the cells two steps perpendicular must be empty
//     too (a full empty lane between parallel runs);
//   - an occupied diagonal neighbor of a newly-written cell must be
//     accompanied by an occupied orthogonal cell sharing that corner
//     (diagonal contact is only allowed next to a real crossing);
//   - the cells immediately before the word's start and after its end
//     must be empty (no accidental concatenation of collinear words).
//
// "This doesn't fit here" is an expected, frequent outcome during layout
// search, so the answer is a plain boolean, never an error.
func CanPlace(b Board, letters string, row, col int, o Orientation, level Strictness) bool {
	if len(letters) == 0 {
		return false
	}
	dr, dc := o.Step()

	endRow := row + (len(letters)-1)*dr
	endCol := col + (len(letters)-1)*dc
	if row < 0 || col < 0 || endRow >= b.Rows || endCol >= b.Cols {
		return false
	}

	for i := 0; i < len(letters); i++ {
		r, c := row+i*dr, col+i*dc
		cell := b.At(r, c)
		if cell.Letter != "" {
			if cell.Letter != string(letters[i]) {
				return false
			}
			continue // legitimate crossing, no adjacency rules apply
		}
		if level == Interactive {
			continue
		}
		if !autoCellOK(b, r, c, dr, dc, level) {
			return false
		}
	}

	if level == Interactive {
		return true
	}

	// End caps: the cells just before the origin and just past the end
	// must be empty, or the word would concatenate with a collinear run.
	if b.occupied(row-dr, col-dc) || b.occupied(endRow+dr, endCol+dc) {
		return false
	}
	return true
}

// autoCellOK applies the adjacency rules to a single newly-written cell at
// (r, c) for a word stepping (dr, dc). The perpendicular step is (dc, dr).
func autoCellOK(b Board, r, c, dr, dc int, level Strictness) bool {
	// Parallel rule: one step to each side must be empty.
	if b.occupied(r+dc, c+dr) || b.occupied(r-dc, c-dr) {
		return false
	}
	// Gap rule: under strict spacing, two steps to each side as well.
	if level == AutoStrict {
		if b.occupied(r+2*dc, c+2*dr) || b.occupied(r-2*dc, c-2*dr) {
			return false
		}
	}
	// Corner rule: an occupied diagonal must be explained by an occupied
	// orthogonal neighbor sharing the corner, i.e. an adjacent crossing.
	for _, d := range [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		if !b.occupied(r+d[0], c+d[1]) {
			continue
		}
		if !b.occupied(r+d[0], c) && !b.occupied(r, c+d[1]) {
			return false
		}
	}
	return true
}
