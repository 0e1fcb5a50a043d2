package puzzle

// Orientation is the direction a placed word extends in.
type Orientation string

const (
	// Across extends along increasing column, one row.
	Across Orientation = "across"
	// Down extends along increasing row, one column.
	Down Orientation = "down"
)

// Step returns the unit step (Δrow, Δcol) for the orientation:
// (0,1) for across, (1,0) for down.
func (o Orientation) Step() (dr, dc int) {
	if o == Down {
		return 1, 0
	}
	return 0, 1
}

// Flip returns the perpendicular orientation.
func (o Orientation) Flip() Orientation {
	if o == Down {
		return Across
	}
	return Down
}

// Word is an unplaced dictionary entry. ID is a stable identity that
// survives re-parses of the source text; Letters is the uppercase
// alphanumeric answer with no separators; Clue is free text.
//
// The package does not sanitize Letters - word sources are expected to
// deliver pre-sanitized strings (see the wordlist package).
type Word struct {
	ID      string `json:"id" bson:"id"`
	Letters string `json:"letters" bson:"letters"`
	Clue    string `json:"clue" bson:"clue"`
}

// Placement is a word committed to specific grid coordinates. Row and Col
// address the origin (first) cell, zero-indexed. Number is the clue number
// assigned during board derivation; it is zero until [Derive] runs.
type Placement struct {
	Word        `bson:",inline"`
	Row         int         `json:"row" bson:"row"`
	Col         int         `json:"col" bson:"col"`
	Orientation Orientation `json:"orientation" bson:"orientation"`
	Number      int         `json:"number,omitempty" bson:"number,omitempty"`
}

// CellAt returns the coordinates of the i-th letter cell.
func (p Placement) CellAt(i int) (row, col int) {
	dr, dc := p.Orientation.Step()
	return p.Row + i*dr, p.Col + i*dc
}

// center returns the midpoint of the placement's extent in cell units.
// Used by the layout engine to bias placements toward the grid center.
func (p Placement) center() (row, col float64) {
	dr, dc := p.Orientation.Step()
	half := float64(len(p.Letters)-1) / 2
	return float64(p.Row) + float64(dr)*half, float64(p.Col) + float64(dc)*half
}
