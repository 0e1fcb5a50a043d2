package puzzle

import "testing"

// boardWith derives a board from the given placements on a 10x10 grid.
func boardWith(t *testing.T, ps ...Placement) Board {
	t.Helper()
	b, _, _ := Derive(ps, 10, 10)
	return b
}

func TestCanPlace_Bounds(t *testing.T) {
	b, _, _ := Derive(nil, 5, 5)

	tests := []struct {
		name string
		row  int
		col  int
		o    Orientation
	}{
		{"across overflow right", 0, 3, Across},
		{"down overflow bottom", 3, 0, Down},
		{"negative row", -1, 0, Across},
		{"negative col", 0, -1, Down},
	}
	for _, tt := range tests {
		for _, level := range []Strictness{Interactive, AutoStrict, AutoRelaxed} {
			if CanPlace(b, "CAT", tt.row, tt.col, tt.o, level) {
				t.Errorf("%s (level %d): CanPlace = true, want false", tt.name, level)
			}
		}
	}
}

func TestCanPlace_EmptyWord(t *testing.T) {
	b, _, _ := Derive(nil, 5, 5)
	if CanPlace(b, "", 0, 0, Across, Interactive) {
		t.Error("empty word should not be placeable")
	}
}

func TestCanPlace_CrossingLetterMatch(t *testing.T) {
	// "MAP" across at (2,1) puts A at (2,2).
	b := boardWith(t, Placement{Word: Word{ID: "m", Letters: "MAP"}, Row: 2, Col: 1, Orientation: Across})

	// "CAT" down from (1,2) puts its A at (2,2): exact match, accept.
	if !CanPlace(b, "CAT", 1, 2, Down, Interactive) {
		t.Error("matching crossing rejected")
	}
	// "COT" down from (1,2) puts O at (2,2): mismatch, reject.
	if CanPlace(b, "COT", 1, 2, Down, Interactive) {
		t.Error("mismatched crossing accepted")
	}
	// The same letter checks hold under the auto levels.
	if CanPlace(b, "COT", 1, 2, Down, AutoStrict) {
		t.Error("mismatched crossing accepted under strict adjacency")
	}
}

func TestCanPlace_ParallelAdjacency(t *testing.T) {
	// "STONE" across at row 4.
	b := boardWith(t, Placement{Word: Word{ID: "s", Letters: "STONE"}, Row: 4, Col: 2, Orientation: Across})

	// A word flush against it on the next row shares no crossing.
	if CanPlace(b, "STONE", 5, 2, Across, AutoRelaxed) {
		t.Error("flush parallel run accepted under relaxed adjacency")
	}
	if !CanPlace(b, "STONE", 5, 2, Across, Interactive) {
		t.Error("flush parallel run rejected by interactive level")
	}
}

func TestCanPlace_GapRule(t *testing.T) {
	// Two equal-length words with exactly one empty row between them.
	b := boardWith(t, Placement{Word: Word{ID: "s", Letters: "STONE"}, Row: 4, Col: 2, Orientation: Across})

	if CanPlace(b, "SLATE", 6, 2, Across, AutoStrict) {
		t.Error("one-row gap accepted under strict spacing")
	}
	if !CanPlace(b, "SLATE", 6, 2, Across, AutoRelaxed) {
		t.Error("one-row gap rejected under relaxed spacing")
	}
	if !CanPlace(b, "SLATE", 6, 2, Across, Interactive) {
		t.Error("one-row gap rejected by interactive level")
	}
}

func TestCanPlace_EndCaps(t *testing.T) {
	// "NO" across at (3,4) occupies (3,4) and (3,5).
	b := boardWith(t, Placement{Word: Word{ID: "n", Letters: "NO"}, Row: 3, Col: 4, Orientation: Across})

	// "ON" across ending right before (3,4) would concatenate into ONNO.
	if CanPlace(b, "ON", 3, 2, Across, AutoRelaxed) {
		t.Error("collinear concatenation before an existing word accepted")
	}
	// Likewise starting right after (3,5).
	if CanPlace(b, "ON", 3, 6, Across, AutoRelaxed) {
		t.Error("collinear concatenation after an existing word accepted")
	}
}

func TestCanPlace_DiagonalCorner(t *testing.T) {
	// "AXLE" down at (2,2) occupies (2..5, 2).
	b := boardWith(t, Placement{Word: Word{ID: "a", Letters: "AXLE"}, Row: 2, Col: 2, Orientation: Down})

	// "TEA" down at (6,3) touches (5,2) only at the corner (6,3)-(5,2):
	// no orthogonal crossing explains the contact.
	if CanPlace(b, "TEA", 6, 3, Down, AutoRelaxed) {
		t.Error("corner-only diagonal contact accepted")
	}
	if !CanPlace(b, "TEA", 6, 3, Down, Interactive) {
		t.Error("corner-only contact rejected by interactive level")
	}
}

func TestCanPlace_ValidCrossingUnderAuto(t *testing.T) {
	// "REACT" across at (4,2): R(4,2) E(4,3) A(4,4) C(4,5) T(4,6).
	b := boardWith(t, Placement{Word: Word{ID: "r", Letters: "REACT"}, Row: 4, Col: 2, Orientation: Across})

	// "STATE" down crossing at the T: STATE[3]=T aligns with (4,6) when
	// the origin is (1,6).
	if !CanPlace(b, "STATE", 1, 6, Down, AutoStrict) {
		t.Error("legitimate perpendicular crossing rejected under strict adjacency")
	}
}
