package puzzle

import (
	"slices"
	"sort"
)

// Layout arranges words onto a rows x cols grid and returns the placements
// it found room for. It is best-effort: words that never find a valid
// crossing are silently omitted, so callers should compare the result
// length against the input length to report unplaced words.
//
// The algorithm is greedy and never backtracks - once a word is committed
// it stays put, even if that blocks later words:
//
//  1. Words are sorted by descending length (stable, so equal lengths keep
//     their input order). The longest word offers the most crossing
//     opportunities and anchors the layout, placed across and centered; an
//     anchor too long to center falls back to the top-left corner.
//  2. Remaining words are scanned repeatedly. For each, every shared
//     letter with every placed word yields a candidate perpendicular
//     crossing, validated under [AutoStrict] first and [AutoRelaxed] only
//     when no strict candidate exists anywhere.
//  3. Among valid candidates the one whose midpoint is closest to the grid
//     center (squared Euclidean distance) wins; exact ties go to the first
//     candidate found.
//  4. A full pass that places nothing terminates the search.
//
// Layout([], rows, cols) and non-positive dimensions return nil.
func Layout(words []Word, rows, cols int) []Placement {
	if len(words) == 0 || rows <= 0 || cols <= 0 {
		return nil
	}

	sorted := slices.Clone(words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Letters) > len(sorted[j].Letters)
	})

	// The anchor word is never validated: the board is empty and the
	// centered origin is in bounds whenever the word fits at all.
	anchor := Placement{
		Word:        sorted[0],
		Row:         rows / 2,
		Col:         (cols - len(sorted[0].Letters)) / 2,
		Orientation: Across,
	}
	if anchor.Col < 0 {
		anchor.Row, anchor.Col = 0, 0
	}

	placed := []Placement{anchor}
	remaining := sorted[1:]
	board, _, _ := Derive(placed, rows, cols)

	for progress := true; progress; {
		progress = false
		for i := 0; i < len(remaining); {
			cand, ok := bestCrossing(board, placed, remaining[i], rows, cols)
			if !ok {
				i++
				continue
			}
			placed = append(placed, cand)
			remaining = slices.Delete(remaining, i, i+1)
			board, _, _ = Derive(placed, rows, cols)
			progress = true
			// i is not advanced: the next unplaced word now sits at i.
		}
	}
	return placed
}

// bestCrossing finds the valid crossing placement for w closest to the
// grid center, trying strict adjacency before relaxed.
func bestCrossing(b Board, placed []Placement, w Word, rows, cols int) (Placement, bool) {
	if cand, ok := sweepCrossings(b, placed, w, rows, cols, AutoStrict); ok {
		return cand, true
	}
	return sweepCrossings(b, placed, w, rows, cols, AutoRelaxed)
}

// sweepCrossings generates every crossing candidate for w against the
// placed words and returns the valid one nearest the grid center under the
// given strictness. The scan order (placed words outer, candidate letters
// middle, placed letters inner) makes the exact-tie winner deterministic
// for a fixed input order.
func sweepCrossings(b Board, placed []Placement, w Word, rows, cols int, level Strictness) (Placement, bool) {
	centerRow := float64(rows-1) / 2
	centerCol := float64(cols-1) / 2

	var best Placement
	bestDist := -1.0

	for _, p := range placed {
		pdr, pdc := p.Orientation.Step()
		o := p.Orientation.Flip()
		dr, dc := o.Step()
		for j := 0; j < len(w.Letters); j++ {
			for k := 0; k < len(p.Letters); k++ {
				if w.Letters[j] != p.Letters[k] {
					continue
				}
				crossRow := p.Row + k*pdr
				crossCol := p.Col + k*pdc
				cand := Placement{
					Word:        w,
					Row:         crossRow - j*dr,
					Col:         crossCol - j*dc,
					Orientation: o,
				}
				if !CanPlace(b, w.Letters, cand.Row, cand.Col, o, level) {
					continue
				}
				cr, cc := cand.center()
				dist := (cr-centerRow)*(cr-centerRow) + (cc-centerCol)*(cc-centerCol)
				if bestDist < 0 || dist < bestDist {
					best, bestDist = cand, dist
				}
			}
		}
	}
	return best, bestDist >= 0
}
