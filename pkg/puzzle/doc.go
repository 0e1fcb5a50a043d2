// Package puzzle implements the crossword layout core: a derived board
// model, a placement validator, and a greedy auto-layout engine.
//
// The package is deliberately split into three pure pieces:
//
//   - [Derive] recomputes a Board (letters, collisions, clue numbers) from a
//     set of placements. The board is always derived wholesale; it is never
//     mutated incrementally, so collision flags and numbering can never go
//     stale after a removal.
//   - [CanPlace] decides whether a single word fits at a coordinate. The same
//     function serves both interactive placement (bounds and letter matching
//     only) and automatic layout (full adjacency rules), selected via a
//     [Strictness] level.
//   - [Layout] arranges a word list onto a bounded grid by greedy crossing
//     search, preferring placements close to the grid center.
//
// # Coordinates
//
// Cells are addressed as (row, col), zero-indexed from the top-left. An
// across word extends along increasing col, a down word along increasing row.
// A placement's origin is its first cell; clue numbers anchor there.
//
// # Purity
//
// All three entry points are pure functions: they take read-only inputs and
// return freshly allocated outputs. Concurrent calls on independent inputs
// are safe without synchronization.
package puzzle
