// Package render turns derived crossword boards into output artifacts.
//
// # Overview
//
// Three sinks cover the usual consumers:
//
//   - [SVG] draws the grid for browsers and print
//   - [JSON] emits the board and clues for programmatic use
//   - [Text] prints a terminal-friendly grid
//
// The [ToDOT] function renders the crossing structure of a layout as a
// Graphviz node-link diagram, which is handy for debugging why the
// layout engine connected (or failed to connect) particular words.
package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/mattkessler/crossweave/pkg/puzzle"
)

// Style controls SVG colors and stroke widths.
type Style struct {
	Name       string
	Background string
	CellFill   string
	BlockFill  string
	GridStroke string
	LetterFill string
	NumberFill string
	Collision  string
	FontFamily string
}

// Simple is the default screen style.
var Simple = Style{
	Name:       "simple",
	Background: "transparent",
	CellFill:   "#ffffff",
	BlockFill:  "#1a1a2e",
	GridStroke: "#333333",
	LetterFill: "#111111",
	NumberFill: "#666666",
	Collision:  "#ffd2d2",
	FontFamily: "Helvetica, Arial, sans-serif",
}

// Print is a high-contrast style for paper.
var Print = Style{
	Name:       "print",
	Background: "#ffffff",
	CellFill:   "#ffffff",
	BlockFill:  "#000000",
	GridStroke: "#000000",
	LetterFill: "#000000",
	NumberFill: "#444444",
	Collision:  "#dddddd",
	FontFamily: "Georgia, serif",
}

// StyleByName resolves a style name from config or CLI flags.
func StyleByName(name string) (Style, bool) {
	switch name {
	case "", "simple":
		return Simple, true
	case "print":
		return Print, true
	}
	return Style{}, false
}

// Option configures SVG rendering via [SVG].
type Option func(*renderer)

type renderer struct {
	style       Style
	cellSize    float64
	showLetters bool
	showNumbers bool
	showClues   bool
	markClashes bool
	clues       []puzzle.Clue
}

// WithStyle selects the visual style. Defaults to [Simple].
func WithStyle(s Style) Option { return func(r *renderer) { r.style = s } }

// WithCellSize sets the pixel size of one grid cell. Defaults to 36.
func WithCellSize(px float64) Option { return func(r *renderer) { r.cellSize = px } }

// WithLetters draws the solution letters into the grid.
func WithLetters() Option { return func(r *renderer) { r.showLetters = true } }

// WithNumbers draws clue numbers into their start cells.
func WithNumbers() Option { return func(r *renderer) { r.showNumbers = true } }

// WithClues appends an across/down clue panel below the grid.
func WithClues(clues []puzzle.Clue) Option {
	return func(r *renderer) { r.showClues = true; r.clues = clues }
}

// WithCollisions shades cells where placements disagree on a letter.
func WithCollisions() Option { return func(r *renderer) { r.markClashes = true } }

const (
	defaultCellSize = 36.0
	cluePanelLine   = 18.0
	margin          = 8.0
)

// SVG renders the board as a standalone SVG document.
func SVG(b puzzle.Board, opts ...Option) []byte {
	r := newRenderer(opts...)

	gridW := float64(b.Cols) * r.cellSize
	gridH := float64(b.Rows) * r.cellSize
	totalW := gridW + 2*margin
	totalH := gridH + 2*margin
	if r.showClues {
		totalH += cluePanelHeight(r.clues)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		totalW, totalH, totalW, totalH)
	if r.style.Background != "transparent" {
		fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", totalW, totalH, r.style.Background)
	}

	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			r.renderCell(&buf, b.At(row, col), row, col)
		}
	}

	if r.showClues {
		r.renderCluePanel(&buf, gridH+2*margin)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newRenderer(opts ...Option) renderer {
	r := renderer{style: Simple, cellSize: defaultCellSize}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *renderer) renderCell(buf *bytes.Buffer, cell puzzle.Cell, row, col int) {
	x := margin + float64(col)*r.cellSize
	y := margin + float64(row)*r.cellSize

	fill := r.style.BlockFill
	if cell.Letter != "" {
		fill = r.style.CellFill
		if r.markClashes && cell.Collision {
			fill = r.style.Collision
		}
	}
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		x, y, r.cellSize, r.cellSize, fill, r.style.GridStroke)

	if cell.Letter == "" {
		return
	}
	if r.showNumbers && cell.Number > 0 {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" fill="%s">%d</text>`+"\n",
			x+2, y+r.cellSize*0.28, r.style.FontFamily, r.cellSize*0.26, r.style.NumberFill, cell.Number)
	}
	if r.showLetters {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
			x+r.cellSize/2, y+r.cellSize*0.72, r.style.FontFamily, r.cellSize*0.5, r.style.LetterFill, html.EscapeString(cell.Letter))
	}
}

func cluePanelHeight(clues []puzzle.Clue) float64 {
	// Two headings plus one line per clue.
	return cluePanelLine*float64(len(clues)+2) + margin
}

func (r *renderer) renderCluePanel(buf *bytes.Buffer, top float64) {
	y := top + cluePanelLine

	writeGroup := func(heading string, o puzzle.Orientation) {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="13" font-weight="bold" fill="%s">%s</text>`+"\n",
			margin, y, r.style.FontFamily, r.style.LetterFill, heading)
		y += cluePanelLine
		for _, c := range r.clues {
			if c.Orientation != o {
				continue
			}
			text := c.Text
			if text == "" {
				text = c.Letters
			}
			fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="12" fill="%s">%d. %s</text>`+"\n",
				margin+8, y, r.style.FontFamily, r.style.LetterFill, c.Number, html.EscapeString(text))
			y += cluePanelLine
		}
	}

	writeGroup("Across", puzzle.Across)
	writeGroup("Down", puzzle.Down)
}
