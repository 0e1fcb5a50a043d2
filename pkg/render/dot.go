package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mattkessler/crossweave/pkg/puzzle"
)

// ToDOT converts a layout's crossing structure to Graphviz DOT format.
// Each placement becomes a node labeled with its answer; an edge joins
// two placements that share a cell. Isolated nodes show words the layout
// engine could not connect to the rest of the puzzle.
func ToDOT(placements []puzzle.Placement) string {
	var buf bytes.Buffer
	buf.WriteString("graph crossings {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("\n")

	for _, p := range placements {
		label := p.Letters
		if p.Number > 0 {
			label = fmt.Sprintf("%d %s\n%s", p.Number, p.Orientation, p.Letters)
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(p), label)
	}

	buf.WriteString("\n")
	for _, e := range crossingEdges(placements) {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.from, e.to)
	}

	buf.WriteString("}\n")
	return buf.String()
}

type crossingEdge struct {
	from, to string
}

// crossingEdges finds placement pairs that occupy a common cell. The
// pairwise scan is fine at crossword scale.
func crossingEdges(placements []puzzle.Placement) []crossingEdge {
	var edges []crossingEdge
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			if sharesCell(placements[i], placements[j]) {
				edges = append(edges, crossingEdge{nodeID(placements[i]), nodeID(placements[j])})
			}
		}
	}
	return edges
}

func sharesCell(a, b puzzle.Placement) bool {
	cells := make(map[[2]int]bool, len(a.Letters))
	for i := range len(a.Letters) {
		r, c := a.CellAt(i)
		cells[[2]int{r, c}] = true
	}
	for i := range len(b.Letters) {
		r, c := b.CellAt(i)
		if cells[[2]int{r, c}] {
			return true
		}
	}
	return false
}

func nodeID(p puzzle.Placement) string {
	if p.ID != "" {
		return p.ID
	}
	return fmt.Sprintf("%s@%d,%d,%s", p.Letters, p.Row, p.Col, p.Orientation)
}

// GraphSVG renders a DOT graph to SVG using Graphviz.
func GraphSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraph(ctx, dot, graphviz.SVG)
}

// GraphPNG renders a DOT graph to PNG using Graphviz.
func GraphPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraph(ctx, dot, graphviz.PNG)
}

func renderGraph(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
