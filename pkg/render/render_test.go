package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mattkessler/crossweave/pkg/puzzle"
)

// crossedBoard derives a small board with REACT across and STATE down
// crossing at the shared T.
func crossedBoard(t *testing.T) (puzzle.Board, []puzzle.Clue, []puzzle.Placement) {
	t.Helper()
	ps := []puzzle.Placement{
		{Word: puzzle.Word{ID: "w1", Letters: "REACT", Clue: "frontend library"}, Row: 4, Col: 2, Orientation: puzzle.Across},
		{Word: puzzle.Word{ID: "w2", Letters: "STATE", Clue: "stored condition"}, Row: 1, Col: 6, Orientation: puzzle.Down},
	}
	board, clues, numbered := puzzle.Derive(ps, 10, 10)
	return board, clues, numbered
}

func TestSVG_GridGeometry(t *testing.T) {
	board, _, _ := crossedBoard(t)
	svg := string(SVG(board))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing svg header: %s", svg[:60])
	}
	// 10x10 grid renders one rect per cell
	if got, want := strings.Count(svg, "<rect"), 100; got != want {
		t.Errorf("rect count = %d, want %d", got, want)
	}
	// No letters or numbers without the options
	if strings.Contains(svg, "<text") {
		t.Error("unexpected text elements without WithLetters/WithNumbers")
	}
}

func TestSVG_LettersNumbersClues(t *testing.T) {
	board, clues, _ := crossedBoard(t)
	svg := string(SVG(board, WithLetters(), WithNumbers(), WithClues(clues)))

	for _, want := range []string{">R<", ">T<", ">1<", "Across", "Down", "frontend library", "stored condition"} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestSVG_CollisionShading(t *testing.T) {
	ps := []puzzle.Placement{
		{Word: puzzle.Word{ID: "a", Letters: "AB"}, Row: 0, Col: 0, Orientation: puzzle.Across},
		{Word: puzzle.Word{ID: "b", Letters: "ZZ"}, Row: 0, Col: 0, Orientation: puzzle.Across},
	}
	board, _, _ := puzzle.Derive(ps, 3, 3)

	plain := string(SVG(board))
	marked := string(SVG(board, WithCollisions()))
	if strings.Contains(plain, Simple.Collision) {
		t.Error("collision fill present without WithCollisions")
	}
	if !strings.Contains(marked, Simple.Collision) {
		t.Error("collision fill missing with WithCollisions")
	}
}

func TestSVG_EscapesClueText(t *testing.T) {
	ps := []puzzle.Placement{
		{Word: puzzle.Word{ID: "a", Letters: "AB", Clue: "<b> & co"}, Row: 0, Col: 0, Orientation: puzzle.Across},
	}
	board, clues, _ := puzzle.Derive(ps, 3, 3)
	svg := string(SVG(board, WithClues(clues)))
	if strings.Contains(svg, "<b> & co") {
		t.Error("clue text not escaped")
	}
	if !strings.Contains(svg, "&lt;b&gt; &amp; co") {
		t.Error("escaped clue text missing")
	}
}

func TestStyleByName(t *testing.T) {
	if s, ok := StyleByName(""); !ok || s.Name != "simple" {
		t.Errorf("StyleByName(\"\") = %q, %v", s.Name, ok)
	}
	if s, ok := StyleByName("print"); !ok || s.Name != "print" {
		t.Errorf("StyleByName(\"print\") = %q, %v", s.Name, ok)
	}
	if _, ok := StyleByName("neon"); ok {
		t.Error("StyleByName(\"neon\") should not resolve")
	}
}

func TestJSON(t *testing.T) {
	board, clues, numbered := crossedBoard(t)
	data, err := JSON(board,
		WithJSONLetters(),
		WithJSONClues(clues),
		WithJSONPlacements(numbered),
		WithJSONStyle("simple"),
	)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var out struct {
		Rows  int `json:"rows"`
		Cols  int `json:"cols"`
		Cells []struct {
			Row    int    `json:"row"`
			Col    int    `json:"col"`
			Letter string `json:"letter"`
		} `json:"cells"`
		Clues []struct {
			Number int    `json:"number"`
			Length int    `json:"length"`
			Text   string `json:"text"`
		} `json:"clues"`
		Placements []puzzle.Placement `json:"placements"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if out.Rows != 10 || out.Cols != 10 {
		t.Errorf("dims = %dx%d, want 10x10", out.Rows, out.Cols)
	}
	// REACT and STATE share one cell: 5 + 5 - 1 open cells
	if got, want := len(out.Cells), 9; got != want {
		t.Errorf("len(cells) = %d, want %d", got, want)
	}
	if got, want := len(out.Clues), 2; got != want {
		t.Errorf("len(clues) = %d, want %d", got, want)
	}
	if got, want := len(out.Placements), 2; got != want {
		t.Errorf("len(placements) = %d, want %d", got, want)
	}
	for _, c := range out.Clues {
		if c.Length != 5 {
			t.Errorf("clue %d length = %d, want 5", c.Number, c.Length)
		}
	}
}

func TestJSON_OmitsLettersByDefault(t *testing.T) {
	board, _, _ := crossedBoard(t)
	data, err := JSON(board)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if strings.Contains(string(data), `"letter"`) {
		t.Error("letters present without WithJSONLetters")
	}
}

func TestText(t *testing.T) {
	ps := []puzzle.Placement{
		{Word: puzzle.Word{ID: "a", Letters: "GO", Clue: "language"}, Row: 1, Col: 0, Orientation: puzzle.Across},
	}
	board, clues, _ := puzzle.Derive(ps, 3, 3)

	got := Text(board, WithTextLetters(), WithTextClues(clues))
	want := "# # #\nG O #\n# # #\n\nAcross:\n  1. language\n"
	if got != want {
		t.Errorf("Text() =\n%s\nwant:\n%s", got, want)
	}

	masked := Text(board)
	if !strings.Contains(masked, "_ _ #") {
		t.Errorf("masked grid missing open markers:\n%s", masked)
	}
}

func TestToDOT(t *testing.T) {
	_, _, numbered := crossedBoard(t)
	dot := ToDOT(numbered)

	if !strings.HasPrefix(dot, "graph crossings {") {
		t.Errorf("unexpected header: %s", dot[:30])
	}
	if !strings.Contains(dot, "REACT") || !strings.Contains(dot, "STATE") {
		t.Error("DOT missing placement nodes")
	}
	// The two words cross, so exactly one edge
	if got, want := strings.Count(dot, " -- "), 1; got != want {
		t.Errorf("edge count = %d, want %d", got, want)
	}
}

func TestToDOT_NoCrossings(t *testing.T) {
	ps := []puzzle.Placement{
		{Word: puzzle.Word{ID: "a", Letters: "ONE"}, Row: 0, Col: 0, Orientation: puzzle.Across},
		{Word: puzzle.Word{ID: "b", Letters: "TWO"}, Row: 4, Col: 0, Orientation: puzzle.Across},
	}
	dot := ToDOT(ps)
	if strings.Contains(dot, " -- ") {
		t.Error("unexpected edges for disjoint placements")
	}
}
