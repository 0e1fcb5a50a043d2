package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattkessler/crossweave/pkg/puzzle"
)

func keyPress(m tea.Model, key string) placeModel {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(placeModel)
}

func testWords() []puzzle.Word {
	return []puzzle.Word{
		{ID: "w1", Letters: "REACT"},
		{ID: "w2", Letters: "STATE"},
	}
}

func TestPlaceModelPlacement(t *testing.T) {
	m := newPlaceModel(testWords(), 10, 10)

	m = keyPress(m, "enter") // position REACT
	if m.mode != modePosition {
		t.Fatalf("mode = %d, want position", m.mode)
	}
	m = keyPress(m, "down")
	m = keyPress(m, "right")
	m = keyPress(m, "enter")

	if len(m.placements) != 1 {
		t.Fatalf("placements = %d, want 1", len(m.placements))
	}
	p := m.placements[0]
	if p.Row != 1 || p.Col != 1 || p.Orientation != puzzle.Across {
		t.Errorf("placement = (%d,%d) %s, want (1,1) across", p.Row, p.Col, p.Orientation)
	}
	if m.mode != modeSelect {
		t.Error("mode did not return to select after placing")
	}
}

func TestPlaceModelFlipOrientation(t *testing.T) {
	m := newPlaceModel(testWords(), 10, 10)
	m = keyPress(m, "enter")
	m = keyPress(m, "tab")

	if m.orientation != puzzle.Down {
		t.Errorf("orientation = %q, want down", m.orientation)
	}
}

func TestPlaceModelRejectsOutOfBounds(t *testing.T) {
	m := newPlaceModel(testWords(), 5, 5)
	m = keyPress(m, "enter")
	for i := 0; i < 4; i++ {
		m = keyPress(m, "right")
	}
	m = keyPress(m, "enter") // REACT at col 4 overruns a 5-wide grid

	if len(m.placements) != 0 {
		t.Fatalf("placements = %d, want 0", len(m.placements))
	}
	if m.status == "" {
		t.Error("expected a rejection status message")
	}
}

func TestPlaceModelUndo(t *testing.T) {
	m := newPlaceModel(testWords(), 10, 10)
	m = keyPress(m, "enter")
	m = keyPress(m, "enter")
	if len(m.placements) != 1 {
		t.Fatalf("placements = %d, want 1", len(m.placements))
	}

	m = keyPress(m, "u")
	if len(m.placements) != 0 {
		t.Errorf("placements after undo = %d, want 0", len(m.placements))
	}
}

func TestPlaceModelSaveQuits(t *testing.T) {
	m := newPlaceModel(testWords(), 10, 10)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})

	if !next.(placeModel).save {
		t.Error("save flag not set")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestPlaceModelView(t *testing.T) {
	m := newPlaceModel(testWords(), 5, 5)
	view := m.View()

	if !strings.Contains(view, "REACT") {
		t.Errorf("view missing word list: %q", view)
	}
	if !strings.Contains(view, "0/2 placed") {
		t.Errorf("view missing progress: %q", view)
	}
}
