package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/puzzle"
	"github.com/mattkessler/crossweave/pkg/render"
)

// placeCommand creates the interactive placement command.
func (c *CLI) placeCommand() *cobra.Command {
	var (
		rows   int
		cols   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "place <words-file>",
		Short: "Interactively place words on a grid",
		Long: `Open an interactive terminal UI for placing words on a grid by hand.

Pick a word from the list, move it over the grid with the arrow keys,
flip its orientation with tab, and confirm with enter. A placement is
accepted when it stays in bounds and agrees with letters already on the
grid. Press s to save the layout and quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.loadConfig()
			if rows == 0 {
				rows = cfg.Grid.Rows
			}
			if cols == 0 {
				cols = cfg.Grid.Cols
			}
			if err := errors.ValidateGridSize(rows, cols); err != nil {
				return err
			}

			words, err := readWords(args[0])
			if err != nil {
				return err
			}
			if len(words) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "word list %s is empty", args[0])
			}

			model := newPlaceModel(words, rows, cols)
			final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "running placement UI")
			}

			m, ok := final.(placeModel)
			if !ok || !m.save {
				printInfo("layout discarded")
				return nil
			}

			board, clues, numbered := puzzle.Derive(m.placements, rows, cols)
			data, err := render.JSON(board,
				render.WithJSONClues(clues),
				render.WithJSONPlacements(numbered),
				render.WithJSONLetters(),
			)
			if err != nil {
				return err
			}

			base := output
			if base == "" {
				base = outputBase(args[0])
			}
			paths, err := writeArtifacts(base, map[string][]byte{"json": data})
			if err != nil {
				return err
			}
			printSuccess("saved %d placement(s)", len(numbered))
			for _, path := range paths {
				printFile(path)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "grid rows (default from config)")
	cmd.Flags().IntVar(&cols, "cols", 0, "grid columns (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default from input name)")

	return cmd
}

// UI modes for the placement model.
const (
	modeSelect = iota
	modePosition
)

// placeModel is the bubbletea model for interactive placement.
type placeModel struct {
	words      []puzzle.Word
	placements []puzzle.Placement
	rows       int
	cols       int

	mode        int
	cursor      int
	row         int
	col         int
	orientation puzzle.Orientation

	status string
	save   bool
	height int
}

var (
	placeTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	placeSelectedStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	placePlacedStyle   = lipgloss.NewStyle().Foreground(colorGray).Strikethrough(true)
	placeCursorStyle   = lipgloss.NewStyle().Background(colorCyan).Foreground(lipgloss.Color("0"))
	placeStatusStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	placeHelpStyle     = lipgloss.NewStyle().Foreground(colorGray)
)

func newPlaceModel(words []puzzle.Word, rows, cols int) placeModel {
	return placeModel{
		words:       words,
		rows:        rows,
		cols:        cols,
		orientation: puzzle.Across,
	}
}

// Init implements tea.Model.
func (m placeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m placeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s":
			m.save = true
			return m, tea.Quit
		case "u":
			if len(m.placements) > 0 {
				undone := m.placements[len(m.placements)-1]
				m.placements = m.placements[:len(m.placements)-1]
				m.status = fmt.Sprintf("removed %s", undone.Letters)
			}
			return m, nil
		}
		if m.mode == modeSelect {
			return m.updateSelect(msg)
		}
		return m.updatePosition(msg)
	}
	return m, nil
}

func (m placeModel) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.words)-1 {
			m.cursor++
		}
	case "enter":
		if m.isPlaced(m.words[m.cursor].ID) {
			m.status = fmt.Sprintf("%s is already on the grid", m.words[m.cursor].Letters)
			return m, nil
		}
		m.mode = modePosition
		m.row, m.col = 0, 0
		m.status = ""
	}
	return m, nil
}

func (m placeModel) updatePosition(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	word := m.words[m.cursor]
	switch msg.String() {
	case "esc":
		m.mode = modeSelect
		m.status = ""
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < m.rows-1 {
			m.row++
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col < m.cols-1 {
			m.col++
		}
	case "tab", " ":
		m.orientation = m.orientation.Flip()
	case "enter":
		board, _, _ := puzzle.Derive(m.placements, m.rows, m.cols)
		if !puzzle.CanPlace(board, word.Letters, m.row, m.col, m.orientation, puzzle.Interactive) {
			m.status = fmt.Sprintf("%s does not fit at (%d,%d) %s", word.Letters, m.row, m.col, m.orientation)
			return m, nil
		}
		m.placements = append(m.placements, puzzle.Placement{
			Word:        word,
			Row:         m.row,
			Col:         m.col,
			Orientation: m.orientation,
		})
		m.mode = modeSelect
		m.status = fmt.Sprintf("placed %s", word.Letters)
		if m.cursor < len(m.words)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m placeModel) isPlaced(wordID string) bool {
	for _, p := range m.placements {
		if p.ID == wordID {
			return true
		}
	}
	return false
}

// View implements tea.Model.
func (m placeModel) View() string {
	var sb strings.Builder
	sb.WriteString(placeTitleStyle.Render("crossweave place"))
	sb.WriteString(fmt.Sprintf("  %d/%d placed\n\n", len(m.placements), len(m.words)))

	grid := m.gridView()
	list := m.listView()
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, grid, "   ", list))
	sb.WriteString("\n")

	if m.status != "" {
		sb.WriteString(placeStatusStyle.Render(m.status))
		sb.WriteString("\n")
	}
	if m.mode == modeSelect {
		sb.WriteString(placeHelpStyle.Render("↑/↓ select · enter position · u undo · s save · q quit"))
	} else {
		sb.WriteString(placeHelpStyle.Render("arrows move · tab flip · enter place · esc back · q quit"))
	}
	sb.WriteString("\n")
	return sb.String()
}

// gridView renders the board with the pending word highlighted.
func (m placeModel) gridView() string {
	board, _, _ := puzzle.Derive(m.placements, m.rows, m.cols)

	pending := map[[2]int]byte{}
	if m.mode == modePosition {
		word := m.words[m.cursor]
		dr, dc := m.orientation.Step()
		for i := 0; i < len(word.Letters); i++ {
			pending[[2]int{m.row + i*dr, m.col + i*dc}] = word.Letters[i]
		}
	}

	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			cell := board.At(r, c)
			ch := "·"
			if cell.Letter != "" {
				ch = cell.Letter
			}
			if letter, ok := pending[[2]int{r, c}]; ok {
				sb.WriteString(placeCursorStyle.Render(string(letter)))
			} else {
				sb.WriteString(ch)
			}
			if c < m.cols-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// listView renders the word list with placement state.
func (m placeModel) listView() string {
	var sb strings.Builder
	for i, w := range m.words {
		line := w.Letters
		switch {
		case m.isPlaced(w.ID):
			line = placePlacedStyle.Render(line)
		case i == m.cursor:
			line = placeSelectedStyle.Render("> " + line)
		}
		if i != m.cursor || m.isPlaced(w.ID) {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
