package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for terminal output.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("42")
	colorRed    = lipgloss.Color("196")
	colorYellow = lipgloss.Color("220")
	colorGray   = lipgloss.Color("245")
)

// Shared styles for CLI output.
var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleInfo    = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorGray)
	styleBold    = lipgloss.NewStyle().Bold(true)
)

// printSuccess prints a success message with a checkmark.
func printSuccess(format string, args ...any) {
	fmt.Println(styleSuccess.Render("✓"), fmt.Sprintf(format, args...))
}

// printError prints an error message with a cross.
func printError(format string, args ...any) {
	fmt.Println(styleError.Render("✗"), fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	fmt.Println(styleWarning.Render("!"), fmt.Sprintf(format, args...))
}

// printInfo prints an informational message.
func printInfo(format string, args ...any) {
	fmt.Println(styleInfo.Render("›"), fmt.Sprintf(format, args...))
}

// printFile prints a file path that was written.
func printFile(path string) {
	fmt.Println(styleDim.Render("  →"), path)
}

// printKeyValue prints an aligned key/value detail line.
func printKeyValue(key string, value any) {
	fmt.Printf("  %s %v\n", styleDim.Render(key+":"), value)
}

// printStats prints pipeline statistics after a run.
func printStats(stats pipelineStats) {
	fmt.Println()
	fmt.Println(styleBold.Render("Stats"))
	printKeyValue("words", stats.Words)
	printKeyValue("placed", stats.Placed)
	if stats.Dropped > 0 {
		printKeyValue("dropped", stats.Dropped)
	}
	printKeyValue("grid", fmt.Sprintf("%dx%d", stats.Rows, stats.Cols))
	if stats.Cached {
		printKeyValue("cache", "hit")
	}
}

// pipelineStats summarizes a layout run for display.
type pipelineStats struct {
	Words   int
	Placed  int
	Dropped int
	Rows    int
	Cols    int
	Cached  bool
}

// printNextStep suggests a follow-up command.
func printNextStep(command string) {
	fmt.Println()
	fmt.Println(styleDim.Render("Next:"), styleInfo.Render(command))
}
