package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mattkessler/crossweave/pkg/pipeline"
)

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		rows    int
		cols    int
		formats string
		style   string
		letters bool
		clues   bool
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "layout <words-file>",
		Short: "Compute a crossword layout from a word list",
		Long: `Compute a crossword layout from a word list file.

Each line of the file holds one entry, either an answer on its own or an
answer and clue separated by " - ", a tab, or ": ". Use "-" to read the
word list from stdin. The resulting grid is rendered to one file per
requested format, written next to the input file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			cfg := c.loadConfig()

			words, err := readWords(args[0])
			if err != nil {
				return err
			}

			if rows == 0 {
				rows = cfg.Grid.Rows
			}
			if cols == 0 {
				cols = cfg.Grid.Cols
			}
			if style == "" {
				style = cfg.Render.Style
			}

			opts := pipeline.Options{
				Words:       words,
				Rows:        rows,
				Cols:        cols,
				Formats:     parseFormats(formats),
				Style:       style,
				ShowLetters: letters,
				ShowClues:   clues,
				Refresh:     refresh,
				Logger:      c.Logger,
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			spin := NewSpinner(ctx, os.Stderr, "computing layout...")
			result, err := runner.Execute(ctx, opts)
			if err != nil {
				spin.StopWithError("layout failed")
				return err
			}
			spin.Stop()

			base := output
			if base == "" {
				base = outputBase(args[0])
			}
			paths, err := writeArtifacts(base, result.Artifacts)
			if err != nil {
				return err
			}

			printSuccess("placed %d of %d words", result.Stats.PlacedCount, result.Stats.WordCount)
			if dropped := result.Stats.WordCount - result.Stats.PlacedCount; dropped > 0 {
				printWarning("%d word(s) did not fit, try a larger grid", dropped)
			}
			for _, path := range paths {
				printFile(path)
			}
			printStats(pipelineStats{
				Words:   result.Stats.WordCount,
				Placed:  result.Stats.PlacedCount,
				Dropped: result.Stats.WordCount - result.Stats.PlacedCount,
				Rows:    rows,
				Cols:    cols,
				Cached:  result.CacheInfo.LayoutHit,
			})
			printNextStep("crossweave render " + base + ".json --format text --letters")
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "grid rows (default from config)")
	cmd.Flags().IntVar(&cols, "cols", 0, "grid columns (default from config)")
	cmd.Flags().StringVarP(&formats, "format", "f", "svg,json", "output formats (svg, json, text, dot)")
	cmd.Flags().StringVar(&style, "style", "", "render style (simple, print)")
	cmd.Flags().BoolVar(&letters, "letters", false, "show solution letters in output")
	cmd.Flags().BoolVar(&clues, "clues", false, "include clues in output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default from input name)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when cached")

	return cmd
}
