package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/generate"
	"github.com/mattkessler/crossweave/pkg/pipeline"
	"github.com/mattkessler/crossweave/pkg/puzzle"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		count   int
		model   string
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "generate <theme>",
		Short: "Produce a themed word list with Gemini",
		Long: `Produce a themed word list using the Gemini API.

Requires a GEMINI_API_KEY environment variable. The generated list is
written in the word-list format accepted by the layout command, one
"ANSWER - clue" entry per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			cfg := c.loadConfig()
			if model == "" {
				model = cfg.Generate.Model
			}

			client, err := generate.NewClient(ctx, model)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()
			runner.Generator = client

			spin := NewSpinner(ctx, os.Stderr, fmt.Sprintf("generating words for %q...", args[0]))
			words, err := runner.Words(ctx, pipeline.Options{
				Theme:     args[0],
				WordCount: count,
				Refresh:   refresh,
				Logger:    c.Logger,
			})
			if err != nil {
				spin.StopWithError("generation failed")
				return err
			}
			spin.Stop()

			text := formatWordList(words)
			if output == "" {
				fmt.Print(text)
			} else {
				if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
					return errors.Wrap(errors.ErrCodeStorage, err, "writing %s", output)
				}
				printSuccess("generated %d words", len(words))
				printFile(output)
				printNextStep("crossweave layout " + output)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", generate.DefaultCount, "number of words to generate")
	cmd.Flags().StringVar(&model, "model", "", "Gemini model (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "regenerate even when cached")

	return cmd
}

// formatWordList renders words in the line format the layout command reads.
func formatWordList(words []puzzle.Word) string {
	var sb strings.Builder
	for _, w := range words {
		if w.Clue == "" {
			sb.WriteString(w.Letters)
		} else {
			sb.WriteString(w.Letters + " - " + w.Clue)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
