package cli

import (
	"github.com/spf13/cobra"

	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/puzzle"
	"github.com/mattkessler/crossweave/pkg/wordlist"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		letters     string
		row         int
		col         int
		orientation string
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "check <layout.json>",
		Short: "Test whether a placement is valid on a layout",
		Long: `Test whether a word could be placed at a position on an existing layout.

By default the interactive rules apply: the word must stay in bounds and
agree with any letters already on the grid. With --strict, the automatic
layout rules apply as well, requiring at least one crossing and clear
cells around the word.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lf, err := readLayout(args[0])
			if err != nil {
				return err
			}
			word := wordlist.Sanitize(letters)
			if err := errors.ValidateLetters(word); err != nil {
				return err
			}
			if err := errors.ValidateOrientation(orientation); err != nil {
				return err
			}
			o := puzzle.Orientation(orientation)

			board, _, _ := puzzle.Derive(lf.Placements, lf.Rows, lf.Cols)

			level := puzzle.Interactive
			if strict {
				level = puzzle.AutoStrict
			}
			if puzzle.CanPlace(board, word, row, col, o, level) {
				printSuccess("%s fits at (%d,%d) %s", word, row, col, orientation)
				return nil
			}
			printError("%s does not fit at (%d,%d) %s", word, row, col, orientation)
			return errors.New(errors.ErrCodeInvalidInput, "placement rejected")
		},
	}

	cmd.Flags().StringVarP(&letters, "word", "w", "", "word to test (required)")
	cmd.Flags().IntVar(&row, "row", 0, "target row")
	cmd.Flags().IntVar(&col, "col", 0, "target column")
	cmd.Flags().StringVar(&orientation, "orientation", "across", "orientation (across, down)")
	cmd.Flags().BoolVar(&strict, "strict", false, "apply automatic layout rules")
	_ = cmd.MarkFlagRequired("word")

	return cmd
}
