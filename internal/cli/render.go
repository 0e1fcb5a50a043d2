package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/pipeline"
	"github.com/mattkessler/crossweave/pkg/puzzle"
	"github.com/mattkessler/crossweave/pkg/render"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formats string
		style   string
		letters bool
		clues   bool
		output  string
		graph   string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render <layout.json>",
		Short: "Re-render a computed layout to other formats",
		Long: `Re-render a previously computed layout without recomputing it.

The input is a JSON artifact written by the layout command. The grid is
rebuilt from the stored placements and rendered to each requested
format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			cfg := c.loadConfig()

			lf, err := readLayout(args[0])
			if err != nil {
				return err
			}
			if style == "" {
				style = cfg.Render.Style
			}

			board, boardClues, numbered := puzzle.Derive(lf.Placements, lf.Rows, lf.Cols)

			opts := pipeline.Options{
				Rows:        lf.Rows,
				Cols:        lf.Cols,
				Formats:     parseFormats(formats),
				Style:       style,
				ShowLetters: letters,
				ShowClues:   clues,
				Logger:      c.Logger,
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := startProgress(c.Logger, "render")
			artifacts, err := runner.Render(ctx, board, boardClues, numbered, opts)
			if err != nil {
				return err
			}
			prog.done("formats", len(artifacts))

			base := output
			if base == "" {
				base = outputBase(args[0])
			}
			paths, err := writeArtifacts(base, artifacts)
			if err != nil {
				return err
			}

			if graph != "" {
				if err := writeCrossingGraph(ctx, numbered, graph); err != nil {
					return err
				}
				paths = append(paths, graph)
			}

			printSuccess("rendered %d format(s)", len(paths))
			for _, path := range paths {
				printFile(path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formats, "format", "f", "svg", "output formats (svg, json, text, dot)")
	cmd.Flags().StringVar(&style, "style", "", "render style (simple, print)")
	cmd.Flags().BoolVar(&letters, "letters", false, "show solution letters in output")
	cmd.Flags().BoolVar(&clues, "clues", false, "include clues in output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default from input name)")
	cmd.Flags().StringVar(&graph, "graph", "", "also write the crossing graph to this .svg or .png file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")

	return cmd
}

// writeCrossingGraph rasterizes the word crossing graph through graphviz,
// picking the output format from the file extension.
func writeCrossingGraph(ctx context.Context, placements []puzzle.Placement, path string) error {
	dot := render.ToDOT(placements)

	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".png") {
		data, err = render.GraphPNG(ctx, dot)
	} else {
		data, err = render.GraphSVG(ctx, dot)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "writing %s", path)
	}
	return nil
}
