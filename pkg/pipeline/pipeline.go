// Package pipeline provides the core puzzle-building pipeline.
//
// This package implements the complete words → layout → render pipeline
// shared by the CLI and the HTTP server. Centralizing it keeps behavior
// and caching consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Words: obtain the word list (parse a file, or generate from a theme)
//  2. Layout: place the words on the grid
//  3. Render: produce output artifacts (SVG, JSON, text, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    WordsText: "REACT - frontend library\nSTATE - stored condition",
//	    Rows:      15,
//	    Cols:      15,
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mattkessler/crossweave/pkg/cache"
	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/puzzle"
	"github.com/mattkessler/crossweave/pkg/render"
)

// Defaults shared by CLI, API, and config.
const (
	// DefaultRows is the default grid height.
	DefaultRows = 15

	// DefaultCols is the default grid width.
	DefaultCols = 15

	// DefaultStyle is the default visual style.
	DefaultStyle = "simple"

	// DefaultWordCount is the number of words requested from generation.
	DefaultWordCount = 12
)

// Cache TTLs per stage. Generated word lists are the expensive stage;
// layouts and artifacts are cheap to recompute but caching them keeps
// repeated server requests snappy.
const (
	TTLWords    = 7 * 24 * time.Hour
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatText = "text"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatText: true,
	FormatDOT:  true,
}

// Options contains all configuration for the puzzle pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Words options. Exactly one source must be set: a literal word
	// list, raw word-list text, or a theme for generation.
	Words     []puzzle.Word `json:"words,omitempty"`
	WordsText string        `json:"words_text,omitempty"`
	Theme     string        `json:"theme,omitempty"`
	WordCount int           `json:"word_count,omitempty"`

	// Layout options
	Rows int `json:"rows,omitempty"`
	Cols int `json:"cols,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	ShowLetters bool     `json:"show_letters,omitempty"`
	ShowClues   bool     `json:"show_clues,omitempty"`

	// Refresh bypasses the cache for every stage.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Words is the word list the layout ran on.
	Words []puzzle.Word

	// Placements are the numbered placements the layout produced.
	Placements []puzzle.Placement

	// Board is the derived grid.
	Board puzzle.Board

	// Clues is the derived clue list.
	Clues []puzzle.Clue

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WordCount   int
	PlacedCount int
	WordsTime   time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	WordsHit  bool
	LayoutHit bool
	RenderHit bool
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json, text, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if _, ok := render.StyleByName(style); !ok {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: simple, print)", style)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForWords(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForWords checks the word source configuration.
func (o *Options) ValidateForWords() error {
	sources := 0
	if len(o.Words) > 0 {
		sources++
	}
	if o.WordsText != "" {
		sources++
	}
	if o.Theme != "" {
		sources++
	}
	if sources == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "words, words_text, or theme is required")
	}
	if sources > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "words, words_text, and theme are mutually exclusive")
	}
	if o.WordCount == 0 {
		o.WordCount = DefaultWordCount
	}
	o.setLoggerDefault()
	return nil
}

// ValidateForLayout validates and sets defaults for the layout stage.
func (o *Options) ValidateForLayout() error {
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	o.setLoggerDefault()
	return errors.ValidateGridSize(o.Rows, o.Cols)
}

// ValidateForRender validates and sets defaults for the render stage.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	o.setLoggerDefault()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// RenderKeyOpts returns cache key options for artifact rendering.
func (o *Options) RenderKeyOpts(format string) cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Format:      format,
		Style:       o.Style,
		ShowLetters: o.ShowLetters,
		ShowClues:   o.ShowClues,
	}
}
