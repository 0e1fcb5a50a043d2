package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mattkessler/crossweave/pkg/cache"
	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/puzzle"
	"github.com/mattkessler/crossweave/pkg/render"
	"github.com/mattkessler/crossweave/pkg/wordlist"
)

// WordSource produces themed word lists. *generate.Client satisfies it;
// tests substitute a stub.
type WordSource interface {
	Words(ctx context.Context, theme string, count int) ([]puzzle.Word, error)
	Model() string
}

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache, generator, and logger -
// it doesn't store pipeline results. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Cache     cache.Cache
	Keyer     cache.Keyer
	Generator WordSource
	Logger    *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The generator may be nil; theme-based runs then fail with a config error.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete words → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Words
	wordsStart := time.Now()
	words, wordsHit, err := r.WordsWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "words")
	}
	result.Words = words
	result.Stats.WordsTime = time.Since(wordsStart)
	result.Stats.WordCount = len(words)
	result.CacheInfo.WordsHit = wordsHit

	r.Logger.Info("collected words",
		"count", len(words),
		"duration", result.Stats.WordsTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	placements, layoutHit, err := r.LayoutWithCacheInfo(ctx, words, opts)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "layout")
	}
	board, clues, numbered := puzzle.Derive(placements, opts.Rows, opts.Cols)
	result.Placements = numbered
	result.Board = board
	result.Clues = clues
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.PlacedCount = len(numbered)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"placed", len(numbered),
		"of", len(words),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, board, clues, numbered, opts)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "render")
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// WordsWithCacheInfo resolves the word list with caching and reports the
// cache hit. Literal and text sources are never cached; only generated
// lists are expensive enough to bother.
func (r *Runner) WordsWithCacheInfo(ctx context.Context, opts Options) ([]puzzle.Word, bool, error) {
	if err := opts.ValidateForWords(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if len(opts.Words) > 0 {
		return opts.Words, false, nil
	}
	if opts.WordsText != "" {
		words, err := wordlist.ParseString(opts.WordsText)
		return words, false, err
	}

	if r.Generator == nil {
		return nil, false, errors.New(errors.ErrCodeInvalidConfig, "no word generator configured for theme %q", opts.Theme)
	}

	cacheKey := r.Keyer.WordsKey(r.Generator.Model(), opts.Theme, opts.WordCount)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var words []puzzle.Word
			if err := json.Unmarshal(data, &words); err == nil {
				return words, true, nil
			}
		}
	}

	words, err := r.Generator.Words(ctx, opts.Theme, opts.WordCount)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(words); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, TTLWords)
	}
	return words, false, nil
}

// Words is a convenience wrapper that discards the cache hit info.
func (r *Runner) Words(ctx context.Context, opts Options) ([]puzzle.Word, error) {
	words, _, err := r.WordsWithCacheInfo(ctx, opts)
	return words, err
}

// LayoutWithCacheInfo computes a layout with caching and reports the
// cache hit.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, words []puzzle.Word, opts Options) ([]puzzle.Placement, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	letters := make([]string, len(words))
	for i, w := range words {
		letters[i] = w.Letters
	}
	cacheKey := r.Keyer.LayoutKey(letters, opts.Rows, opts.Cols)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if placements, err := unmarshalPlacements(data, words); err == nil {
				return placements, true, nil
			}
			// Undecodable entry, fall through to recompute
		}
	}

	placements := puzzle.Layout(words, opts.Rows, opts.Cols)

	if data, err := json.Marshal(placements); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, TTLLayout)
	}
	return placements, false, nil
}

// Layout is a convenience wrapper that discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, words []puzzle.Word, opts Options) ([]puzzle.Placement, error) {
	placements, _, err := r.LayoutWithCacheInfo(ctx, words, opts)
	return placements, err
}

// unmarshalPlacements decodes cached placements and re-links them to the
// current word list, so word identities survive a cache round trip even
// though the cache key only covers letters.
func unmarshalPlacements(data []byte, words []puzzle.Word) ([]puzzle.Placement, error) {
	var placements []puzzle.Placement
	if err := json.Unmarshal(data, &placements); err != nil {
		return nil, err
	}
	return wordlist.Rematch(placements, words), nil
}

// RenderWithCacheInfo renders artifacts with caching and reports whether
// every requested format came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, board puzzle.Board, clues []puzzle.Clue, placements []puzzle.Placement, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := json.Marshal(placements)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout for cache key")
	}
	layoutHash := cache.Hash(layoutData)

	allCached := true
	artifacts := make(map[string][]byte)
	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.RenderKey(layoutHash, opts.RenderKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := r.renderAll(board, clues, placements, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.RenderKey(layoutHash, opts.RenderKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, TTLArtifact)
	}
	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, board puzzle.Board, clues []puzzle.Clue, placements []puzzle.Placement, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, board, clues, placements, opts)
	return artifacts, err
}

func (r *Runner) renderAll(board puzzle.Board, clues []puzzle.Clue, placements []puzzle.Placement, opts Options) (map[string][]byte, error) {
	style, _ := render.StyleByName(opts.Style)

	out := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			svgOpts := []render.Option{render.WithStyle(style), render.WithNumbers(), render.WithCollisions()}
			if opts.ShowLetters {
				svgOpts = append(svgOpts, render.WithLetters())
			}
			if opts.ShowClues {
				svgOpts = append(svgOpts, render.WithClues(clues))
			}
			out[format] = render.SVG(board, svgOpts...)
		case FormatJSON:
			jsonOpts := []render.JSONOption{
				render.WithJSONClues(clues),
				render.WithJSONPlacements(placements),
				render.WithJSONStyle(opts.Style),
			}
			if opts.ShowLetters {
				jsonOpts = append(jsonOpts, render.WithJSONLetters())
			}
			data, err := render.JSON(board, jsonOpts...)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
			}
			out[format] = data
		case FormatText:
			textOpts := []render.TextOption{}
			if opts.ShowLetters {
				textOpts = append(textOpts, render.WithTextLetters())
			}
			if opts.ShowClues {
				textOpts = append(textOpts, render.WithTextClues(clues))
			}
			out[format] = []byte(render.Text(board, textOpts...))
		case FormatDOT:
			out[format] = []byte(render.ToDOT(placements))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
		}
	}
	return out, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
