package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/mattkessler/crossweave/pkg/cache"
	"github.com/mattkessler/crossweave/pkg/puzzle"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"json", false},
		{"text", false},
		{"dot", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"simple", false},
		{"print", false},
		{"invalid", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestOptionsValidateForWords(t *testing.T) {
	// No source
	opts := Options{}
	if err := opts.ValidateForWords(); err == nil {
		t.Error("Missing word source should fail")
	}

	// Two sources
	opts = Options{WordsText: "A - b", Theme: "space"}
	if err := opts.ValidateForWords(); err == nil {
		t.Error("Multiple word sources should fail")
	}

	// Valid with text
	opts = Options{WordsText: "REACT - library"}
	if err := opts.ValidateForWords(); err != nil {
		t.Errorf("Valid options should pass: %v", err)
	}
	if opts.WordCount != DefaultWordCount {
		t.Errorf("WordCount should be %d, got %d", DefaultWordCount, opts.WordCount)
	}
}

func TestOptionsValidateForLayout(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateForLayout(); err != nil {
		t.Errorf("Defaults should pass: %v", err)
	}
	if opts.Rows != DefaultRows || opts.Cols != DefaultCols {
		t.Errorf("dims = %dx%d, want %dx%d", opts.Rows, opts.Cols, DefaultRows, DefaultCols)
	}

	opts = Options{Rows: -1, Cols: 10}
	if err := opts.ValidateForLayout(); err == nil {
		t.Error("Negative rows should fail")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{WordsText: "REACT - library"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalRows := opts.Rows
	originalStyle := opts.Style

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if opts.Rows != originalRows {
		t.Error("Rows changed on second call")
	}
	if opts.Style != originalStyle {
		t.Error("Style changed on second call")
	}
}

// stubGenerator returns a fixed word list and counts invocations.
type stubGenerator struct {
	words []puzzle.Word
	calls int
}

func (s *stubGenerator) Words(ctx context.Context, theme string, count int) ([]puzzle.Word, error) {
	s.calls++
	return s.words, nil
}

func (s *stubGenerator) Model() string { return "stub" }

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(ctx, Options{
		WordsText:   "REACT - frontend library\nSTATE - stored condition",
		Rows:        12,
		Cols:        12,
		Formats:     []string{"svg", "json", "text", "dot"},
		ShowLetters: true,
		ShowClues:   true,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Stats.WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", result.Stats.WordCount)
	}
	if result.Stats.PlacedCount != 2 {
		t.Errorf("PlacedCount = %d, want 2", result.Stats.PlacedCount)
	}
	if len(result.Clues) != 2 {
		t.Errorf("len(Clues) = %d, want 2", len(result.Clues))
	}
	for _, format := range []string{"svg", "json", "text", "dot"} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("missing %s artifact", format)
		}
	}
	if !strings.Contains(string(result.Artifacts["dot"]), "REACT") {
		t.Error("dot artifact missing placement node")
	}
}

func TestRunnerExecute_InvalidOptions(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	if _, err := runner.Execute(context.Background(), Options{}); err == nil {
		t.Error("Execute with no word source should fail")
	}
}

func TestRunnerWords_GeneratorCaching(t *testing.T) {
	ctx := context.Background()
	fileCache, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	gen := &stubGenerator{words: []puzzle.Word{
		{ID: "g1", Letters: "ORBIT", Clue: "path around a planet"},
	}}
	runner := NewRunner(fileCache, nil, nil)
	runner.Generator = gen
	defer runner.Close()

	opts := Options{Theme: "space", WordCount: 5}

	words, hit, err := runner.WordsWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatalf("WordsWithCacheInfo() error = %v", err)
	}
	if hit {
		t.Error("first call should miss cache")
	}
	if len(words) != 1 || gen.calls != 1 {
		t.Fatalf("words = %d, calls = %d", len(words), gen.calls)
	}

	// Second call hits the cache, generator untouched
	words, hit, err = runner.WordsWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatalf("WordsWithCacheInfo() error = %v", err)
	}
	if !hit {
		t.Error("second call should hit cache")
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if words[0].Letters != "ORBIT" {
		t.Errorf("Letters = %q, want ORBIT", words[0].Letters)
	}

	// Refresh bypasses the cache
	opts.Refresh = true
	if _, hit, _ := runner.WordsWithCacheInfo(ctx, opts); hit {
		t.Error("refresh should bypass cache")
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
}

func TestRunnerWords_NoGeneratorConfigured(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	_, err := runner.Words(context.Background(), Options{Theme: "space"})
	if err == nil {
		t.Error("theme without generator should fail")
	}
}

func TestRunnerLayout_Caching(t *testing.T) {
	ctx := context.Background()
	fileCache, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	runner := NewRunner(fileCache, nil, nil)
	defer runner.Close()

	words := []puzzle.Word{
		{ID: "w1", Letters: "REACT", Clue: "library"},
		{ID: "w2", Letters: "STATE", Clue: "condition"},
	}
	opts := Options{Rows: 12, Cols: 12}

	first, hit, err := runner.LayoutWithCacheInfo(ctx, words, opts)
	if err != nil {
		t.Fatalf("LayoutWithCacheInfo() error = %v", err)
	}
	if hit {
		t.Error("first call should miss cache")
	}

	second, hit, err := runner.LayoutWithCacheInfo(ctx, words, opts)
	if err != nil {
		t.Fatalf("LayoutWithCacheInfo() error = %v", err)
	}
	if !hit {
		t.Error("second call should hit cache")
	}
	if len(second) != len(first) {
		t.Fatalf("cached layout size %d, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i].Row != second[i].Row || first[i].Col != second[i].Col ||
			first[i].Orientation != second[i].Orientation {
			t.Errorf("placement %d differs: %+v vs %+v", i, first[i], second[i])
		}
		if second[i].ID == "" {
			t.Errorf("placement %d lost its word identity", i)
		}
	}
}

func TestRunnerRender_CacheHit(t *testing.T) {
	ctx := context.Background()
	fileCache, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	runner := NewRunner(fileCache, nil, nil)
	defer runner.Close()

	ps := []puzzle.Placement{
		{Word: puzzle.Word{ID: "a", Letters: "GO", Clue: "language"}, Row: 1, Col: 1, Orientation: puzzle.Across},
	}
	board, clues, numbered := puzzle.Derive(ps, 5, 5)
	opts := Options{Rows: 5, Cols: 5, Formats: []string{"svg", "text"}}

	first, hit, err := runner.RenderWithCacheInfo(ctx, board, clues, numbered, opts)
	if err != nil {
		t.Fatalf("RenderWithCacheInfo() error = %v", err)
	}
	if hit {
		t.Error("first render should miss cache")
	}

	second, hit, err := runner.RenderWithCacheInfo(ctx, board, clues, numbered, opts)
	if err != nil {
		t.Fatalf("RenderWithCacheInfo() error = %v", err)
	}
	if !hit {
		t.Error("second render should hit cache")
	}
	for format := range first {
		if string(first[format]) != string(second[format]) {
			t.Errorf("%s artifact differs between runs", format)
		}
	}
}
