// Package cache provides byte-level caching for expensive pipeline stages.
//
// The Cache interface is deliberately dumb: keys in, bytes out, optional
// TTL. Key construction lives in the Keyer, which hashes the inputs that
// determine a stage's output (word list, grid size, render style) so a
// repeated run with identical inputs becomes a cache hit.
//
// Implementations:
//   - file: directory-backed cache for CLI usage
//   - redis: shared cache for server deployments
//   - null: disabled caching
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys for pipeline stages.
type Keyer interface {
	// WordsKey keys a generated word list by theme and count.
	WordsKey(model, theme string, count int) string

	// LayoutKey keys a computed layout by its word list and grid size.
	LayoutKey(words []string, rows, cols int) string

	// RenderKey keys a rendered artifact by the layout it came from.
	RenderKey(layoutHash string, opts RenderKeyOpts) string
}

// RenderKeyOpts are the render parameters that affect artifact bytes.
type RenderKeyOpts struct {
	Format      string `json:"format"`
	Style       string `json:"style"`
	ShowLetters bool   `json:"show_letters"`
	ShowClues   bool   `json:"show_clues"`
}

// DefaultKeyer hashes stage inputs into namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

func (k *DefaultKeyer) WordsKey(model, theme string, count int) string {
	return hashKey("words", model, theme, count)
}

func (k *DefaultKeyer) LayoutKey(words []string, rows, cols int) string {
	return hashKey("layout", words, rows, cols)
}

func (k *DefaultKeyer) RenderKey(layoutHash string, opts RenderKeyOpts) string {
	return hashKey("render", layoutHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so multiple puzzles or users
// sharing one backend get separate namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix prepended to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) WordsKey(model, theme string, count int) string {
	return k.prefix + k.inner.WordsKey(model, theme, count)
}

func (k *ScopedKeyer) LayoutKey(words []string, rows, cols int) string {
	return k.prefix + k.inner.LayoutKey(words, rows, cols)
}

func (k *ScopedKeyer) RenderKey(layoutHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(layoutHash, opts)
}
