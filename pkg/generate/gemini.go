// Package generate produces themed word lists with Gemini.
//
// The generator asks the model for answer/clue pairs on a theme and
// returns them as puzzle words ready for the layout engine. Answers come
// back sanitized through the wordlist rules, so model output that
// includes spaces or punctuation still yields valid grid entries.
package generate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/puzzle"
	"github.com/mattkessler/crossweave/pkg/wordlist"
)

const (
	// DefaultModel balances quality and latency for word generation.
	DefaultModel = "gemini-2.5-flash"

	// DefaultCount is the number of words requested when unset.
	DefaultCount = 12

	maxCount = 50
)

const wordsPrompt = `Generate %d crossword entries for the theme "%s".

Respond with JSON in exactly this format:
{
  "words": [
    {"answer": "EXAMPLE", "clue": "A short crossword-style clue"},
    ...
  ]
}

Rules:
- Answers are single words or short phrases, 3 to 15 letters once spaces are removed.
- Clues are concise, crossword-style, and never contain the answer.
- No duplicate answers.
- Respond ONLY with the JSON, no commentary or markdown.`

// Client wraps the Google GenAI client for word list generation.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a generator using the GEMINI_API_KEY environment
// variable (or other ambient credentials the genai SDK supports).
// An empty model selects [DefaultModel].
func NewClient(ctx context.Context, model string) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "create genai client")
	}
	return &Client{client: client, model: model}, nil
}

// Model returns the model name used for generation.
func (c *Client) Model() string { return c.model }

type wordsResponse struct {
	Words []struct {
		Answer string `json:"answer"`
		Clue   string `json:"clue"`
	} `json:"words"`
}

// Words asks the model for count themed answer/clue pairs. Entries whose
// answers sanitize to fewer than two letters are dropped rather than
// failing the whole batch.
func (c *Client) Words(ctx context.Context, theme string, count int) ([]puzzle.Word, error) {
	if theme == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "theme cannot be empty")
	}
	if count <= 0 {
		count = DefaultCount
	}
	if count > maxCount {
		return nil, errors.New(errors.ErrCodeInvalidInput, "count too large (max %d)", maxCount)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(prompt(theme, count)),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.7)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "gemini generate")
	}

	text := resp.Text()
	if text == "" {
		return nil, errors.New(errors.ErrCodeInternal, "empty gemini response")
	}

	var parsed wordsResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse word list JSON")
	}
	if len(parsed.Words) == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "gemini returned no words")
	}

	words := make([]puzzle.Word, 0, len(parsed.Words))
	seen := make(map[string]bool)
	for _, entry := range parsed.Words {
		letters := wordlist.Sanitize(entry.Answer)
		if len(letters) < 2 || seen[letters] {
			continue
		}
		if err := errors.ValidateLetters(letters); err != nil {
			continue
		}
		seen[letters] = true
		words = append(words, puzzle.Word{
			ID:      uuid.NewString(),
			Letters: letters,
			Clue:    entry.Clue,
		})
	}
	if len(words) == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "no usable words in gemini response")
	}
	return words, nil
}

func prompt(theme string, count int) string {
	return fmt.Sprintf(wordsPrompt, count, theme)
}
