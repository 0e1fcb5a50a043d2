// Package store provides persistence for crossword puzzles.
//
// This package defines a Store interface over puzzle documents, with
// implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI usage
//   - mongo: MongoDB-backed storage for server deployments
//
// A puzzle document carries the word list, any placements already made,
// and the grid dimensions. The board and clues are derived state and are
// never stored; callers rebuild them with puzzle.Derive after loading.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/puzzle"
)

// Puzzle is the stored form of a crossword.
type Puzzle struct {
	ID         string             `json:"id" bson:"_id"`
	Title      string             `json:"title" bson:"title"`
	Rows       int                `json:"rows" bson:"rows"`
	Cols       int                `json:"cols" bson:"cols"`
	Words      []puzzle.Word      `json:"words" bson:"words"`
	Placements []puzzle.Placement `json:"placements" bson:"placements"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// New creates a puzzle document with a fresh identity and timestamps.
func New(title string, rows, cols int, words []puzzle.Word) (*Puzzle, error) {
	if err := errors.ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := errors.ValidateGridSize(rows, cols); err != nil {
		return nil, err
	}
	now := now()
	return &Puzzle{
		ID:        uuid.NewString(),
		Title:     title,
		Rows:      rows,
		Cols:      cols,
		Words:     words,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Board derives the current board and clue list from the stored placements.
func (p *Puzzle) Board() (puzzle.Board, []puzzle.Clue) {
	board, clues, _ := puzzle.Derive(p.Placements, p.Rows, p.Cols)
	return board, clues
}

// Store is the interface for puzzle storage backends.
type Store interface {
	// Get retrieves a puzzle by ID. Returns a PUZZLE_NOT_FOUND error if
	// no puzzle with that ID exists.
	Get(ctx context.Context, id string) (*Puzzle, error)

	// Put stores a puzzle, overwriting any existing document with the
	// same ID. UpdatedAt is refreshed on every call.
	Put(ctx context.Context, p *Puzzle) error

	// List returns all stored puzzles ordered by creation time.
	List(ctx context.Context) ([]*Puzzle, error)

	// Delete removes a puzzle. Deleting a missing puzzle is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

func now() time.Time { return time.Now().UTC() }

func notFound(id string) error {
	return errors.New(errors.ErrCodePuzzleNotFound, "puzzle %q not found", id)
}
