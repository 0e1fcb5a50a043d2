package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory puzzle store for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	puzzles map[string]*Puzzle
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{puzzles: make(map[string]*Puzzle)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.puzzles[id]
	if !ok {
		return nil, notFound(id)
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) Put(ctx context.Context, p *Puzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *p
	cp.UpdatedAt = now()
	s.puzzles[cp.ID] = &cp
	p.UpdatedAt = cp.UpdatedAt
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Puzzle, 0, len(s.puzzles))
	for _, p := range s.puzzles {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.puzzles, id)
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
