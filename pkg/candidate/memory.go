package candidate

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepository serves the seeded candidates in seed order.
type MemoryRepository struct {
	mu         sync.RWMutex
	candidates []Candidate
	byID       map[string]int
}

func NewMemoryRepository(seed []Candidate) *MemoryRepository {
	r := &MemoryRepository{byID: make(map[string]int, len(seed))}
	for _, c := range seed {
		if _, dup := r.byID[c.ID]; dup {
			continue
		}
		r.byID[c.ID] = len(r.candidates)
		r.candidates = append(r.candidates, c)
	}
	return r
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return Candidate{}, ErrNotFound
	}
	return clone(r.candidates[i]), nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Candidate, len(r.candidates))
	for i, c := range r.candidates {
		out[i] = clone(c)
	}
	return out, nil
}

func clone(c Candidate) Candidate {
	c.Skills = slices.Clone(c.Skills)
	if c.ChallengeScore != nil {
		v := *c.ChallengeScore
		c.ChallengeScore = &v
	}
	if c.PeerEvaluation != nil {
		v := *c.PeerEvaluation
		c.PeerEvaluation = &v
	}
	return c
}
