package job

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepository keeps jobs in insertion order.
type MemoryRepository struct {
	mu   sync.RWMutex
	jobs []Job
	byID map[string]int
}

func NewMemoryRepository(seed []Job) *MemoryRepository {
	r := &MemoryRepository{byID: make(map[string]int, len(seed))}
	for _, j := range seed {
		if _, dup := r.byID[j.ID]; dup {
			continue
		}
		r.byID[j.ID] = len(r.jobs)
		r.jobs = append(r.jobs, j)
	}
	return r
}

func (r *MemoryRepository) Create(_ context.Context, j Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byID[j.ID]; dup {
		return ErrDuplicateID
	}
	r.byID[j.ID] = len(r.jobs)
	r.jobs = append(r.jobs, j)
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return clone(r.jobs[i]), nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Job, len(r.jobs))
	for i, j := range r.jobs {
		out[i] = clone(j)
	}
	return out, nil
}

func clone(j Job) Job {
	j.TechStack = slices.Clone(j.TechStack)
	if j.AIGenerated != nil {
		v := *j.AIGenerated
		j.AIGenerated = &v
	}
	return j
}
