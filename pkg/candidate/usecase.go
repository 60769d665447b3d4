package candidate

import (
	"context"
	"errors"
	"fmt"

	"github.com/artem13815/after42/pkg/filter"
)

var (
	ErrNotFound      = errors.New("candidate not found")
	ErrInvalidStatus = errors.New("invalid candidate status")
	// ErrStatusChangeUndecided marks the profile status buttons: the effect of
	// a transition (job counters, other pipelines) has no product decision yet,
	// so nothing is mutated.
	ErrStatusChangeUndecided = errors.New("candidate status transitions are not defined yet")
)

type UseCase interface {
	List(ctx context.Context) ([]Candidate, error)
	Find(ctx context.Context, id string) (Candidate, bool, error)
	ForJob(ctx context.Context, jobID string) ([]Candidate, error)
	ChangeStatus(ctx context.Context, id string, status Status) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) List(ctx context.Context) ([]Candidate, error) {
	return s.repo.List(ctx)
}

func (s *service) Find(ctx context.Context, id string) (Candidate, bool, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Candidate{}, false, nil
	}
	if err != nil {
		return Candidate{}, false, err
	}
	return c, true, nil
}

// ForJob resolves the jobId relation at read time, keeping list order.
func (s *service) ForJob(ctx context.Context, jobID string) ([]Candidate, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Candidate, 0, len(all))
	for _, c := range all {
		if c.JobID == jobID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *service) ChangeStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrStatusChangeUndecided
}

// Filter matches the search term against name and email and the status
// exactly (or "all").
func Filter(candidates []Candidate, q filter.Query) []Candidate {
	return filter.Apply(candidates, q,
		func(c Candidate) []string { return []string{c.Name, c.Email} },
		func(c Candidate) string { return string(c.Status) },
	)
}
