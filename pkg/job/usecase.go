package job

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/after42/pkg/filter"
	"github.com/artem13815/after42/pkg/nlp"
)

var (
	ErrNotFound    = errors.New("job not found")
	ErrDuplicateID = errors.New("job id already exists")
)

// ErrValidation is a plain validation failure shown to the caller as-is.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// UseCase covers the job collection: full reads, lookup and the add-job flow.
type UseCase interface {
	List(ctx context.Context) ([]Job, error)
	Find(ctx context.Context, id string) (Job, bool, error)
	Add(ctx context.Context, d Draft) (Job, error)
}

// IDGenerator returns a fresh job id.
type IDGenerator func() (string, error)

// TimeOrderedID uses UUIDv7, so ids sort by creation time.
func TimeOrderedID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

type service struct {
	repo  Repository
	newID IDGenerator
	now   func() time.Time
}

type Option func(*service)

func WithClock(now func() time.Time) Option { return func(s *service) { s.now = now } }

func WithIDGenerator(g IDGenerator) Option { return func(s *service) { s.newID = g } }

func NewService(repo Repository, opts ...Option) UseCase {
	s := &service{repo: repo, newID: TimeOrderedID, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *service) List(ctx context.Context) ([]Job, error) {
	return s.repo.List(ctx)
}

func (s *service) Find(ctx context.Context, id string) (Job, bool, error) {
	j, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Job{}, false, nil
	}
	if err != nil {
		return Job{}, false, err
	}
	return j, true, nil
}

// maxIDAttempts bounds retries when the generator collides with an existing id.
const maxIDAttempts = 5

func (s *service) Add(ctx context.Context, d Draft) (Job, error) {
	j, err := fromDraft(d)
	if err != nil {
		return Job{}, err
	}
	j.CandidatesCount = 0
	j.DatePosted = DateOf(s.now())

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		j.ID, err = s.newID()
		if err != nil {
			return Job{}, fmt.Errorf("generate job id: %w", err)
		}
		err = s.repo.Create(ctx, j)
		if !errors.Is(err, ErrDuplicateID) {
			break
		}
	}
	if err != nil {
		return Job{}, fmt.Errorf("create job: %w", err)
	}
	return j, nil
}

func fromDraft(d Draft) (Job, error) {
	j := Job{
		Title:       strings.TrimSpace(d.Title),
		Department:  strings.TrimSpace(d.Department),
		Location:    strings.TrimSpace(d.Location),
		Type:        strings.TrimSpace(d.Type),
		Status:      d.Status,
		Difficulty:  d.Difficulty,
		TechStack:   cleanStack(d.TechStack),
		AIGenerated: d.AIGenerated,
		Description: strings.TrimSpace(d.Description),
	}
	if j.Title == "" || j.Department == "" || j.Location == "" || j.Type == "" {
		return Job{}, ErrValidation("title, department, location and type are required")
	}
	if j.Status == "" {
		j.Status = StatusDraft
	}
	if !j.Status.Valid() {
		return Job{}, ErrValidation(fmt.Sprintf("unknown status %q", j.Status))
	}
	if !j.Difficulty.Valid() {
		return Job{}, ErrValidation(fmt.Sprintf("unknown difficulty %q", j.Difficulty))
	}
	return j, nil
}

// cleanStack trims entries and drops blanks and spelling variants of an
// earlier entry ("Golang" after "Go"), keeping order and the first spelling.
func cleanStack(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		key := nlp.Canonical(s)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(s))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Filter matches the search term against title and department and the
// status exactly (or "all").
func Filter(jobs []Job, q filter.Query) []Job {
	return filter.Apply(jobs, q,
		func(j Job) []string { return []string{j.Title, j.Department} },
		func(j Job) string { return string(j.Status) },
	)
}
