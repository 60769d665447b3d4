package job

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Job is a hiring requisition.
type Job struct {
	ID              string     `json:"id" yaml:"id"`
	Title           string     `json:"title" yaml:"title"`
	Department      string     `json:"department" yaml:"department"`
	Location        string     `json:"location" yaml:"location"`
	Type            string     `json:"type" yaml:"type"`
	Status          Status     `json:"status" yaml:"status"`
	CandidatesCount int        `json:"candidatesCount" yaml:"candidatesCount"`
	DatePosted      Date       `json:"datePosted" yaml:"datePosted"`
	Difficulty      Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	TechStack       []string   `json:"techStack,omitempty" yaml:"techStack,omitempty"`
	AIGenerated     *bool      `json:"aiGenerated,omitempty" yaml:"aiGenerated,omitempty"`
	Description     string     `json:"description,omitempty" yaml:"description,omitempty"`
}

type Status string

const (
	StatusActive Status = "Active"
	StatusDraft  Status = "Draft"
	StatusClosed Status = "Closed"
)

var Statuses = []Status{StatusActive, StatusDraft, StatusClosed}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusDraft, StatusClosed:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert}

// Valid accepts the empty difficulty, which means "not set".
func (d Difficulty) Valid() bool {
	switch d {
	case "", DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

const dateLayout = "2006-01-02"

// Date is a calendar date, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalJSON shadows the promoted time.Time encoder.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("date %s: %w", b, err)
	}
	return d.UnmarshalText([]byte(s))
}

func (d *Date) UnmarshalText(b []byte) error {
	t, err := time.Parse(dateLayout, string(b))
	if err != nil {
		return fmt.Errorf("date %q: %w", string(b), err)
	}
	d.Time = t
	return nil
}

// Draft is what the add-job form submits.
type Draft struct {
	Title       string
	Department  string
	Location    string
	Type        string
	Status      Status
	Difficulty  Difficulty
	TechStack   []string
	AIGenerated *bool
	Description string
}

// Repository is the port for job storage.
type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id string) (Job, error)
	List(ctx context.Context) ([]Job, error)
}
