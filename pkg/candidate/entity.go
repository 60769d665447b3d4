package candidate

import "context"

// Candidate is an applicant attached to a job through JobID.
// JobID is not checked against the job collection.
type Candidate struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Role           string   `json:"role" yaml:"role"`
	JobID          string   `json:"jobId" yaml:"jobId"`
	Email          string   `json:"email" yaml:"email"`
	Status         Status   `json:"status" yaml:"status"`
	Avatar         string   `json:"avatar" yaml:"avatar"`
	Experience     string   `json:"experience" yaml:"experience"`
	Location       string   `json:"location" yaml:"location"`
	Phone          string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Resume         string   `json:"resume,omitempty" yaml:"resume,omitempty"`
	Skills         []string `json:"skills,omitempty" yaml:"skills,omitempty"`
	Education      string   `json:"education,omitempty" yaml:"education,omitempty"`
	Summary        string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	LinkedIn       string   `json:"linkedIn,omitempty" yaml:"linkedIn,omitempty"`
	Portfolio      string   `json:"portfolio,omitempty" yaml:"portfolio,omitempty"`
	Campus42       string   `json:"campus42,omitempty" yaml:"campus42,omitempty"`
	ChallengeScore *float64 `json:"challengeScore,omitempty" yaml:"challengeScore,omitempty"`
	PeerEvaluation *float64 `json:"peerEvaluation,omitempty" yaml:"peerEvaluation,omitempty"`
}

type Status string

const (
	StatusNew       Status = "New"
	StatusReviewed  Status = "Reviewed"
	StatusInterview Status = "Interview"
	StatusRejected  Status = "Rejected"
	StatusHired     Status = "Hired"
)

var Statuses = []Status{StatusNew, StatusReviewed, StatusInterview, StatusRejected, StatusHired}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusReviewed, StatusInterview, StatusRejected, StatusHired:
		return true
	}
	return false
}

// Repository is the read-only port over the candidate collection.
type Repository interface {
	GetByID(ctx context.Context, id string) (Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
}
