package screen

import (
	"fmt"

	"github.com/artem13815/after42/pkg/candidate"
	"github.com/artem13815/after42/pkg/filter"
	"github.com/artem13815/after42/pkg/job"
)

// Option is a value/label pair for a select control.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var onboardingSteps = []Step{
	{
		Title:       "Welcome to After-42",
		Description: "The exclusive hiring marketplace for 42 Network students where AI-powered technical challenges replace traditional résumés.",
		Icon:        "🚀",
	},
	{
		Title:       "AI-Generated Challenges",
		Description: "Our AI creates custom technical challenges based on your job requirements, evaluating candidates through real-world problem-solving.",
		Icon:        "⚡",
	},
	{
		Title:       "Skills Over Résumés",
		Description: "Watch 42 students prove their abilities through hands-on challenges. See their scores, peer evaluations, and campus affiliations.",
		Icon:        "🎯",
	},
}

var departments = []Option{
	{"Engineering", "Engineering"},
	{"Design", "Design"},
	{"Product", "Product"},
	{"Marketing", "Marketing"},
	{"Sales", "Sales"},
	{"HR", "Human Resources"},
	{"Finance", "Finance"},
	{"Operations", "Operations"},
}

var employmentTypes = []string{"Full-time", "Part-time", "Contract", "Internship", "Freelance"}

var periods = []Option{
	{"week", "This Week"},
	{"month", "This Month"},
	{"quarter", "This Quarter"},
	{"year", "This Year"},
}

var metrics = []Option{
	{"overview", "Overview"},
	{"sources", "Source Performance"},
	{"time", "Time to Hire"},
	{"conversion", "Conversion Rates"},
}

var statusActions = []StatusAction{
	{Status: candidate.StatusNew, Label: "Mark as New"},
	{Status: candidate.StatusReviewed, Label: "Mark as Reviewed"},
	{Status: candidate.StatusInterview, Label: "Schedule Interview"},
	{Status: candidate.StatusHired, Label: "Mark as Hired"},
	{Status: candidate.StatusRejected, Label: "Mark as Rejected"},
}

const (
	company       = "Smart Hiring Inc."
	defaultPeriod = "month"
	defaultMetric = "overview"
)

func jobStatusFilters() []string {
	out := []string{filter.All}
	for _, s := range job.Statuses {
		out = append(out, string(s))
	}
	return out
}

func candidateStatusFilters() []string {
	out := []string{filter.All}
	for _, s := range candidate.Statuses {
		out = append(out, string(s))
	}
	return out
}

// pick returns value if it is one of opts, def when value is empty.
func pick(value, def string, opts []Option) (string, error) {
	if value == "" {
		return def, nil
	}
	for _, o := range opts {
		if o.Value == value {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOption, value)
}
