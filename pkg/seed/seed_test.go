package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/after42/pkg/candidate"
	"github.com/artem13815/after42/pkg/job"
)

func TestLoadEmbedded(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)

	require.Len(t, d.Jobs, 4)
	require.Len(t, d.Candidates, 7)
	require.Len(t, d.Team, 9)

	first := d.Jobs[0]
	assert.Equal(t, "Senior Frontend Developer", first.Title)
	assert.Equal(t, "2025-01-25", first.DatePosted.String())
	assert.Equal(t, job.DifficultyAdvanced, first.Difficulty)
	require.NotNil(t, first.AIGenerated)
	assert.True(t, *first.AIGenerated)
	assert.Nil(t, d.Jobs[2].TechStack)

	sarah := d.Candidates[0]
	assert.Equal(t, candidate.StatusInterview, sarah.Status)
	require.NotNil(t, sarah.ChallengeScore)
	assert.Equal(t, 94.0, *sarah.ChallengeScore)
	assert.Equal(t, "+1 (555) 123-4567", sarah.Phone)

	assert.Equal(t, 78, d.Team[2].Stats.Interviews)
	assert.Equal(t, 156, d.Insights.Reports.HiringStats.TotalApplications)
	assert.Len(t, d.Insights.Analytics.TimeToHire, 5)
	assert.Equal(t, "#00ADB5", d.Insights.Dashboard.DepartmentApplications[0].Color)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jobs:
  - {id: "9", title: T, department: D, location: L, type: Contract, status: Closed, candidatesCount: 0, datePosted: "2024-05-01"}
`), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	require.Len(t, d.Jobs, 1)
	assert.Equal(t, job.StatusClosed, d.Jobs[0].Status)
	assert.Empty(t, d.Candidates)
}

func TestParseRejectsBadData(t *testing.T) {
	tests := map[string]string{
		"duplicate job":   "jobs:\n  - {id: \"1\", status: Active, datePosted: \"2024-01-01\"}\n  - {id: \"1\", status: Active, datePosted: \"2024-01-01\"}\n",
		"bad status":      "jobs:\n  - {id: \"1\", status: Open, datePosted: \"2024-01-01\"}\n",
		"bad date":        "jobs:\n  - {id: \"1\", status: Active, datePosted: \"01/01/2024\"}\n",
		"unknown field":   "jobs:\n  - {id: \"1\", salary: 10}\n",
		"candidate state": "candidates:\n  - {id: \"1\", status: Ghosted}\n",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
