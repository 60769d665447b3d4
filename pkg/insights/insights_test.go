package insights

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/after42/pkg/candidate"
	"github.com/artem13815/after42/pkg/job"
)

func date(s string) job.Date {
	var d job.Date
	if err := d.UnmarshalText([]byte(s)); err != nil {
		panic(err)
	}
	return d
}

func TestSummarizeJobs(t *testing.T) {
	now := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	jobs := []job.Job{
		{ID: "1", Status: job.StatusActive, CandidatesCount: 12, DatePosted: date("2025-01-25")},
		{ID: "2", Status: job.StatusActive, CandidatesCount: 8, DatePosted: date("2025-01-23")},
		{ID: "3", Status: job.StatusDraft, CandidatesCount: 3, DatePosted: date("2025-01-20")},
		{ID: "4", Status: job.StatusActive, CandidatesCount: 15, DatePosted: date("2024-12-18")},
	}

	assert.Equal(t, JobStats{ActiveJobs: 3, TotalCandidates: 38, PostedLast30Days: 3}, SummarizeJobs(jobs, now))
	assert.Equal(t, JobStats{}, SummarizeJobs(nil, now))
}

func TestGreeting(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2025, 1, 1, h, 0, 0, 0, time.UTC) }
	assert.Equal(t, "Good morning", Greeting(at(0)))
	assert.Equal(t, "Good morning", Greeting(at(11)))
	assert.Equal(t, "Good afternoon", Greeting(at(12)))
	assert.Equal(t, "Good afternoon", Greeting(at(17)))
	assert.Equal(t, "Good evening", Greeting(at(18)))
}

func TestFirstName(t *testing.T) {
	assert.Equal(t, "Jane", FirstName("Jane Smith"))
	assert.Equal(t, "demo", FirstName("demo"))
	assert.Equal(t, "there", FirstName(""))
}

func TestBreakdownPercentages(t *testing.T) {
	rows := Breakdown([]DepartmentHires{
		{Department: "Engineering", Applications: 68, Hired: 4},
		{Department: "Design", Applications: 32, Hired: 2},
		{Department: "Product", Applications: 28, Hired: 1},
		{Department: "Marketing", Applications: 18, Hired: 1},
		{Department: "Sales", Applications: 10},
	})

	var got []float64
	for _, r := range rows {
		got = append(got, r.Percentage)
	}
	assert.Equal(t, []float64{43.6, 20.5, 17.9, 11.5, 6.4}, got)
	assert.Equal(t, "Engineering", rows[0].Department)
}

func TestPercentZeroWhole(t *testing.T) {
	assert.Equal(t, 0.0, Percent(3, 0))
}

func TestSourceRates(t *testing.T) {
	rates := SourceRates([]Source{
		{Name: "42 Network", Applications: 68, Hired: 4},
		{Name: "Direct Referrals", Applications: 45, Hired: 2},
		{Name: "Company Website", Applications: 32, Hired: 3},
		{Name: "42 Alumni Network", Applications: 15, Hired: 2},
		{Name: "Tech Communities", Applications: 28, Hired: 1},
	})

	tests := []struct {
		rate   float64
		rating Rating
	}{
		{5.9, RatingMedium},
		{4.4, RatingLow},
		{9.4, RatingHigh},
		{13.3, RatingHigh},
		{3.6, RatingLow},
	}
	require.Len(t, rates, len(tests))
	for i, tt := range tests {
		assert.Equal(t, tt.rate, rates[i].Rate, rates[i].Name)
		assert.Equal(t, tt.rating, rates[i].Rating, rates[i].Name)
	}
}

func TestRateStage(t *testing.T) {
	assert.Equal(t, OnTarget, RateStage(2.5, 3))
	assert.Equal(t, OnTarget, RateStage(3, 3))
	assert.Equal(t, NearTarget, RateStage(5.2, 5))
	assert.Equal(t, NearTarget, RateStage(3.6, 3))
	assert.Equal(t, NearTarget, RateStage(4.8, 4))
	assert.Equal(t, OffTarget, RateStage(5, 4))
	assert.Equal(t, OffTarget, RateStage(3.7, 3))
}

func TestStagesAndTotals(t *testing.T) {
	stages := []Stage{
		{Stage: "Challenge Posted to Review", Days: 2.5, Target: 3},
		{Stage: "Review to Interview", Days: 5.2, Target: 5},
		{Stage: "Interview to Decision", Days: 4.8, Target: 4},
		{Stage: "Decision to Offer", Days: 1.8, Target: 2},
		{Stage: "Offer to Acceptance", Days: 3.2, Target: 3},
	}

	got := Stages(stages)
	assert.Equal(t, 41.7, got[0].Progress)
	assert.Equal(t, 60.0, got[2].Progress)

	assert.Equal(t, TimeToHire{TotalDays: 17.5, TotalTarget: 17, MeanDays: 3.5}, SummarizeStages(stages))
	assert.Equal(t, TimeToHire{}, SummarizeStages(nil))

	capped := Stages([]Stage{{Days: 10, Target: 2}})
	assert.Equal(t, 100.0, capped[0].Progress)
}

func TestConversion(t *testing.T) {
	got := Conversion([]Performer{{Name: "Sarah Chen", Applications: 12, Interviews: 8, Hired: 3}})
	require.Len(t, got, 1)
	assert.Equal(t, 66.7, got[0].InterviewRate)
	assert.Equal(t, 25.0, got[0].HireRate)
}

func TestScoreMeans(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	got := ScoreMeans([]candidate.Candidate{
		{ChallengeScore: f(94), PeerEvaluation: f(4.8)},
		{ChallengeScore: f(88), PeerEvaluation: f(4.6)},
		{ChallengeScore: f(91)},
	})
	require.NotNil(t, got.ChallengeScore)
	assert.Equal(t, 91.0, *got.ChallengeScore)
	require.NotNil(t, got.PeerEvaluation)
	assert.Equal(t, 4.7, *got.PeerEvaluation)

	empty := ScoreMeans(nil)
	assert.Nil(t, empty.ChallengeScore)
	assert.Nil(t, empty.PeerEvaluation)
}

func TestServiceDashboardReflectsAddedJobs(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	jobs := job.NewService(job.NewMemoryRepository(nil), job.WithClock(func() time.Time { return now }))

	svc := NewService(Dataset{
		Dashboard: DashboardData{DepartmentApplications: []DepartmentShare{{Name: "Engineering", Applications: 3}, {Name: "Design", Applications: 1}}},
	}, jobs, func() time.Time { return now })

	before, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, before.Stats.ActiveJobs)
	assert.Equal(t, 75.0, before.Departments[0].Percentage)

	_, err = jobs.Add(ctx, job.Draft{Title: "QA Engineer", Department: "Engineering", Location: "Remote", Type: "Contract", Status: job.StatusActive})
	require.NoError(t, err)

	after, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, JobStats{ActiveJobs: 1, TotalCandidates: 0, PostedLast30Days: 1}, after.Stats)
}
