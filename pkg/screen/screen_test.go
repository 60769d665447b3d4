package screen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/after42/pkg/auth"
	"github.com/artem13815/after42/pkg/candidate"
	"github.com/artem13815/after42/pkg/insights"
	"github.com/artem13815/after42/pkg/job"
	"github.com/artem13815/after42/pkg/kv"
	"github.com/artem13815/after42/pkg/navigation"
	"github.com/artem13815/after42/pkg/seed"
	"github.com/artem13815/after42/pkg/session"
	"github.com/artem13815/after42/pkg/team"
	"github.com/artem13815/after42/pkg/workspace"
)

var morning = time.Date(2025, time.February, 3, 9, 30, 0, 0, time.UTC)

type fixture struct {
	renderer *Renderer
	registry *workspace.Registry
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	data, err := seed.Load("")
	require.NoError(t, err)

	clock := func() time.Time { return morning }
	catalog := workspace.Catalog{
		Jobs:       job.NewService(job.NewMemoryRepository(data.Jobs), job.WithClock(clock)),
		Candidates: candidate.NewService(candidate.NewMemoryRepository(data.Candidates)),
	}
	authn := auth.NewSimulated(auth.Options{})
	return fixture{
		renderer: NewRenderer(catalog, team.NewMemoryRepository(data.Team), insights.NewService(data.Insights, catalog.Jobs, clock), authn, clock),
		registry: workspace.NewRegistry(kv.NewMemory(), authn, catalog),
	}
}

func (f fixture) workspace(t *testing.T, onboard bool) *workspace.Workspace {
	t.Helper()
	ctx := context.Background()
	w, err := f.registry.Get(ctx, t.Name())
	require.NoError(t, err)
	_, err = w.Login(ctx, "jane.doe@x.com", "pw")
	require.NoError(t, err)
	if onboard {
		_, err = w.CompleteOnboarding(ctx)
		require.NoError(t, err)
	}
	return w
}

func (f fixture) render(t *testing.T, w *workspace.Workspace, p Params) View {
	t.Helper()
	v, err := f.renderer.Render(context.Background(), w, p)
	require.NoError(t, err)
	return v
}

func TestRenderLoginWhenLoggedOut(t *testing.T) {
	f := newFixture(t)
	w, err := f.registry.Get(context.Background(), "fresh")
	require.NoError(t, err)

	v := f.render(t, w, Params{})
	assert.Equal(t, navigation.ScreenLogin, v.Screen)
	data, ok := v.Data.(LoginData)
	require.True(t, ok)
	require.Len(t, data.Providers, 3)
	assert.Equal(t, "John Doe", data.Providers[0].Name)
}

func TestRenderOnboarding(t *testing.T) {
	f := newFixture(t)
	v := f.render(t, f.workspace(t, false), Params{})
	assert.Equal(t, navigation.ScreenOnboarding, v.Screen)
	data := v.Data.(OnboardingData)
	require.Len(t, data.Steps, 3)
	assert.Equal(t, "Welcome to After-42", data.Steps[0].Title)
}

func TestRenderDashboard(t *testing.T) {
	f := newFixture(t)
	w := f.workspace(t, true)

	v := f.render(t, w, Params{})
	data := v.Data.(DashboardData)
	assert.Equal(t, "Good morning", data.Greeting)
	assert.Equal(t, "jane.doe", data.FirstName)
	assert.Len(t, data.Jobs, 4)
	assert.Equal(t, insights.JobStats{ActiveJobs: 3, TotalCandidates: 38, PostedLast30Days: 4}, data.Stats)
	assert.Equal(t, []string{"all", "Active", "Draft", "Closed"}, data.StatusFilters)
	assert.Equal(t, 43.6, data.Departments[0].Percentage)

	v = f.render(t, w, Params{Search: "backend", Status: "Active"})
	data = v.Data.(DashboardData)
	require.Len(t, data.Jobs, 1)
	assert.Equal(t, "Backend Engineer", data.Jobs[0].Title)
	assert.Equal(t, "Active", data.Status)
}

func TestRenderCandidateList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	w := f.workspace(t, true)
	_, err := w.Navigate(ctx, navigation.Target{Screen: navigation.ScreenCandidates, JobID: "1"})
	require.NoError(t, err)

	v := f.render(t, w, Params{})
	assert.Equal(t, navigation.ScreenCandidates, v.Screen)
	data := v.Data.(CandidateListData)
	assert.Equal(t, "Senior Frontend Developer", data.Job.Title)
	assert.Equal(t, 3, data.ApplicantCount)
	assert.Equal(t, 12, data.Job.CandidatesCount)
	assert.Len(t, data.Candidates, 3)
	require.NotNil(t, data.Scores.ChallengeScore)
	assert.Equal(t, 91.0, *data.Scores.ChallengeScore)

	v = f.render(t, w, Params{Status: "Interview"})
	data = v.Data.(CandidateListData)
	require.Len(t, data.Candidates, 1)
	assert.Equal(t, "Sarah Chen", data.Candidates[0].Name)
	assert.Equal(t, 3, data.ApplicantCount)
}

func TestRenderCandidatesWithoutJobFallsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	w := f.workspace(t, true)
	_, err := w.Navigate(ctx, navigation.Target{Screen: navigation.ScreenCandidates, JobID: "404"})
	require.NoError(t, err)

	v := f.render(t, w, Params{})
	assert.Equal(t, navigation.ScreenDashboard, v.Screen)
	assert.IsType(t, DashboardData{}, v.Data)
}

func TestRenderCandidateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	w := f.workspace(t, true)
	_, err := w.Navigate(ctx, navigation.Target{Screen: navigation.ScreenCandidateProfile, CandidateID: "6"})
	require.NoError(t, err)

	data := f.render(t, w, Params{}).Data.(CandidateProfileData)
	assert.Equal(t, "Alex Thompson", data.Candidate.Name)
	require.NotNil(t, data.Job)
	assert.Equal(t, "Backend Engineer", data.Job.Title)
	require.Len(t, data.Actions, 5)
	for _, a := range data.Actions {
		assert.False(t, a.Enabled)
	}
}

func TestRenderAddJobAndSettings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	w := f.workspace(t, true)

	_, err := w.Navigate(ctx, navigation.Target{Screen: navigation.ScreenAddJob})
	require.NoError(t, err)
	add := f.render(t, w, Params{}).Data.(AddJobData)
	assert.Equal(t, job.StatusDraft, add.DefaultStatus)
	assert.Len(t, add.Departments, 8)
	assert.Equal(t, "Human Resources", add.Departments[5].Label)

	_, err = w.Navigate(ctx, navigation.Target{Screen: navigation.ScreenSettings})
	require.NoError(t, err)
	s := f.render(t, w, Params{}).Data.(SettingsData)
	assert.Equal(t, "Smart Hiring Inc.", s.Profile.Company)
	assert.Equal(t, "HR Manager", s.Profile.Role)
	assert.Equal(t, "Email", s.ProviderLabel)
	assert.True(t, s.EmailEditable)
	assert.False(t, s.Notifications.WeeklyReports)
	for _, a := range s.Accounts {
		assert.False(t, a.Connected)
	}
}

func TestSettingsForSocialUser(t *testing.T) {
	s := settings(sessionStateFor(auth.User{Name: "Jane Smith", AuthProvider: auth.ProviderGitHub}))
	assert.Equal(t, "GitHub", s.ProviderLabel)
	assert.False(t, s.EmailEditable)
	assert.True(t, s.Accounts[1].Connected)
}

func TestRenderReportsAndAnalytics(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	w := f.workspace(t, true)

	_, err := w.Navigate(ctx, navigation.Target{Screen: navigation.ScreenReports})
	require.NoError(t, err)
	rep := f.render(t, w, Params{}).Data.(ReportsData)
	assert.Equal(t, "month", rep.Period)
	assert.Len(t, rep.Periods, 4)
	assert.Equal(t, 6.4, rep.Breakdown[4].Percentage)

	_, err = f.renderer.Render(ctx, w, Params{Period: "decade"})
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = w.Navigate(ctx, navigation.Target{Screen: navigation.ScreenAnalytics})
	require.NoError(t, err)
	an := f.render(t, w, Params{Metric: "sources"}).Data.(AnalyticsData)
	assert.Equal(t, "sources", an.Metric)
	assert.Equal(t, 9.4, an.Sources[2].Rate)
	assert.Equal(t, insights.NearTarget, an.TimeToHire[1].Performance)
}

func TestRenderTeam(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	w := f.workspace(t, true)
	_, err := w.Navigate(ctx, navigation.Target{Screen: navigation.ScreenTeam})
	require.NoError(t, err)

	data := f.render(t, w, Params{}).Data.(TeamData)
	assert.Equal(t, team.Totals{Members: 9, Active: 8, Departments: 4, Interviews: 245}, data.Totals)
	require.Len(t, data.Groups, 4)
	assert.Equal(t, "Human Resources", data.Groups[0].Department)

	data = f.render(t, w, Params{Department: "Design", Search: "lisa"}).Data.(TeamData)
	require.Len(t, data.Groups, 1)
	assert.Equal(t, 2, data.Groups[0].Stats.Total)
	require.Len(t, data.Groups[0].Members, 1)
}

func sessionStateFor(u auth.User) session.State {
	return session.State{IsLoggedIn: true, CurrentUser: &u, HasCompletedOnboarding: true}
}
