// Package screen builds the view model of whatever screen a workspace is on.
package screen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artem13815/after42/pkg/auth"
	"github.com/artem13815/after42/pkg/candidate"
	"github.com/artem13815/after42/pkg/filter"
	"github.com/artem13815/after42/pkg/insights"
	"github.com/artem13815/after42/pkg/job"
	"github.com/artem13815/after42/pkg/navigation"
	"github.com/artem13815/after42/pkg/session"
	"github.com/artem13815/after42/pkg/team"
	"github.com/artem13815/after42/pkg/workspace"
)

var ErrInvalidOption = errors.New("invalid option")

// Params are the per-screen controls: search box, status and department
// selects, report period and analytics metric.
type Params struct {
	Search     string
	Status     string
	Department string
	Period     string
	Metric     string
}

type View struct {
	Screen     navigation.Screen `json:"screen"`
	Navigation navigation.State  `json:"navigation"`
	Session    session.State     `json:"session"`
	Data       any               `json:"data"`
}

type Renderer struct {
	catalog  workspace.Catalog
	team     team.Repository
	insights insights.UseCase
	auth     auth.Authenticator
	now      func() time.Time
}

func NewRenderer(catalog workspace.Catalog, members team.Repository, ins insights.UseCase, authn auth.Authenticator, now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{catalog: catalog, team: members, insights: ins, auth: authn, now: now}
}

// Render shows the workspace's current screen after the render guards.
func (r *Renderer) Render(ctx context.Context, w *workspace.Workspace, p Params) (View, error) {
	snap, err := w.Current(ctx)
	if err != nil {
		return View{}, err
	}
	v := View{
		Screen:     snap.Navigation.CurrentScreen,
		Navigation: snap.Navigation,
		Session:    snap.Session,
	}

	switch v.Screen {
	case navigation.ScreenLogin:
		v.Data = LoginData{Providers: r.auth.Profiles()}
	case navigation.ScreenOnboarding:
		v.Data = OnboardingData{Steps: onboardingSteps}
	case navigation.ScreenDashboard:
		v.Data, err = r.dashboard(ctx, snap.Session, p)
	case navigation.ScreenCandidates:
		v.Data, err = r.candidateList(ctx, *snap.Navigation.SelectedJobID, p)
	case navigation.ScreenCandidateProfile:
		v.Data, err = r.candidateProfile(ctx, *snap.Navigation.SelectedCandidateID)
	case navigation.ScreenAddJob:
		v.Data = addJob()
	case navigation.ScreenSettings:
		v.Data = settings(snap.Session)
	case navigation.ScreenReports:
		v.Data, err = r.reports(ctx, p)
	case navigation.ScreenAnalytics:
		v.Data, err = r.analytics(ctx, p)
	case navigation.ScreenTeam:
		v.Data, err = r.teamView(ctx, p)
	default:
		err = fmt.Errorf("%w: %q", navigation.ErrInvalidScreen, v.Screen)
	}
	if err != nil {
		return View{}, err
	}
	return v, nil
}

type LoginData struct {
	Providers []auth.Profile `json:"providers"`
}

type OnboardingData struct {
	Steps []Step `json:"steps"`
}

type DashboardData struct {
	Greeting      string    `json:"greeting"`
	FirstName     string    `json:"firstName"`
	Search        string    `json:"search"`
	Status        string    `json:"status"`
	StatusFilters []string  `json:"statusFilters"`
	Jobs          []job.Job `json:"jobs"`
	insights.DashboardView
}

func (r *Renderer) dashboard(ctx context.Context, st session.State, p Params) (DashboardData, error) {
	jobs, err := r.catalog.Jobs.List(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	charts, err := r.insights.Dashboard(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	name := ""
	if st.CurrentUser != nil {
		name = st.CurrentUser.Name
	}
	return DashboardData{
		Greeting:      insights.Greeting(r.now()),
		FirstName:     insights.FirstName(name),
		Search:        p.Search,
		Status:        statusOrAll(p.Status),
		StatusFilters: jobStatusFilters(),
		Jobs:          job.Filter(jobs, filter.Query{Search: p.Search, Status: p.Status}),
		DashboardView: charts,
	}, nil
}

type CandidateListData struct {
	Job job.Job `json:"job"`
	// ApplicantCount is computed from the candidate rows; Job.CandidatesCount
	// is the stored counter and may differ.
	ApplicantCount int                   `json:"applicantCount"`
	Search         string                `json:"search"`
	Status         string                `json:"status"`
	StatusFilters  []string              `json:"statusFilters"`
	Candidates     []candidate.Candidate `json:"candidates"`
	Scores         insights.Scores       `json:"scores"`
}

func (r *Renderer) candidateList(ctx context.Context, jobID string, p Params) (CandidateListData, error) {
	j, ok, err := r.catalog.Jobs.Find(ctx, jobID)
	if err != nil {
		return CandidateListData{}, err
	}
	if !ok {
		return CandidateListData{}, job.ErrNotFound
	}
	cands, err := r.catalog.Candidates.ForJob(ctx, jobID)
	if err != nil {
		return CandidateListData{}, err
	}
	return CandidateListData{
		Job:            j,
		ApplicantCount: len(cands),
		Search:         p.Search,
		Status:         statusOrAll(p.Status),
		StatusFilters:  candidateStatusFilters(),
		Candidates:     candidate.Filter(cands, filter.Query{Search: p.Search, Status: p.Status}),
		Scores:         insights.ScoreMeans(cands),
	}, nil
}

type StatusAction struct {
	Status candidate.Status `json:"status"`
	Label  string           `json:"label"`
	// Enabled stays false until the effect of a status change is decided.
	Enabled bool `json:"enabled"`
}

type CandidateProfileData struct {
	Candidate candidate.Candidate `json:"candidate"`
	// Job is nil when the candidate points at a job that no longer resolves.
	Job     *job.Job       `json:"job"`
	Actions []StatusAction `json:"actions"`
}

func (r *Renderer) candidateProfile(ctx context.Context, id string) (CandidateProfileData, error) {
	c, ok, err := r.catalog.Candidates.Find(ctx, id)
	if err != nil {
		return CandidateProfileData{}, err
	}
	if !ok {
		return CandidateProfileData{}, candidate.ErrNotFound
	}
	out := CandidateProfileData{Candidate: c, Actions: statusActions}
	j, ok, err := r.catalog.Jobs.Find(ctx, c.JobID)
	if err != nil {
		return CandidateProfileData{}, err
	}
	if ok {
		out.Job = &j
	}
	return out, nil
}

type AddJobData struct {
	Departments   []Option         `json:"departments"`
	Types         []string         `json:"types"`
	Statuses      []job.Status     `json:"statuses"`
	Difficulties  []job.Difficulty `json:"difficulties"`
	DefaultStatus job.Status       `json:"defaultStatus"`
}

func addJob() AddJobData {
	return AddJobData{
		Departments:   departments,
		Types:         employmentTypes,
		Statuses:      []job.Status{job.StatusDraft, job.StatusActive, job.StatusClosed},
		Difficulties:  job.Difficulties,
		DefaultStatus: job.StatusDraft,
	}
}

type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Company string `json:"company"`
}

type Account struct {
	Provider  auth.Provider `json:"provider"`
	Label     string        `json:"label"`
	Connected bool          `json:"connected"`
}

type Notifications struct {
	EmailNotifications bool `json:"emailNotifications"`
	NewApplications    bool `json:"newApplications"`
	InterviewReminders bool `json:"interviewReminders"`
	WeeklyReports      bool `json:"weeklyReports"`
}

type SettingsData struct {
	Profile       Profile       `json:"profile"`
	Provider      auth.Provider `json:"provider"`
	ProviderLabel string        `json:"providerLabel"`
	// EmailEditable is false for social accounts; their email belongs to the provider.
	EmailEditable bool          `json:"emailEditable"`
	Accounts      []Account     `json:"accounts"`
	Notifications Notifications `json:"notifications"`
}

func settings(st session.State) SettingsData {
	var u auth.User
	if st.CurrentUser != nil {
		u = *st.CurrentUser
	}
	provider := u.AuthProvider
	if provider == "" {
		provider = auth.ProviderEmail
	}
	role := u.Role
	if role == "" {
		role = auth.DefaultRole
	}

	accounts := make([]Account, 0, len(auth.SocialProviders))
	for _, p := range auth.SocialProviders {
		accounts = append(accounts, Account{Provider: p, Label: p.Label(), Connected: p == provider})
	}
	return SettingsData{
		Profile:       Profile{Name: u.Name, Email: u.Email, Role: role, Company: company},
		Provider:      provider,
		ProviderLabel: provider.Label(),
		EmailEditable: provider == auth.ProviderEmail,
		Accounts:      accounts,
		Notifications: Notifications{EmailNotifications: true, NewApplications: true, InterviewReminders: true},
	}
}

type ReportsData struct {
	Period  string   `json:"period"`
	Periods []Option `json:"periods"`
	insights.ReportsView
}

func (r *Renderer) reports(ctx context.Context, p Params) (ReportsData, error) {
	period, err := pick(p.Period, defaultPeriod, periods)
	if err != nil {
		return ReportsData{}, err
	}
	view, err := r.insights.Reports(ctx)
	if err != nil {
		return ReportsData{}, err
	}
	return ReportsData{Period: period, Periods: periods, ReportsView: view}, nil
}

type AnalyticsData struct {
	Metric  string   `json:"metric"`
	Metrics []Option `json:"metrics"`
	insights.AnalyticsView
}

func (r *Renderer) analytics(ctx context.Context, p Params) (AnalyticsData, error) {
	metric, err := pick(p.Metric, defaultMetric, metrics)
	if err != nil {
		return AnalyticsData{}, err
	}
	view, err := r.insights.Analytics(ctx)
	if err != nil {
		return AnalyticsData{}, err
	}
	return AnalyticsData{Metric: metric, Metrics: metrics, AnalyticsView: view}, nil
}

type TeamData struct {
	Search      string       `json:"search"`
	Department  string       `json:"department"`
	Departments []string     `json:"departments"`
	Totals      team.Totals  `json:"totals"`
	Groups      []team.Group `json:"groups"`
}

func (r *Renderer) teamView(ctx context.Context, p Params) (TeamData, error) {
	members, err := r.team.List(ctx)
	if err != nil {
		return TeamData{}, err
	}
	q := team.Query{Search: p.Search, Department: p.Department}
	return TeamData{
		Search:      p.Search,
		Department:  statusOrAll(p.Department),
		Departments: team.Departments(members),
		Totals:      team.Summarize(members),
		Groups:      team.Groups(members, q),
	}, nil
}

func statusOrAll(s string) string {
	if s == "" {
		return filter.All
	}
	return s
}
