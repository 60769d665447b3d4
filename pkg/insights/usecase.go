package insights

import (
	"context"
	"time"

	"github.com/artem13815/after42/pkg/job"
)

type DashboardView struct {
	Stats               JobStats              `json:"stats"`
	ApplicationsByMonth []MonthlyApplications `json:"applicationsByMonth"`
	Departments         []Slice               `json:"departments"`
	Notifications       []Notification        `json:"notifications"`
}

type ReportsView struct {
	HiringStats   HiringStats    `json:"hiringStats"`
	RecentReports []Report       `json:"recentReports"`
	Breakdown     []BreakdownRow `json:"departmentBreakdown"`
}

type AnalyticsView struct {
	Overview      Overview         `json:"overview"`
	Sources       []SourceRate     `json:"sources"`
	TimeToHire    []StageProgress  `json:"timeToHire"`
	StageTotals   TimeToHire       `json:"stageTotals"`
	TopPerformers []PerformerRates `json:"topPerformers"`
}

type UseCase interface {
	Dashboard(ctx context.Context) (DashboardView, error)
	Reports(ctx context.Context) (ReportsView, error)
	Analytics(ctx context.Context) (AnalyticsView, error)
}

type service struct {
	data Dataset
	jobs job.UseCase
	now  func() time.Time
}

// NewService recomputes every view on read; nothing is cached.
func NewService(data Dataset, jobs job.UseCase, now func() time.Time) UseCase {
	if now == nil {
		now = time.Now
	}
	return &service{data: data, jobs: jobs, now: now}
}

func (s *service) Dashboard(ctx context.Context) (DashboardView, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return DashboardView{}, err
	}
	d := s.data.Dashboard
	return DashboardView{
		Stats:               SummarizeJobs(jobs, s.now()),
		ApplicationsByMonth: d.ApplicationsByMonth,
		Departments:         Slices(d.DepartmentApplications),
		Notifications:       d.Notifications,
	}, nil
}

func (s *service) Reports(_ context.Context) (ReportsView, error) {
	r := s.data.Reports
	return ReportsView{
		HiringStats:   r.HiringStats,
		RecentReports: r.RecentReports,
		Breakdown:     Breakdown(r.DepartmentBreakdown),
	}, nil
}

func (s *service) Analytics(_ context.Context) (AnalyticsView, error) {
	a := s.data.Analytics
	return AnalyticsView{
		Overview:      a.Overview,
		Sources:       SourceRates(a.Sources),
		TimeToHire:    Stages(a.TimeToHire),
		StageTotals:   SummarizeStages(a.TimeToHire),
		TopPerformers: Conversion(a.TopPerformers),
	}, nil
}
