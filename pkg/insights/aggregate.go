package insights

import (
	"strings"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"github.com/artem13815/after42/pkg/candidate"
	"github.com/artem13815/after42/pkg/job"
)

// Rating buckets a source hire rate.
type Rating string

const (
	RatingHigh   Rating = "high"
	RatingMedium Rating = "medium"
	RatingLow    Rating = "low"
)

// Performance compares a pipeline stage against its target.
type Performance string

const (
	OnTarget   Performance = "on-target"
	NearTarget Performance = "near-target"
	OffTarget  Performance = "off-target"
)

const recentWindow = 30 * 24 * time.Hour

var (
	hundred   = decimal.NewFromInt(100)
	tolerance = decimal.RequireFromString("1.2")
)

type JobStats struct {
	ActiveJobs       int `json:"activeJobs"`
	TotalCandidates  int `json:"totalCandidates"`
	PostedLast30Days int `json:"postedLast30Days"`
}

// SummarizeJobs uses the stored candidatesCount, not the candidate rows.
func SummarizeJobs(jobs []job.Job, now time.Time) JobStats {
	var (
		st     JobStats
		counts = make(stats.Float64Data, 0, len(jobs))
		since  = now.Add(-recentWindow)
	)
	for _, j := range jobs {
		if j.Status == job.StatusActive {
			st.ActiveJobs++
		}
		if j.DatePosted.After(since) {
			st.PostedLast30Days++
		}
		counts = append(counts, float64(j.CandidatesCount))
	}
	st.TotalCandidates = int(sum(counts))
	return st
}

func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// FirstName is the text before the first space, or "there".
func FirstName(name string) string {
	first, _, _ := strings.Cut(name, " ")
	if first == "" {
		return "there"
	}
	return first
}

// Percent is part/whole as a percentage rounded half away from zero to one decimal.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(whole))).
		Round(1).
		InexactFloat64()
}

type BreakdownRow struct {
	DepartmentHires
	Percentage float64 `json:"percentage"`
}

// Breakdown gives each department its share of all applications.
func Breakdown(rows []DepartmentHires) []BreakdownRow {
	total := 0
	for _, r := range rows {
		total += r.Applications
	}
	out := make([]BreakdownRow, len(rows))
	for i, r := range rows {
		out[i] = BreakdownRow{DepartmentHires: r, Percentage: Percent(r.Applications, total)}
	}
	return out
}

type Slice struct {
	DepartmentShare
	Percentage float64 `json:"percentage"`
}

func Slices(shares []DepartmentShare) []Slice {
	total := 0
	for _, s := range shares {
		total += s.Applications
	}
	out := make([]Slice, len(shares))
	for i, s := range shares {
		out[i] = Slice{DepartmentShare: s, Percentage: Percent(s.Applications, total)}
	}
	return out
}

type SourceRate struct {
	Source
	Rate   float64 `json:"rate"`
	Rating Rating  `json:"rating"`
}

func SourceRates(sources []Source) []SourceRate {
	out := make([]SourceRate, len(sources))
	for i, s := range sources {
		rate := Percent(s.Hired, s.Applications)
		out[i] = SourceRate{Source: s, Rate: rate, Rating: RateSource(rate)}
	}
	return out
}

func RateSource(rate float64) Rating {
	switch {
	case rate >= 8:
		return RatingHigh
	case rate >= 5:
		return RatingMedium
	default:
		return RatingLow
	}
}

type StageProgress struct {
	Stage
	Performance Performance `json:"performance"`
	// Progress is days/target scaled so that the target sits at 50, capped at 100.
	Progress float64 `json:"progress"`
}

func Stages(stages []Stage) []StageProgress {
	out := make([]StageProgress, len(stages))
	for i, s := range stages {
		out[i] = StageProgress{Stage: s, Performance: RateStage(s.Days, s.Target), Progress: progress(s.Days, s.Target)}
	}
	return out
}

func RateStage(actual, target float64) Performance {
	a, t := decimal.NewFromFloat(actual), decimal.NewFromFloat(target)
	switch {
	case a.LessThanOrEqual(t):
		return OnTarget
	case a.LessThanOrEqual(t.Mul(tolerance)):
		return NearTarget
	default:
		return OffTarget
	}
}

func progress(days, target float64) float64 {
	if target <= 0 {
		return 100
	}
	p := decimal.NewFromFloat(days).Div(decimal.NewFromFloat(target)).Mul(decimal.NewFromInt(50))
	return decimal.Min(p, hundred).Round(1).InexactFloat64()
}

type TimeToHire struct {
	TotalDays   float64 `json:"totalDays"`
	TotalTarget float64 `json:"totalTarget"`
	MeanDays    float64 `json:"meanDays"`
}

func SummarizeStages(stages []Stage) TimeToHire {
	days := make(stats.Float64Data, len(stages))
	targets := make(stats.Float64Data, len(stages))
	for i, s := range stages {
		days[i], targets[i] = s.Days, s.Target
	}
	return TimeToHire{
		TotalDays:   round1(sum(days)),
		TotalTarget: round1(sum(targets)),
		MeanDays:    round1(mean(days)),
	}
}

type PerformerRates struct {
	Performer
	InterviewRate float64 `json:"interviewRate"`
	HireRate      float64 `json:"hireRate"`
}

func Conversion(performers []Performer) []PerformerRates {
	out := make([]PerformerRates, len(performers))
	for i, p := range performers {
		out[i] = PerformerRates{
			Performer:     p,
			InterviewRate: Percent(p.Interviews, p.Applications),
			HireRate:      Percent(p.Hired, p.Applications),
		}
	}
	return out
}

// Scores are the mean challenge score and peer evaluation of a candidate
// list. A nil field means no candidate carries that score.
type Scores struct {
	ChallengeScore *float64 `json:"challengeScore"`
	PeerEvaluation *float64 `json:"peerEvaluation"`
}

func ScoreMeans(cands []candidate.Candidate) Scores {
	var challenge, peer stats.Float64Data
	for _, c := range cands {
		if c.ChallengeScore != nil {
			challenge = append(challenge, *c.ChallengeScore)
		}
		if c.PeerEvaluation != nil {
			peer = append(peer, *c.PeerEvaluation)
		}
	}
	return Scores{ChallengeScore: meanOf(challenge), PeerEvaluation: meanOf(peer)}
}

func meanOf(data stats.Float64Data) *float64 {
	if len(data) == 0 {
		return nil
	}
	m := round1(mean(data))
	return &m
}

func sum(data stats.Float64Data) float64 {
	if len(data) == 0 {
		return 0
	}
	s, _ := stats.Sum(data)
	return s
}

func mean(data stats.Float64Data) float64 {
	if len(data) == 0 {
		return 0
	}
	m, _ := stats.Mean(data)
	return m
}

func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
