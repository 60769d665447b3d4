// Package team holds the hiring team directory and its department grouping.
package team

import (
	"context"
	"slices"

	"github.com/artem13815/after42/pkg/filter"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusPending  Status = "Pending"
)

type Member struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Role        string   `json:"role" yaml:"role"`
	Department  string   `json:"department" yaml:"department"`
	Email       string   `json:"email" yaml:"email"`
	Avatar      string   `json:"avatar" yaml:"avatar"`
	Status      Status   `json:"status" yaml:"status"`
	JoinDate    string   `json:"joinDate" yaml:"joinDate"`
	Permissions []string `json:"permissions" yaml:"permissions"`
	Stats       Activity `json:"stats" yaml:"stats"`
}

type Activity struct {
	JobsPosted         int `json:"jobsPosted" yaml:"jobsPosted"`
	CandidatesReviewed int `json:"candidatesReviewed" yaml:"candidatesReviewed"`
	Interviews         int `json:"interviews" yaml:"interviews"`
}

// Query narrows the directory. Department "all" or empty keeps every department.
type Query struct {
	Search     string
	Department string
}

type GroupStats struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Interviews int `json:"interviews"`
}

// Group is one department section. Stats cover the whole department while
// Members holds only the members matching the search.
type Group struct {
	Department string     `json:"department"`
	Stats      GroupStats `json:"stats"`
	Members    []Member   `json:"members"`
}

type Totals struct {
	Members     int `json:"members"`
	Active      int `json:"active"`
	Departments int `json:"departments"`
	Interviews  int `json:"interviews"`
}

type Repository interface {
	List(ctx context.Context) ([]Member, error)
}

type MemoryRepository struct {
	members []Member
}

func NewMemoryRepository(seed []Member) *MemoryRepository {
	return &MemoryRepository{members: slices.Clone(seed)}
}

func (r *MemoryRepository) List(_ context.Context) ([]Member, error) {
	out := make([]Member, len(r.members))
	for i, m := range r.members {
		m.Permissions = slices.Clone(m.Permissions)
		out[i] = m
	}
	return out, nil
}

// Filter applies the department selection and the name/role/email search.
func Filter(members []Member, q Query) []Member {
	return filter.Apply(members, filter.Query{Search: q.Search, Status: q.Department},
		searchFields,
		func(m Member) string { return m.Department },
	)
}

// Groups splits members by department in first-seen order.
func Groups(members []Member, q Query) []Group {
	var (
		groups []Group
		index  = map[string]int{}
	)
	for _, m := range members {
		i, ok := index[m.Department]
		if !ok {
			i = len(groups)
			index[m.Department] = i
			groups = append(groups, Group{Department: m.Department, Members: []Member{}})
		}
		g := &groups[i]
		g.Stats.Total++
		if m.Status == StatusActive {
			g.Stats.Active++
		}
		g.Stats.Interviews += m.Stats.Interviews
		if matchSearch(q.Search, m) {
			g.Members = append(g.Members, m)
		}
	}

	out := groups[:0]
	for _, g := range groups {
		if matchDepartment(q.Department, g.Department) {
			out = append(out, g)
		}
	}
	return out
}

func Summarize(members []Member) Totals {
	t := Totals{Members: len(members)}
	seen := map[string]struct{}{}
	for _, m := range members {
		if m.Status == StatusActive {
			t.Active++
		}
		t.Interviews += m.Stats.Interviews
		seen[m.Department] = struct{}{}
	}
	t.Departments = len(seen)
	return t
}

// Departments lists department names in first-seen order.
func Departments(members []Member) []string {
	var out []string
	for _, m := range members {
		if !slices.Contains(out, m.Department) {
			out = append(out, m.Department)
		}
	}
	return out
}

func matchDepartment(want, got string) bool {
	return filter.MatchStatus(want, got)
}

func matchSearch(term string, m Member) bool {
	return filter.MatchText(term, searchFields(m)...)
}

func searchFields(m Member) []string {
	return []string{m.Name, m.Role, m.Email}
}
