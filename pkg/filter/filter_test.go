package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	name, email, status string
}

func rowText(r row) []string { return []string{r.name, r.email} }
func rowStatus(r row) string { return r.status }

var rows = []row{
	{"Sarah Chen", "sarah.chen@email.com", "Interview"},
	{"Michael Rodriguez", "michael.r@email.com", "Reviewed"},
	{"Emily Johnson", "emily.j@email.com", "New"},
	{"David Kim", "david.kim@email.com", "Interview"},
}

func TestApplyPassThrough(t *testing.T) {
	got := Apply(rows, Query{Search: "", Status: All}, rowText, rowStatus)
	assert.Equal(t, rows, got)

	got = Apply(rows, Query{}, rowText, rowStatus)
	assert.Equal(t, rows, got)
}

func TestApplyTextAndStatus(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{name: "case insensitive name", q: Query{Search: "CHEN"}, want: []string{"Sarah Chen"}},
		{name: "matches email", q: Query{Search: "michael.r@"}, want: []string{"Michael Rodriguez"}},
		{name: "status only", q: Query{Status: "Interview"}, want: []string{"Sarah Chen", "David Kim"}},
		{name: "anded", q: Query{Search: "d", Status: "Interview"}, want: []string{"David Kim"}},
		{name: "no match", q: Query{Search: "zzz"}, want: []string{}},
		{name: "status is exact", q: Query{Status: "interview"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(rows, tt.q, rowText, rowStatus)
			names := make([]string, 0, len(got))
			for _, r := range got {
				names = append(names, r.name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	q := Query{Search: "e", Status: "Interview"}
	once := Apply(rows, q, rowText, rowStatus)
	twice := Apply(once, q, rowText, rowStatus)
	assert.Equal(t, once, twice)
}

func TestApplyWithoutStatusField(t *testing.T) {
	got := Apply(rows, Query{Search: "kim", Status: "Hired"}, rowText, nil)
	assert.Len(t, got, 1)
}
