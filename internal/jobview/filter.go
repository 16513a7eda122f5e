package jobview

import (
	"strings"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/domain"
)

// Filter choices shown by the listing screen. "All" disables a filter.
var (
	FilterJobTypes  = []string{"All", "Employment", "Internship", "Starting Up"}
	FilterLocations = []string{"All", "Hyderabad", "Bangalore", "Mumbai", "Pune", "Delhi", "Other"}
)

// Filters narrows an in-memory listing; it never touches the network.
type Filters struct {
	JobType  string
	Location string
	Search   string
}

// Apply runs the listing filters in the same order the UI does: job type,
// then location, then a case-insensitive search across title, company and
// description.
func (f Filters) Apply(jobs []domain.JobView) []domain.JobView {
	out := jobs
	if f.JobType != "" && f.JobType != "All" {
		out = keep(out, func(j domain.JobView) bool { return j.JobType == f.JobType })
	}
	if f.Location != "" && f.Location != "All" {
		out = keep(out, func(j domain.JobView) bool { return j.Location == f.Location })
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		out = keep(out, func(j domain.JobView) bool {
			return strings.Contains(strings.ToLower(j.Title), q) ||
				strings.Contains(strings.ToLower(j.Company), q) ||
				strings.Contains(strings.ToLower(j.Description), q)
		})
	}
	return out
}

func keep(jobs []domain.JobView, pred func(domain.JobView) bool) []domain.JobView {
	var out []domain.JobView
	for _, j := range jobs {
		if pred(j) {
			out = append(out, j)
		}
	}
	return out
}
