// Package jobview bridges the backend's job wire shape to the shape the
// UI renders, applying the portal's defaulting rules.
package jobview

import (
	"strings"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/domain"
)

const (
	fallbackCompany  = "BITS Alumni Company"
	fallbackPoster   = "BITS Alumni"
	fallbackLinkedIn = "#"
)

// Map converts one backend posting into its view model. Pure and total:
// missing optional fields get fixed placeholders, never empty strings.
func Map(job domain.JobPosting) domain.JobView {
	company := job.Company
	if strings.TrimSpace(company) == "" {
		company = fallbackCompany
	}
	poster := job.CreatedBy
	if strings.TrimSpace(poster) == "" {
		poster = fallbackPoster
	}
	linkedIn := job.LinkedInURL
	if linkedIn == "" {
		linkedIn = fallbackLinkedIn
	}

	return domain.JobView{
		ID:           job.ID,
		Title:        job.JobTitle,
		JobType:      job.JobType,
		Company:      company,
		Location:     job.Location,
		Description:  PlainText(job.JobDescription),
		Requirements: SplitRequirements(job.Requirements),
		ContactInfo:  job.ContactInfo,
		PostedBy: domain.PostedBy{
			Name:     poster,
			LinkedIn: linkedIn,
		},
		PostedAt: job.CreatedAt,
		Salary:   job.ExpectedSalary,
	}
}

// SplitRequirements turns the backend's newline-delimited blob into an
// ordered list with blank and whitespace-only lines dropped.
func SplitRequirements(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Active drops soft-deleted postings before mapping. Map itself never
// filters.
func Active(jobs []domain.JobPosting) []domain.JobPosting {
	var out []domain.JobPosting
	for _, j := range jobs {
		if j.Deleted {
			continue
		}
		out = append(out, j)
	}
	return out
}

// MapAll is the filter+map pipeline every listing goes through.
func MapAll(jobs []domain.JobPosting) []domain.JobView {
	active := Active(jobs)
	out := make([]domain.JobView, 0, len(active))
	for _, j := range active {
		out = append(out, Map(j))
	}
	return out
}
