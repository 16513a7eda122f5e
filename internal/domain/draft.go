package domain

import (
	"regexp"
	"strings"
)

var linkedInRe = regexp.MustCompile(`^(https?://)?(www\.)?linkedin\.com/(in|company)/[a-zA-Z0-9_-]+/?$`)

// JobDraft is the post-a-job form before submission. CreatedBy/CreatedAt
// and the deleted flag are stamped at submit time, not here.
type JobDraft struct {
	JobType        string   `json:"jobType"`
	Title          JobTitle `json:"-"`
	Company        string   `json:"company"`
	JobDescription string   `json:"jobDescription"`
	Location       string   `json:"location"`
	ExpectedSalary float64  `json:"expectedSalary"`
	LinkedInURL    string   `json:"linkedInUrl"`
	ContactInfo    string   `json:"contactInfo"`
	Requirements   string   `json:"requirements"`
}

// Validate mirrors the portal form's schema: type, title, company and
// location are required, the salary must be positive and the LinkedIn URL
// must point at a profile or company page.
func (d JobDraft) Validate() []string {
	var errs []string

	typeOK := false
	for _, t := range JobTypes {
		if t == d.JobType {
			typeOK = true
			break
		}
	}
	if !typeOK {
		errs = append(errs, "Job type is required")
	}
	if d.Title.String() == "" {
		errs = append(errs, "Job title is required")
	}
	if strings.TrimSpace(d.Company) == "" {
		errs = append(errs, "Company name is required")
	}
	if strings.TrimSpace(d.Location) == "" {
		errs = append(errs, "Location is required")
	}
	if d.ExpectedSalary < 1 {
		errs = append(errs, "Expected salary is required")
	}
	if !linkedInRe.MatchString(strings.TrimSpace(d.LinkedInURL)) {
		errs = append(errs, "Please provide a valid LinkedIn URL")
	}
	return errs
}
