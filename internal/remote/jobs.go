package remote

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/domain"
)

// ListJobs fetches every posting, deleted ones included; filtering is the
// view layer's job.
func (c *Client) ListJobs(ctx context.Context, token string) ([]domain.JobPosting, error) {
	var jobs []domain.JobPosting
	if err := c.doJSON(ctx, http.MethodGet, "/v1/jobs", token, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListUserJobs fetches the postings owned by one account. The email rides
// in the path and is escaped accordingly.
func (c *Client) ListUserJobs(ctx context.Context, token, email string) ([]domain.JobPosting, error) {
	var jobs []domain.JobPosting
	endpoint := "/v1/jobs/user/" + url.PathEscape(email)
	if err := c.doJSON(ctx, http.MethodGet, endpoint, token, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// createJobRequest is the POST /v1/jobs body: the form fields plus the
// submit-time stamps. A blank contactInfo goes out as null.
type createJobRequest struct {
	JobType        string  `json:"jobType"`
	JobTitle       string  `json:"jobTitle"`
	Company        string  `json:"company"`
	JobDescription string  `json:"jobDescription"`
	Location       string  `json:"location"`
	ExpectedSalary float64 `json:"expectedSalary"`
	LinkedInURL    string  `json:"linkedInUrl"`
	ContactInfo    *string `json:"contactInfo"`
	Requirements   string  `json:"requirements"`
	CreatedBy      string  `json:"createdBy"`
	CreatedAt      string  `json:"createdAt"`
	Deleted        bool    `json:"deleted"`
}

// CreateJob validates the draft, then posts it stamped with the creator
// and the submit time.
func (c *Client) CreateJob(ctx context.Context, token string, draft domain.JobDraft, createdBy string) error {
	if errs := draft.Validate(); len(errs) > 0 {
		return &ValidationError{Messages: errs}
	}
	c.probeHealth(ctx)

	var contact *string
	if v := strings.TrimSpace(draft.ContactInfo); v != "" {
		contact = &v
	}
	body := createJobRequest{
		JobType:        draft.JobType,
		JobTitle:       draft.Title.String(),
		Company:        draft.Company,
		JobDescription: draft.JobDescription,
		Location:       draft.Location,
		ExpectedSalary: draft.ExpectedSalary,
		LinkedInURL:    draft.LinkedInURL,
		ContactInfo:    contact,
		Requirements:   draft.Requirements,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		Deleted:        false,
	}
	return c.doJSON(ctx, http.MethodPost, "/v1/jobs", token, body, nil)
}

// DeleteJob removes one posting by id.
func (c *Client) DeleteJob(ctx context.Context, token, id string) error {
	c.probeHealth(ctx)
	return c.doJSON(ctx, http.MethodDelete, "/v1/jobs/"+url.PathEscape(id), token, nil, nil)
}

// Overview fetches the full listing and the caller's own postings
// concurrently, for the landing screen's counts.
func (c *Client) Overview(ctx context.Context, token, email string) (all, mine []domain.JobPosting, err error) {
	var g errgroup.Group
	g.Go(func() error {
		var e error
		all, e = c.ListJobs(ctx, token)
		return e
	})
	g.Go(func() error {
		var e error
		mine, e = c.ListUserJobs(ctx, token, email)
		return e
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return all, mine, nil
}
