package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/domain"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/events"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/jobview"
)

func (d *Deps) ListJobsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := d.requireSession(w, r)
	if !ok {
		return
	}

	jobs, err := d.ListJobs(r.Context(), user.Token)
	if err != nil {
		WriteFailure(w, r, err)
		return
	}

	q := r.URL.Query()
	views := jobview.Filters{
		JobType:  q.Get("type"),
		Location: q.Get("location"),
		Search:   q.Get("q"),
	}.Apply(jobview.MapAll(jobs))
	if views == nil {
		views = []domain.JobView{}
	}
	WriteJSON(w, http.StatusOK, views)
}

func (d *Deps) MyJobsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := d.requireSession(w, r)
	if !ok {
		return
	}

	jobs, err := d.ListUserJobs(r.Context(), user.Token, user.Email)
	if err != nil {
		WriteFailure(w, r, err)
		return
	}

	views := jobview.MapAll(jobs)
	if views == nil {
		views = []domain.JobView{}
	}
	WriteJSON(w, http.StatusOK, views)
}

type overviewResponse struct {
	TotalJobs int `json:"totalJobs"`
	MyJobs    int `json:"myJobs"`
}

func (d *Deps) OverviewHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := d.requireSession(w, r)
	if !ok {
		return
	}

	all, mine, err := d.Overview(r.Context(), user.Token, user.Email)
	if err != nil {
		WriteFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, overviewResponse{
		TotalJobs: len(jobview.MapAll(all)),
		MyJobs:    len(jobview.MapAll(mine)),
	})
}

// postJobRequest is the post-a-job form as the UI submits it: the title
// select plus the free-text field that appears when "Other" is chosen.
type postJobRequest struct {
	JobType        string  `json:"jobType"`
	JobTitle       string  `json:"jobTitle"`
	CustomJobTitle string  `json:"customJobTitle"`
	Company        string  `json:"company"`
	JobDescription string  `json:"jobDescription"`
	Location       string  `json:"location"`
	ExpectedSalary float64 `json:"expectedSalary"`
	LinkedInURL    string  `json:"linkedInUrl"`
	ContactInfo    string  `json:"contactInfo"`
	Requirements   string  `json:"requirements"`
}

// draft resolves the title select here at the edge, so the "Other"
// sentinel never travels further than this handler. A title that fails
// to resolve stays zero and falls out of draft validation.
func (p postJobRequest) draft() domain.JobDraft {
	var title domain.JobTitle
	if p.JobTitle == "Other" {
		title, _ = domain.CustomTitle(p.CustomJobTitle)
	} else if p.JobTitle != "" {
		title, _ = domain.PredefinedTitle(p.JobTitle)
	}
	return domain.JobDraft{
		JobType:        p.JobType,
		Title:          title,
		Company:        p.Company,
		JobDescription: p.JobDescription,
		Location:       p.Location,
		ExpectedSalary: p.ExpectedSalary,
		LinkedInURL:    p.LinkedInURL,
		ContactInfo:    p.ContactInfo,
		Requirements:   p.Requirements,
	}
}

func (d *Deps) CreateJobHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := d.requireSession(w, r)
	if !ok {
		return
	}

	var req postJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	// Postings are stamped with the display name; the email only keys
	// the my-jobs lookup.
	draft := req.draft()
	if err := d.CreateJob(r.Context(), user.Token, draft, user.Name); err != nil {
		WriteFailure(w, r, err)
		return
	}

	d.Hub.PublishEvent(RequestIDFrom(r.Context()), events.TypeJobCreated, map[string]string{
		"title":     draft.Title.String(),
		"company":   draft.Company,
		"createdBy": user.Name,
	})
	WriteJSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

func (d *Deps) DeleteJobHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := d.requireSession(w, r)
	if !ok {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/jobs/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusNotFound, "not_found", "Resource not found.")
		return
	}

	if err := d.DeleteJob(r.Context(), user.Token, id); err != nil {
		WriteFailure(w, r, err)
		return
	}

	d.Hub.PublishEvent(RequestIDFrom(r.Context()), events.TypeJobDeleted, map[string]string{"id": id})
	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
