package httpapi

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/apierr"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/config"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/domain"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/events"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/remote"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/session"
)

type memBackend struct {
	mu  sync.Mutex
	val string
	set bool
}

func (b *memBackend) Get(context.Context) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.val, b.set, nil
}

func (b *memBackend) Set(_ context.Context, v string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.val, b.set = v, true
	return nil
}

func (b *memBackend) Delete(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.val, b.set = "", false
	return nil
}

func testConfig() config.Config {
	var cfg config.Config
	cfg.App.Port = 38472
	cfg.Links.ContactURL = "https://linkedin.com/in/portal-maintainer"
	cfg.Links.RepoURL = "https://github.com/shivang-jani/bitsjob-search-frontend"
	return cfg
}

func newTestDeps(t *testing.T) *Deps {
	t.Helper()

	store := session.NewStore(&memBackend{}, &memBackend{})
	mgr := session.NewManager(context.Background(), store)

	var cfgVal atomic.Value
	cfgVal.Store(testConfig())

	return &Deps{
		Hub:      events.NewHub(),
		Sessions: store,
		Manager:  mgr,
		CfgVal:   &cfgVal,
		BackendCheck: func(context.Context) error {
			return nil
		},
	}
}

func authedSession() domain.Session {
	return domain.Session{
		Email:           "alice@bits.example",
		Name:            "Alice",
		Token:           "tok-123",
		IsAuthenticated: true,
	}
}

func doJSONReq(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) APIError {
	t.Helper()
	var e APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestHealth(t *testing.T) {
	h := NewMux(newTestDeps(t))
	rec := doJSONReq(t, h, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	h := NewMux(newTestDeps(t))
	rec := doJSONReq(t, h, http.MethodDelete, "/health", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLoginLogoutLifecycle(t *testing.T) {
	d := newTestDeps(t)
	d.Login = func(_ context.Context, email, password string) (domain.Session, error) {
		assert.Equal(t, "alice@bits.example", email)
		assert.Equal(t, "hunter2", password)
		return authedSession(), nil
	}
	h := NewMux(d)

	evts := d.Hub.Subscribe()
	defer d.Hub.Unsubscribe(evts)

	rec := doJSONReq(t, h, http.MethodPost, "/login", map[string]string{
		"email": "alice@bits.example", "password": "hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var state sessionState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "Alice", state.User.Name)

	var evt events.Event
	require.NoError(t, json.Unmarshal([]byte(<-evts), &evt))
	assert.Equal(t, events.TypeSessionChanged, evt.Type)

	rec = doJSONReq(t, h, http.MethodGet, "/session", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.True(t, state.IsAuthenticated)

	rec = doJSONReq(t, h, http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSONReq(t, h, http.MethodGet, "/session", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
}

func TestLoginRemoteFailure(t *testing.T) {
	d := newTestDeps(t)
	d.Login = func(context.Context, string, string) (domain.Session, error) {
		return domain.Session{}, &apierr.Error{Descriptor: apierr.Descriptor{
			Message: "Unauthorized. Please log in again.",
			Status:  401,
		}}
	}
	h := NewMux(d)

	rec := doJSONReq(t, h, http.MethodPost, "/login", map[string]string{
		"email": "x@y.z", "password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	e := decodeAPIError(t, rec)
	assert.Equal(t, "remote_error", e.Error.Code)
	assert.Equal(t, "Unauthorized. Please log in again.", e.Error.Message)
}

func TestJobsRequireSession(t *testing.T) {
	h := NewMux(newTestDeps(t))
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/jobs"},
		{http.MethodGet, "/jobs/mine"},
		{http.MethodGet, "/overview"},
		{http.MethodPost, "/jobs"},
		{http.MethodDelete, "/jobs/j-1"},
	} {
		rec := doJSONReq(t, h, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
		e := decodeAPIError(t, rec)
		assert.Equal(t, "Unauthorized. Please log in again.", e.Error.Message)
	}
}

func TestListJobsFilters(t *testing.T) {
	d := newTestDeps(t)
	require.NoError(t, d.Sessions.Save(context.Background(), authedSession()))
	d.ListJobs = func(_ context.Context, token string) ([]domain.JobPosting, error) {
		assert.Equal(t, "tok-123", token)
		return []domain.JobPosting{
			{ID: "1", JobTitle: "Software Engineer", JobType: "Employment", Location: "Pune"},
			{ID: "2", JobTitle: "Data Analyst", JobType: "Internship", Location: "Pune"},
			{ID: "3", JobTitle: "Gone", JobType: "Internship", Location: "Pune", Deleted: true},
		}, nil
	}
	h := NewMux(d)

	rec := doJSONReq(t, h, http.MethodGet, "/jobs?type=Internship&location=Pune", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []domain.JobView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "Data Analyst", views[0].Title)
}

func TestListJobsEmptyIsArray(t *testing.T) {
	d := newTestDeps(t)
	require.NoError(t, d.Sessions.Save(context.Background(), authedSession()))
	d.ListJobs = func(context.Context, string) ([]domain.JobPosting, error) {
		return nil, nil
	}
	h := NewMux(d)

	rec := doJSONReq(t, h, http.MethodGet, "/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestOverviewCountsActiveOnly(t *testing.T) {
	d := newTestDeps(t)
	require.NoError(t, d.Sessions.Save(context.Background(), authedSession()))
	d.Overview = func(_ context.Context, _, email string) ([]domain.JobPosting, []domain.JobPosting, error) {
		assert.Equal(t, "alice@bits.example", email)
		all := []domain.JobPosting{{ID: "1"}, {ID: "2"}, {ID: "3", Deleted: true}}
		mine := []domain.JobPosting{{ID: "1"}}
		return all, mine, nil
	}
	h := NewMux(d)

	rec := doJSONReq(t, h, http.MethodGet, "/overview", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalJobs":2,"myJobs":1}`, rec.Body.String())
}

func TestCreateJobResolvesOtherTitle(t *testing.T) {
	d := newTestDeps(t)
	require.NoError(t, d.Sessions.Save(context.Background(), authedSession()))

	var got domain.JobDraft
	d.CreateJob = func(_ context.Context, _ string, draft domain.JobDraft, createdBy string) error {
		got = draft
		assert.Equal(t, "Alice", createdBy, "postings carry the display name, not the email")
		return nil
	}
	h := NewMux(d)

	evts := d.Hub.Subscribe()
	defer d.Hub.Unsubscribe(evts)

	rec := doJSONReq(t, h, http.MethodPost, "/jobs", map[string]any{
		"jobType":        "Employment",
		"jobTitle":       "Other",
		"customJobTitle": "Quant Researcher",
		"company":        "Acme",
		"location":       "Mumbai",
		"expectedSalary": 12,
		"linkedInUrl":    "https://linkedin.com/company/acme",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, "Quant Researcher", got.Title.String())
	assert.True(t, got.Title.IsCustom())

	var evt events.Event
	require.NoError(t, json.Unmarshal([]byte(<-evts), &evt))
	assert.Equal(t, events.TypeJobCreated, evt.Type)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(evt.Data, &payload))
	assert.Equal(t, "Alice", payload["createdBy"])
}

func TestCreateJobValidationFailure(t *testing.T) {
	d := newTestDeps(t)
	require.NoError(t, d.Sessions.Save(context.Background(), authedSession()))
	d.CreateJob = func(_ context.Context, _ string, draft domain.JobDraft, _ string) error {
		if errs := draft.Validate(); len(errs) > 0 {
			return &remote.ValidationError{Messages: errs}
		}
		return nil
	}
	h := NewMux(d)

	rec := doJSONReq(t, h, http.MethodPost, "/jobs", map[string]any{
		"jobType": "Employment",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	e := decodeAPIError(t, rec)
	assert.Equal(t, "validation_failed", e.Error.Code)
	assert.Contains(t, e.Error.Message, "Job title is required")
}

func TestDeleteJob(t *testing.T) {
	d := newTestDeps(t)
	require.NoError(t, d.Sessions.Save(context.Background(), authedSession()))

	var gotID string
	d.DeleteJob = func(_ context.Context, _, id string) error {
		gotID = id
		return nil
	}
	h := NewMux(d)

	evts := d.Hub.Subscribe()
	defer d.Hub.Unsubscribe(evts)

	rec := doJSONReq(t, h, http.MethodDelete, "/jobs/j-42", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "j-42", gotID)

	var evt events.Event
	require.NoError(t, json.Unmarshal([]byte(<-evts), &evt))
	assert.Equal(t, events.TypeJobDeleted, evt.Type)
}

func TestBackendHealthUnreachable(t *testing.T) {
	d := newTestDeps(t)
	d.BackendCheck = func(context.Context) error {
		return &apierr.Error{Descriptor: apierr.Descriptor{
			Message: "Server error. Please try again later.",
			Status:  500,
		}}
	}
	h := NewMux(d)

	rec := doJSONReq(t, h, http.MethodGet, "/health/backend", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reachable":false,"detail":"Server error. Please try again later."}`, rec.Body.String())
}

func TestLinks(t *testing.T) {
	h := NewMux(newTestDeps(t))
	rec := doJSONReq(t, h, http.MethodGet, "/links", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var links linksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &links))
	assert.Equal(t, "https://linkedin.com/in/portal-maintainer", links.ContactURL)
}

func TestConfigRoundTrip(t *testing.T) {
	d := newTestDeps(t)
	path := filepath.Join(t.TempDir(), "config.yml")
	d.UserCfgPath = path
	d.LoadCfg = func() (config.Config, error) {
		cfg, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg, _ = config.NormalizeAndValidate(cfg)
		return cfg, nil
	}
	h := NewMux(d)

	next := testConfig()
	next.API.BaseURL = "https://staging.bitsjobsearch.com/"
	rec := doJSONReq(t, h, http.MethodPut, "/config", next)
	require.Equal(t, http.StatusOK, rec.Code)

	var saved config.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "https://staging.bitsjobsearch.com", saved.API.BaseURL)

	// The hot-swapped value serves subsequent reads.
	rec = doJSONReq(t, h, http.MethodGet, "/config", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "https://staging.bitsjobsearch.com", saved.API.BaseURL)
}

func TestConfigPutRejectsInvalid(t *testing.T) {
	d := newTestDeps(t)
	h := NewMux(d)

	bad := testConfig()
	bad.App.Port = 99999
	rec := doJSONReq(t, h, http.MethodPut, "/config", bad)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var res config.Validation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Errors)
}

func TestShutdownTokenGate(t *testing.T) {
	d := newTestDeps(t)
	d.ShutdownToken = "secret"
	var called bool
	d.Shutdown = func() { called = true }
	h := NewMux(d)

	req := httptest.NewRequest(http.MethodPost, "/shutdown", nil)
	req.Header.Set("X-Shutdown-Token", "wrong")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)

	req = httptest.NewRequest(http.MethodPost, "/shutdown", nil)
	req.Header.Set("X-Shutdown-Token", "secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestEventsStreamSendsInitialPing(t *testing.T) {
	d := newTestDeps(t)
	srv := httptest.NewServer(NewMux(d))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(line, "data: "))

	var evt events.Event
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(line), "data: ")), &evt))
	assert.Equal(t, events.TypePing, evt.Type)
}
