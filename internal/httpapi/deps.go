package httpapi

import (
	"context"
	"sync/atomic"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/config"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/domain"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/events"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/remote"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/session"
)

type Deps struct {
	Hub *events.Hub

	// Session state
	Sessions *session.Store
	Manager  *session.Manager

	// Config persistence
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Shutdown is invoked after a token-authenticated /shutdown request.
	Shutdown      func()
	ShutdownToken string

	// Remote backend operations (injected for testability)
	Login        func(ctx context.Context, email, password string) (domain.Session, error)
	Signup       func(ctx context.Context, form remote.SignupForm) (domain.Session, error)
	ListJobs     func(ctx context.Context, token string) ([]domain.JobPosting, error)
	ListUserJobs func(ctx context.Context, token, email string) ([]domain.JobPosting, error)
	CreateJob    func(ctx context.Context, token string, draft domain.JobDraft, createdBy string) error
	DeleteJob    func(ctx context.Context, token, id string) error
	Overview     func(ctx context.Context, token, email string) (all, mine []domain.JobPosting, err error)
	BackendCheck func(ctx context.Context) error
}
