package remote

import (
	"context"
	"net/http"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/domain"
)

// Display name when the backend returns none on login.
const fallbackUserName = "BITS User"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Login authenticates against /v1/login and builds the session the
// caller is expected to hand to the session store.
func (c *Client) Login(ctx context.Context, email, password string) (domain.Session, error) {
	c.probeHealth(ctx)

	var resp loginResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/login", "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return domain.Session{}, err
	}

	name := resp.Name
	if name == "" {
		name = fallbackUserName
	}
	return domain.Session{
		Email:           email,
		Name:            name,
		IsAuthenticated: true,
		Token:           resp.Token,
	}, nil
}

// SignupForm carries the registration fields exactly as the backend
// expects them.
type SignupForm struct {
	FullName        string `json:"fullName"`
	BitsID          string `json:"bitsId"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	LinkedInURL     string `json:"linkedInUrl"`
}

// Validate runs the checks that must short-circuit before any network
// call.
func (f SignupForm) Validate() error {
	if f.Password != f.ConfirmPassword {
		return &ValidationError{Messages: []string{"Passwords don't match"}}
	}
	return nil
}

type signupResponse struct {
	Token string `json:"token"`
}

// Signup registers a new account. The confirm-password check runs before
// any network I/O, including the reachability probe.
func (c *Client) Signup(ctx context.Context, form SignupForm) (domain.Session, error) {
	if err := form.Validate(); err != nil {
		return domain.Session{}, err
	}
	c.probeHealth(ctx)

	var resp signupResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/signup", "", form, &resp); err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		BitsID:          form.BitsID,
		Email:           form.Email,
		Name:            form.FullName,
		IsAuthenticated: true,
		Token:           resp.Token,
	}, nil
}
