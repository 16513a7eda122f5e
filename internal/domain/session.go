package domain

// Session is the client-held record of the currently authenticated user.
// It is serialized as JSON under the same logical key in both session
// backends (keychain and local store).
type Session struct {
	BitsID          string `json:"bitsId,omitempty"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	Token           string `json:"token,omitempty"`
}

// Valid reports whether the session counts for authorization purposes.
// Absence of a token does not itself invalidate a session; the backend
// rejects stale tokens with a 401.
func (s *Session) Valid() bool {
	return s != nil && s.IsAuthenticated
}
