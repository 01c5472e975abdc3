package domain

import "time"

// Refresh failure tags persisted on a session row. A non-empty tag marks the
// session as failed: its tokens must not be used again, and only a fresh
// login (which replaces the row) recovers.
const (
	TagMissingRefreshToken      = "missing_refresh_token"
	TagRefreshTokenUnauthorized = "refresh_token_unauthorized"
	TagRefreshAccessToken       = "refresh_access_token_error"
)

// Session models a stored browser session. The browser only ever holds an
// opaque sealed reference to the row's ID; the tokens themselves never leave
// the gateway.
type Session struct {
	ID           string // random token, minted at login
	UserID       string
	AccessToken  string
	RefreshToken string
	ErrorTag     string // one of the Tag constants, empty when healthy
	User         User
	ExpiresAt    time.Time // absolute row expiry, set from the refresh token lifetime
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Failed reports whether the session carries a terminal refresh error.
func (s Session) Failed() bool {
	return s.ErrorTag != ""
}

// Expired reports whether the row itself has aged out.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
