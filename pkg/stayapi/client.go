package stayapi

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to the remote booking platform: the booking backend API for
// business operations and the authentication service for the token lifecycle.
// It provides unauthenticated operations (catalogue browsing, login,
// registration) and creates authenticated Sessions for everything else.
type Client struct {
	// BaseURL is the booking backend API root
	BaseURL string

	// AuthURL is the remote authentication service root
	AuthURL string

	HTTPClient *http.Client
}

// NewClient creates a client for the booking backend and auth service.
func NewClient(baseURL, authURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		AuthURL: strings.TrimSuffix(authURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession creates an authenticated session from login or refresh
// credentials. The session auto-refreshes its access token as needed.
func (c *Client) NewSession(creds *Credentials) *Session {
	user := creds.User
	return &Session{
		client:       c,
		accessToken:  creds.AccessToken,
		refreshToken: creds.RefreshToken,
		expiresAt:    creds.ExpiresAt,
		user:         &user,
	}
}

// NewSessionFromTokens reconstructs a session from previously stored tokens,
// deriving the access token expiry locally. This is how the gateway rebuilds
// a per-request session from its server-side store. The session will still
// auto-refresh when the access token expires.
func (c *Client) NewSessionFromTokens(accessToken, refreshToken string, user *User) *Session {
	s := &Session{
		client:       c,
		refreshToken: refreshToken,
		user:         user,
	}
	s.installAccessToken(accessToken)
	return s
}
