package stayapi

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/trippath/innkeeper/pkg/tokenx"
)

// Session is an authenticated identity for the booking platform with
// automatic access-token refresh. All authenticated Session operations
// obtain a valid token through ValidToken, which refreshes lazily.
//
// Concurrent callers that observe an expired token share a single in-flight
// refresh through a single-flight guard, so near-simultaneous expiry
// detections cannot issue duplicate refresh calls or clobber each other's
// rotated refresh tokens.
type Session struct {
	client *Client

	refresh singleflight.Group

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time // zero when accessToken is empty
	user         *User
	err          error // terminal refresh error tag, cleared only by login
}

// State is a copy-on-read snapshot of the session fields. Readers never see
// a partially updated session.
type State struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         *User
	Err          error
}

// State returns a consistent snapshot of the current session.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := State{
		AccessToken:  s.accessToken,
		RefreshToken: s.refreshToken,
		ExpiresAt:    s.expiresAt,
		Err:          s.err,
	}
	if s.user != nil {
		u := *s.user
		st.User = &u
	}
	return st
}

// User returns a copy of the cached identity, or nil when anonymous.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Err returns the terminal refresh error tag, or nil.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// freshLocked reports whether the access token can be used as-is.
// Freshness is a pure wall-clock comparison against the decoded expiry; no
// clock-skew tolerance is applied. The upstream 401 backstop in the request
// gateway remains the authoritative expiry signal.
func (s *Session) freshLocked(now time.Time) bool {
	return s.accessToken != "" && now.Before(s.expiresAt)
}

// installAccessToken sets the access token together with its locally decoded
// expiry. The two fields are always set or cleared as a pair; a token whose
// expiry cannot be decoded is treated as absent, which forces the refresh
// path on first use. Callers must hold the write lock (or own the session
// exclusively, as the constructors do).
func (s *Session) installAccessToken(token string) {
	exp, ok := tokenx.DecodeExpiration(token)
	if token == "" || !ok {
		s.accessToken = ""
		s.expiresAt = time.Time{}
		return
	}
	s.accessToken = token
	s.expiresAt = exp
}

// ValidToken returns an access token that was fresh at the moment of the
// check, refreshing first when needed. A session in a terminal refresh error
// state returns that error without any network call; only Login resets it.
func (s *Session) ValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.err != nil {
		err := s.err
		s.mu.RUnlock()
		return "", err
	}
	if s.freshLocked(time.Now()) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	// Expired or absent: refresh through the single-flight guard so
	// concurrent callers await the same in-progress refresh.
	if _, err, _ := s.refresh.Do("refresh", func() (any, error) {
		return nil, s.doRefresh(ctx)
	}); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return "", s.err
	}
	return s.accessToken, nil
}

// doRefresh performs one refresh attempt and installs the result. It runs at
// most once per single-flight window.
func (s *Session) doRefresh(ctx context.Context) error {
	s.mu.Lock()
	// Double-check after winning the flight: a refresh that completed just
	// before we were queued may already have made the session fresh.
	if s.err == nil && s.freshLocked(time.Now()) {
		s.mu.Unlock()
		return nil
	}
	refreshToken := s.refreshToken
	s.mu.Unlock()

	if refreshToken == "" {
		s.setTerminal(ErrMissingRefreshToken)
		return ErrMissingRefreshToken
	}

	creds, err := s.client.RefreshToken(ctx, refreshToken)
	if err != nil {
		tag := err
		if !errors.Is(err, ErrRefreshTokenUnauthorized) {
			tag = fmt.Errorf("%w: %w", ErrRefreshAccessToken, err)
		}
		s.setTerminal(tag)
		return tag
	}

	// Install the new credentials atomically: access token and expiry always
	// move together, and the refresh token rotates at most once per refresh
	// (an empty rotation keeps the prior token, it never nulls it).
	s.mu.Lock()
	s.installAccessToken(creds.AccessToken)
	if creds.RefreshToken != "" {
		s.refreshToken = creds.RefreshToken
	}
	u := creds.User
	s.user = &u
	s.err = nil
	s.mu.Unlock()

	return nil
}

// setTerminal records a terminal refresh error. The access token fields are
// left as they were; the error tag is authoritative and makes them unusable.
func (s *Session) setTerminal(tag error) {
	s.mu.Lock()
	s.err = tag
	s.mu.Unlock()
}

// Login authenticates with the remote service and installs a fresh session.
// This is the only way out of a terminal refresh error state. A failed login
// leaves the session untouched.
func (s *Session) Login(ctx context.Context, username, password string) error {
	creds, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.installAccessToken(creds.AccessToken)
	s.refreshToken = creds.RefreshToken
	u := creds.User
	s.user = &u
	s.err = nil
	s.mu.Unlock()

	return nil
}

// Logout invalidates the refresh token upstream (best effort) and clears the
// session. Logging out an already-cleared session is a no-op.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.refreshToken
	s.mu.RUnlock()

	if refreshToken != "" {
		if err := s.client.Logout(ctx, refreshToken); err != nil {
			// The local session is cleared regardless; the upstream token
			// will age out on its own.
			s.Clear()
			return err
		}
	}

	s.Clear()
	return nil
}

// Clear nulls every session field. Used by logout and by the request
// gateway's unauthorized backstop.
func (s *Session) Clear() {
	s.mu.Lock()
	s.accessToken = ""
	s.refreshToken = ""
	s.expiresAt = time.Time{}
	s.user = nil
	s.err = nil
	s.mu.Unlock()
}
