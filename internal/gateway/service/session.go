package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/trippath/innkeeper/internal/gateway/domain"
	"github.com/trippath/innkeeper/internal/gateway/store"
	"github.com/trippath/innkeeper/pkg/cryptox"
	"github.com/trippath/innkeeper/pkg/stayapi"
)

var (
	// ErrSessionNotFound means the session reference does not resolve to a
	// stored row (deleted, purged, or never existed).
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired means the stored row itself aged out.
	ErrSessionExpired = errors.New("session expired")
)

// DefaultSessionTTL bounds a server-side session row. It should track the
// upstream refresh token lifetime; a row that outlives its refresh token is
// useless anyway.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionService owns the server-side session rows and their mapping onto
// live upstream sessions. The browser only ever sees a sealed reference to a
// row ID; the tokens stay in the store.
type SessionService struct {
	Store  store.Store
	Client *stayapi.Client
	Logger *slog.Logger

	// SessionTTL is the row lifetime. Zero means DefaultSessionTTL.
	SessionTTL time.Duration
}

func (s *SessionService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSessionTTL
}

// Login authenticates against the remote service and persists a new session
// row. A rejected login creates nothing and disturbs nothing.
func (s *SessionService) Login(ctx context.Context, username, password string) (domain.Session, *stayapi.Credentials, error) {
	creds, err := s.Client.Login(ctx, username, password)
	if err != nil {
		return domain.Session{}, nil, err
	}

	// Session IDs are pure entropy, not ULIDs: the value ends up inside a
	// browser cookie and must carry no structure at all.
	id, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Session{}, nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	row := domain.Session{
		ID:           id,
		UserID:       creds.User.ID,
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		User:         mapUser(creds.User),
		ExpiresAt:    time.Now().Add(s.ttl()),
	}

	if err := s.Store.Sessions().CreateSession(ctx, row); err != nil {
		return domain.Session{}, nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.Logger.InfoContext(ctx, "session created", "session_id", row.ID, "user_id", row.UserID)
	return row, creds, nil
}

// Handle is a resumed session: the stored row plus a live upstream session
// built from its tokens. Save writes whatever the upstream session mutated
// (token rotation, the unauthorized backstop, a terminal refresh error) back
// to the row.
type Handle struct {
	svc  *SessionService
	row  domain.Session
	sess *stayapi.Session
}

// Resume loads a session row and rebuilds its live upstream session. A row
// carrying a terminal refresh error resumes into that same error; only a new
// login replaces it.
func (s *SessionService) Resume(ctx context.Context, sessionID string) (*Handle, error) {
	row, err := s.Store.Sessions().GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if row.Expired(time.Now()) {
		_ = s.Store.Sessions().DeleteSession(ctx, row.ID)
		return nil, ErrSessionExpired
	}

	if row.Failed() {
		return nil, tagError(row.ErrorTag)
	}

	user := mapUserBack(row.User)
	return &Handle{
		svc:  s,
		row:  row,
		sess: s.Client.NewSessionFromTokens(row.AccessToken, row.RefreshToken, &user),
	}, nil
}

// Session exposes the live upstream session for request handling.
func (h *Handle) Session() *stayapi.Session { return h.sess }

// User returns the identity captured at login or last refresh.
func (h *Handle) User() domain.User { return h.row.User }

// ID returns the stored row's ID.
func (h *Handle) ID() string { return h.row.ID }

// Save persists the live session's state back to the row. It is safe to call
// unconditionally after request handling; an unchanged session writes
// nothing.
func (h *Handle) Save(ctx context.Context) error {
	st := h.sess.State()

	// The unauthorized backstop clears everything; the row follows.
	if st.AccessToken == "" && st.RefreshToken == "" && st.User == nil && st.Err == nil {
		if err := h.svc.Store.Sessions().DeleteSession(ctx, h.row.ID); err != nil {
			return err
		}
		h.svc.Logger.InfoContext(ctx, "session cleared", "session_id", h.row.ID)
		return nil
	}

	next := h.row
	next.AccessToken = st.AccessToken
	next.RefreshToken = st.RefreshToken
	next.ErrorTag = errorTag(st.Err)
	if st.User != nil {
		next.User = mapUser(*st.User)
		next.UserID = st.User.ID
	}

	if next.AccessToken == h.row.AccessToken &&
		next.RefreshToken == h.row.RefreshToken &&
		next.ErrorTag == h.row.ErrorTag &&
		sameUser(next.User, h.row.User) {
		return nil
	}

	if err := h.svc.Store.Sessions().UpdateSession(ctx, next); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The row was deleted mid-request (logout elsewhere); nothing
			// left to persist.
			return nil
		}
		return err
	}
	h.row = next
	return nil
}

// Refresh forces a token refresh regardless of local freshness and persists
// the outcome. It backs the explicit refresh endpoint; the lazy path inside
// Session.Do stays untouched.
func (s *SessionService) Refresh(ctx context.Context, sessionID string) (domain.Session, *stayapi.Credentials, error) {
	h, err := s.Resume(ctx, sessionID)
	if err != nil {
		return domain.Session{}, nil, err
	}

	row := h.row
	if row.RefreshToken == "" {
		row.ErrorTag = domain.TagMissingRefreshToken
		_ = s.Store.Sessions().UpdateSession(ctx, row)
		return domain.Session{}, nil, stayapi.ErrMissingRefreshToken
	}

	creds, err := s.Client.RefreshToken(ctx, row.RefreshToken)
	if err != nil {
		if !errors.Is(err, stayapi.ErrRefreshTokenUnauthorized) {
			err = fmt.Errorf("%w: %w", stayapi.ErrRefreshAccessToken, err)
		}
		row.ErrorTag = errorTag(err)
		_ = s.Store.Sessions().UpdateSession(ctx, row)
		s.Logger.WarnContext(ctx, "session refresh failed", "session_id", row.ID, "error_tag", row.ErrorTag)
		return domain.Session{}, nil, err
	}

	row.AccessToken = creds.AccessToken
	if creds.RefreshToken != "" {
		row.RefreshToken = creds.RefreshToken
	}
	row.User = mapUser(creds.User)
	row.UserID = creds.User.ID
	row.ErrorTag = ""

	if err := s.Store.Sessions().UpdateSession(ctx, row); err != nil {
		return domain.Session{}, nil, err
	}
	return row, creds, nil
}

// Logout invalidates the refresh token upstream (best effort) and deletes
// the row. Logging out an unknown or already-deleted session succeeds.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	row, err := s.Store.Sessions().GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	if row.RefreshToken != "" {
		if err := s.Client.Logout(ctx, row.RefreshToken); err != nil {
			s.Logger.WarnContext(ctx, "upstream logout failed", "session_id", row.ID, "error", err)
		}
	}

	if err := s.Store.Sessions().DeleteSession(ctx, row.ID); err != nil {
		return err
	}
	s.Logger.InfoContext(ctx, "session deleted", "session_id", row.ID, "user_id", row.UserID)
	return nil
}

// errorTag maps a session error to its persisted tag.
func errorTag(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, stayapi.ErrMissingRefreshToken):
		return domain.TagMissingRefreshToken
	case errors.Is(err, stayapi.ErrRefreshTokenUnauthorized):
		return domain.TagRefreshTokenUnauthorized
	default:
		return domain.TagRefreshAccessToken
	}
}

// tagError maps a persisted tag back to the sentinel it was minted from.
func tagError(tag string) error {
	switch tag {
	case domain.TagMissingRefreshToken:
		return stayapi.ErrMissingRefreshToken
	case domain.TagRefreshTokenUnauthorized:
		return stayapi.ErrRefreshTokenUnauthorized
	default:
		return stayapi.ErrRefreshAccessToken
	}
}

func sameUser(a, b domain.User) bool {
	return a.ID == b.ID &&
		a.Username == b.Username &&
		a.DisplayName == b.DisplayName &&
		a.Role == b.Role &&
		slices.Equal(a.Permissions, b.Permissions)
}

func mapUser(u stayapi.User) domain.User {
	return domain.User{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Permissions: u.Permissions,
	}
}

func mapUserBack(u domain.User) stayapi.User {
	return stayapi.User{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Permissions: u.Permissions,
	}
}
