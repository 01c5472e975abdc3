package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/trippath/innkeeper/internal/gateway/service"
	"github.com/trippath/innkeeper/pkg/cryptox"
	"github.com/trippath/innkeeper/pkg/httpx"
	"github.com/trippath/innkeeper/pkg/slogx"
	"github.com/trippath/innkeeper/pkg/tokenx"
)

// Cookie names the gateway issues. The refresh token cookie keeps the
// upstream's name because its Set-Cookie header is forwarded verbatim.
const (
	CookieAccessToken = "access_token"
	CookieSessionID   = "sid"
)

type sessionCtxKey struct{}

// sessionFrom returns the resumed session handle, or nil outside the
// session middleware.
func sessionFrom(ctx context.Context) *service.Handle {
	h, _ := ctx.Value(sessionCtxKey{}).(*service.Handle)
	return h
}

// clearSessionCookies expires every cookie the gateway owns.
func clearSessionCookies(w http.ResponseWriter, cookies httpx.CookieConfig) {
	cookies.ClearCookie(w, CookieAccessToken)
	cookies.ClearCookie(w, tokenx.RefreshCookieName)
	cookies.ClearCookie(w, CookieSessionID)
}

// SessionMiddleware resolves the sealed session cookie into a live session
// handle and persists whatever the request mutated (token rotation, the
// unauthorized backstop) once the handler returns. Requests without a
// resolvable session are torn down with the forced-logout 401.
func SessionMiddleware(sessions *service.SessionService, cookies httpx.CookieConfig) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid, ok := sessionIDFromRequest(r)
			if !ok {
				respondUnauthorized(w, cookies)
				return
			}

			h, err := sessions.Resume(r.Context(), sid)
			if err != nil {
				respondUnauthorized(w, cookies)
				return
			}

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, h)
			ctx = httpx.ContextWithUserID(ctx, h.User().ID)

			next.ServeHTTP(w, r.WithContext(ctx))

			// Persist with a fresh context: the request's own context may
			// already be done and rotated tokens must not be lost.
			saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := h.Save(saveCtx); err != nil {
				slogx.FromContext(ctx).Error("failed to persist session",
					slog.String("session_id", h.ID()), slog.Any("error", err))
			}
		})
	}
}

// sessionIDFromRequest unseals the session cookie into a row ID.
func sessionIDFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieSessionID)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	raw, err := cryptox.Open(cookie.Value)
	if err != nil {
		return "", false
	}
	return string(raw), true
}
