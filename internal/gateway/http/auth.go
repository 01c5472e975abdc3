package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/trippath/innkeeper/internal/gateway/service"
	"github.com/trippath/innkeeper/pkg/cryptox"
	"github.com/trippath/innkeeper/pkg/httpx"
	"github.com/trippath/innkeeper/pkg/slogx"
	"github.com/trippath/innkeeper/pkg/stayapi"
)

// AuthHandler serves the authentication proxy endpoints. It owns the cookie
// issuance: the access token and sealed session reference are set here, and
// the upstream refresh cookie is forwarded verbatim.
type AuthHandler struct {
	Sessions *service.SessionService
	Client   *stayapi.Client
	Cookies  httpx.CookieConfig

	// AccessTokenTTL bounds the access token cookie; the token inside
	// expires on its own schedule regardless.
	AccessTokenTTL time.Duration

	// SessionTTL bounds the sealed session cookie, matching the stored row.
	SessionTTL time.Duration
}

// sessionPayload is the session view returned by login, refresh, and the
// session endpoint.
type sessionPayload struct {
	User      stayapi.User `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Authenticates against the remote authentication service and establishes a gateway session.
//	@Description	On success the browser receives the access token cookie, the upstream refresh token cookie, and a sealed session reference.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		stayapi.LoginRequest	true	"Credentials"
//	@Success		200		{object}	Envelope				"user, expires_at"
//	@Failure		401		{object}	Envelope				"invalid credentials"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req stayapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "username and password are required")
		return
	}

	row, creds, err := h.Sessions.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// A rejected login surfaces inline and never touches cookies; an
		// existing session in another tab stays alive.
		writeError(w, h.Cookies, err)
		return
	}

	sealed, err := cryptox.Seal([]byte(row.ID))
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to seal session reference", "error", err)
		respondMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.Cookies.SetSessionCookie(w, CookieAccessToken, creds.AccessToken, h.AccessTokenTTL)
	httpx.ForwardSetCookie(w, creds.RefreshSetCookie)
	h.Cookies.SetSessionCookie(w, CookieSessionID, sealed, h.SessionTTL)

	respondData(w, http.StatusOK, "login successful", sessionPayload{
		User:      creds.User,
		ExpiresAt: creds.ExpiresAt,
	})
}

// HandleRefresh godoc
//
//	@Summary		Refresh Session
//	@Description	Forces an access token refresh for the current session and rotates the browser cookies.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	Envelope	"user, expires_at"
//	@Failure		401	{object}	Envelope	"session unusable, redirect to /logout"
//	@Router			/api/auth/refresh-token [get].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromRequest(r)
	if !ok {
		respondUnauthorized(w, h.Cookies)
		return
	}

	_, creds, err := h.Sessions.Refresh(r.Context(), sid)
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}

	h.Cookies.SetSessionCookie(w, CookieAccessToken, creds.AccessToken, h.AccessTokenTTL)
	httpx.ForwardSetCookie(w, creds.RefreshSetCookie)

	respondData(w, http.StatusOK, "token refreshed", sessionPayload{
		User:      creds.User,
		ExpiresAt: creds.ExpiresAt,
	})
}

// HandleLogout godoc
//
//	@Summary		Logout
//	@Description	Invalidates the refresh token upstream, deletes the stored session, and clears every gateway cookie.
//	@Description	Logging out without a session still clears cookies and succeeds.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	Envelope
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sid, ok := sessionIDFromRequest(r); ok {
		if err := h.Sessions.Logout(r.Context(), sid); err != nil {
			slogx.FromContext(r.Context()).Warn("logout cleanup failed", "error", err)
		}
	}

	clearSessionCookies(w, h.Cookies)
	respondMessage(w, http.StatusOK, "logged out")
}

// HandleSession godoc
//
//	@Summary		Current Session
//	@Description	Returns the signed-in user and the access token expiry for the UI.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	Envelope	"user, expires_at"
//	@Failure		401	{object}	Envelope
//	@Router			/api/auth/session [get].
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if sess == nil {
		respondUnauthorized(w, h.Cookies)
		return
	}

	st := sess.Session().State()
	var user stayapi.User
	if st.User != nil {
		user = *st.User
	}
	respondData(w, http.StatusOK, "ok", sessionPayload{
		User:      user,
		ExpiresAt: st.ExpiresAt,
	})
}

// HandleRegister godoc
//
//	@Summary		Register
//	@Description	Proxies account creation to the remote authentication service.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	Envelope
//	@Failure		400	{object}	Envelope
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req stayapi.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	env, err := h.Client.Register(r.Context(), req)
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondMessage(w, http.StatusOK, env.Message)
}

// HandleForgotPassword godoc
//
//	@Summary		Forgot Password
//	@Description	Starts a password reset flow via the remote authentication service.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	Envelope
//	@Router			/api/auth/forgot-password [post].
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req stayapi.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	env, err := h.Client.ForgotPassword(r.Context(), req)
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondMessage(w, http.StatusOK, env.Message)
}

// HandleResetPassword godoc
//
//	@Summary		Reset Password
//	@Description	Completes a password reset flow via the remote authentication service.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	Envelope
//	@Failure		400	{object}	Envelope
//	@Router			/api/auth/reset-password [post].
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req stayapi.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	env, err := h.Client.ResetPassword(r.Context(), req)
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondMessage(w, http.StatusOK, env.Message)
}
