package http

import (
	"errors"
	"net/http"

	"github.com/trippath/innkeeper/internal/gateway/service"
	"github.com/trippath/innkeeper/pkg/httpx"
	"github.com/trippath/innkeeper/pkg/stayapi"
)

// Envelope is the response wrapper every gateway endpoint uses, mirroring
// the upstream API's shape so the frontend handles one format.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respondData(w http.ResponseWriter, status int, message string, data any) {
	httpx.WriteJSON(w, status, Envelope{Status: status, Message: message, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	httpx.WriteJSON(w, status, Envelope{Status: status, Message: message})
}

// unauthorizedRedirect is the data payload on every forced-logout 401. The
// frontend routes the user through /logout, which clears any residue and
// lands on the sign-in page. This responder is the only place in the
// gateway that issues it.
type unauthorizedRedirect struct {
	Redirect string `json:"redirect"`
}

func respondUnauthorized(w http.ResponseWriter, cookies httpx.CookieConfig) {
	clearSessionCookies(w, cookies)
	httpx.WriteJSON(w, http.StatusUnauthorized, Envelope{
		Status:  http.StatusUnauthorized,
		Message: "unauthorized",
		Data:    unauthorizedRedirect{Redirect: "/logout"},
	})
}

// isUnauthorized reports whether an error means the browser's session is no
// longer usable and must be torn down.
func isUnauthorized(err error) bool {
	return errors.Is(err, stayapi.ErrUnauthorized) ||
		errors.Is(err, stayapi.ErrMissingRefreshToken) ||
		errors.Is(err, stayapi.ErrRefreshTokenUnauthorized) ||
		errors.Is(err, stayapi.ErrRefreshAccessToken) ||
		errors.Is(err, service.ErrSessionNotFound) ||
		errors.Is(err, service.ErrSessionExpired)
}

// writeError maps an upstream or session error onto a gateway response.
// Unauthorized-class errors tear the session down; upstream APIErrors pass
// through with their envelope; anything else is a 502.
func writeError(w http.ResponseWriter, cookies httpx.CookieConfig, err error) {
	if isUnauthorized(err) {
		respondUnauthorized(w, cookies)
		return
	}

	var apiErr *stayapi.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.HTTPStatus
		if status == http.StatusOK && apiErr.Status != 0 {
			status = apiErr.Status
		}
		envStatus := apiErr.Status
		if envStatus == 0 {
			envStatus = status
		}
		httpx.WriteJSON(w, status, Envelope{Status: envStatus, Message: apiErr.Message})
		return
	}

	respondMessage(w, http.StatusBadGateway, "upstream unavailable")
}
