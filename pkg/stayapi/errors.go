package stayapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Terminal refresh error tags. Once one of these is set on a session the
// access token must be treated as unusable even if structurally present;
// only a fresh login clears them.
var (
	// ErrMissingRefreshToken means a refresh was attempted with no refresh
	// token available to send.
	ErrMissingRefreshToken = errors.New("missing_refresh_token")

	// ErrRefreshTokenUnauthorized means the remote service rejected the
	// refresh token itself (invalid, expired, or revoked).
	ErrRefreshTokenUnauthorized = errors.New("refresh_token_unauthorized")

	// ErrRefreshAccessToken covers every other refresh failure: network
	// error, malformed response, or a non-200 envelope status.
	ErrRefreshAccessToken = errors.New("refresh_access_token_error")
)

// ErrUnauthorized is returned by the authenticated request gateway when the
// upstream answers 401 on a business call. The session has already been
// cleared by the time callers see it; the HTTP layer is responsible for the
// forced logout redirect.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a failure reported by the upstream API, either as a non-2xx
// HTTP response or as a non-200 status inside the JSON envelope.
type APIError struct {
	// HTTPStatus is the transport-level status code of the response
	HTTPStatus int

	// Status is the application-level status from the JSON envelope
	// (0 when the body carried no envelope)
	Status int

	// Message is the envelope's human-readable message
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream error (http %d): %s", e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("upstream error (http %d)", e.HTTPStatus)
}

// parseErrorResponse turns an upstream failure into a typed *APIError.
// It tolerates bodies that aren't the expected envelope shape, falling back
// to the HTTP status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{HTTPStatus: resp.StatusCode}

	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Status != 0 {
		apiErr.Status = env.Status
		apiErr.Message = env.Message
		return apiErr
	}

	apiErr.Message = http.StatusText(resp.StatusCode)
	return apiErr
}
