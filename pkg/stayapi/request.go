package stayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// url builds a complete booking-API URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an HTTP request against the booking API with the
// client's HTTP client. This is for unauthenticated requests (catalogue
// browsing); no Authorization header is attached.
func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// Do performs an authenticated request against the booking API using the
// session's access token, refreshing it first when expired.
//
// Bodies default to a JSON content type unless the caller already set one;
// multipart callers pass their boundary-bearing content type through the
// headers map and it is never overridden.
//
// An upstream 401 is the system's backstop against stale tokens: the session
// is cleared unconditionally and ErrUnauthorized is returned, regardless of
// what the local freshness math believed. The HTTP layer is the single place
// that turns ErrUnauthorized into a forced logout redirect. All other error
// statuses are returned to the caller as-is for local handling.
func (s *Session) Do(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	token, err := s.ValidToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		s.Clear()
		return nil, ErrUnauthorized
	}

	return resp, nil
}

// getJSON performs an authenticated GET and decodes the enveloped result
// into target.
func (s *Session) getJSON(ctx context.Context, path string, target any) error {
	resp, err := s.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}

// sendJSON performs an authenticated request with a JSON body and decodes
// the enveloped result into target (which may be nil to discard it).
func (s *Session) sendJSON(ctx context.Context, method, path string, payload, target any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = strings.NewReader(string(data))
	}

	resp, err := s.Do(ctx, method, path, body, nil)
	if err != nil {
		return err
	}
	if target == nil {
		target = &Envelope{}
	}
	return decodeJSON(resp, target, http.StatusOK)
}

// decodeJSON decodes a JSON response into the target, returning a typed
// *APIError when the HTTP status differs from the expected one or the body's
// envelope status reports a failure despite a 2xx response.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	// Read body once for both error parsing and success decoding
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	// The upstream can report failure inside a 2xx response; the envelope
	// status is authoritative.
	var env Envelope
	if err := json.Unmarshal(bodyBytes, &env); err == nil && env.Status != 0 && env.Status != http.StatusOK {
		return &APIError{HTTPStatus: resp.StatusCode, Status: env.Status, Message: env.Message}
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
