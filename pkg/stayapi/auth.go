package stayapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/trippath/innkeeper/pkg/tokenx"
)

// Login authenticates with the remote authentication service. On success the
// returned Credentials carry the access token with its locally decoded
// expiry, the refresh token from the response's Set-Cookie header, and the
// user identity. Credential failures come back as *APIError and must never
// tear down an existing session.
func (c *Client) Login(ctx context.Context, username, password string) (*Credentials, error) {
	body, err := json.Marshal(LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.AuthURL+"/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return c.decodeCredentials(resp)
}

// RefreshToken mints a new access token from a refresh token. The refresh
// token travels as a cookie, matching the remote service's contract. A 401
// response maps to ErrRefreshTokenUnauthorized; any other failure is
// returned as-is for the session to tag as a generic refresh error.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*Credentials, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.AuthURL+"/refresh-token", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: tokenx.RefreshCookieName, Value: refreshToken})

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, ErrRefreshTokenUnauthorized
	}

	return c.decodeCredentials(resp)
}

// Logout invalidates a refresh token upstream. Best effort: the caller
// clears its local state regardless of the outcome.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.AuthURL+"/logout", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: tokenx.RefreshCookieName, Value: refreshToken})

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return &APIError{HTTPStatus: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return nil
}

// Register creates a new account. Validation failures surface as *APIError.
func (c *Client) Register(ctx context.Context, reg RegisterRequest) (*Envelope, error) {
	return c.postAuthJSON(ctx, "/register", reg)
}

// ForgotPassword starts a password reset flow for the given email.
func (c *Client) ForgotPassword(ctx context.Context, fp ForgotPasswordRequest) (*Envelope, error) {
	return c.postAuthJSON(ctx, "/forgot-password", fp)
}

// ResetPassword completes a password reset flow.
func (c *Client) ResetPassword(ctx context.Context, rp ResetPasswordRequest) (*Envelope, error) {
	return c.postAuthJSON(ctx, "/reset-password", rp)
}

// postAuthJSON posts a JSON body to the auth service and decodes the bare
// envelope response.
func (c *Client) postAuthJSON(ctx context.Context, path string, payload any) (*Envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.AuthURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	var env Envelope
	if err := decodeJSON(resp, &env, http.StatusOK); err != nil {
		return nil, err
	}
	if env.Status != http.StatusOK {
		return nil, &APIError{HTTPStatus: http.StatusOK, Status: env.Status, Message: env.Message}
	}
	return &env, nil
}

// decodeCredentials parses a login or refresh response: the token envelope
// from the body and the (possibly rotated) refresh token from the raw
// Set-Cookie headers. An absent refresh cookie leaves
// Credentials.RefreshToken empty, which callers treat as "keep the prior
// token".
func (c *Client) decodeCredentials(resp *http.Response) (*Credentials, error) {
	var env loginEnvelope
	if err := decodeJSON(resp, &env, http.StatusOK); err != nil {
		return nil, err
	}
	if env.Status != http.StatusOK {
		return nil, &APIError{HTTPStatus: http.StatusOK, Status: env.Status, Message: env.Message}
	}

	creds := &Credentials{
		AccessToken: env.Data.Token,
		User:        env.Data.User,
	}

	if exp, ok := tokenx.DecodeExpiration(env.Data.Token); ok {
		creds.ExpiresAt = exp
	}

	// The refresh token only ever travels in a Set-Cookie header; scan each
	// one and take the first match.
	for _, raw := range resp.Header.Values("Set-Cookie") {
		if token := tokenx.ExtractRefreshToken(raw); token != "" {
			creds.RefreshToken = token
			creds.RefreshSetCookie = raw
			break
		}
	}

	return creds, nil
}
