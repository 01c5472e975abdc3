package httpx

import (
	"net/http"
	"time"
)

// CookieConfig carries the attributes shared by every cookie the gateway
// issues. Secure should be true everywhere except local development.
type CookieConfig struct {
	Domain string
	Secure bool
}

// SetSessionCookie writes an HTTP-only cookie scoped to the whole site.
// maxAge <= 0 produces a session-lifetime cookie.
func (c CookieConfig) SetSessionCookie(w http.ResponseWriter, name, value string, maxAge time.Duration) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		cookie.MaxAge = int(maxAge.Seconds())
	}
	http.SetCookie(w, cookie)
}

// ClearCookie expires a cookie immediately (max-age -1).
func (c CookieConfig) ClearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// ForwardSetCookie copies a raw Set-Cookie header from an upstream response
// through to the client untouched. The upstream service controls the
// cookie's attributes and lifetime.
func ForwardSetCookie(w http.ResponseWriter, raw string) {
	if raw == "" {
		return
	}
	w.Header().Add("Set-Cookie", raw)
}
