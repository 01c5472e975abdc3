// Package tokenx provides local, non-verifying token inspection helpers for
// the gateway. Signature verification is the remote authentication service's
// responsibility; decoding here exists only to avoid pointless upstream calls
// with tokens we already know are expired. The upstream 401 response remains
// the authoritative expiry signal.
package tokenx

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RefreshCookieName is the cookie the remote authentication service uses to
// carry the refresh token.
const RefreshCookieName = "refresh_token"

// DecodeExpiration extracts the expiry claim from an access token without
// validating its signature. Returns ok=false for anything malformed: wrong
// part count, bad base64, bad JSON, or a missing exp claim. It never panics
// and never returns an error to the caller.
func DecodeExpiration(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// ExtractRefreshToken scans a raw Set-Cookie header value for a
// refresh_token assignment and returns its value up to the next ';'.
// Returns "" when the header carries no refresh token. When a combined
// header contains multiple assignments the first one wins.
func ExtractRefreshToken(setCookie string) string {
	const prefix = RefreshCookieName + "="

	rest := setCookie
	for {
		idx := strings.Index(rest, prefix)
		if idx < 0 {
			return ""
		}

		// Require an attribute boundary before the match so a cookie named
		// e.g. "old_refresh_token" is not mistaken for the real one.
		if idx > 0 {
			switch rest[idx-1] {
			case ' ', ';', ',':
			default:
				rest = rest[idx+len(prefix):]
				continue
			}
		}

		value := rest[idx+len(prefix):]
		if end := strings.IndexByte(value, ';'); end >= 0 {
			value = value[:end]
		}
		return strings.TrimSpace(value)
	}
}
