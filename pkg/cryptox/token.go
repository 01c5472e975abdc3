package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Token sizes in bytes before encoding.
const (
	// TokenSize128 is 128 bits of entropy (22 chars base64url).
	TokenSize128 = 16
	// TokenSize256 is 256 bits of entropy (43 chars base64url). Session row
	// IDs use this.
	TokenSize256 = 32
)

// GenerateToken returns a random base64url string (no padding) carrying
// size bytes of entropy.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
