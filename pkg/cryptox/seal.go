package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
)

var (
	sealKeyOnce sync.Once
	sealKey     []byte
	sealKeyErr  error
	sealKeyPath string = "" // Can be set via SetSealKeyPath before first use
)

// ErrSealOpen reports a sealed value that failed to decrypt, either because
// it was tampered with or because it was sealed under a different key.
var ErrSealOpen = errors.New("cryptox: cannot open sealed value")

// SetSealKeyPath configures where to load the cookie sealing key from.
// This must be called before any Seal/Open operations.
// If not set, the key will be loaded from the SESSION_SEAL_KEY environment variable.
func SetSealKeyPath(path string) {
	sealKeyPath = path
}

// loadSealKey derives a 32-byte XChaCha20-Poly1305 key from either:
// 1. File specified by sealKeyPath (if set)
// 2. SESSION_SEAL_KEY environment variable
// 3. Generates an ephemeral key for development (sessions won't survive restart)
func loadSealKey() ([]byte, error) {
	var keyMaterial []byte

	if sealKeyPath != "" {
		data, err := os.ReadFile(sealKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read seal key file: %w", err)
		}
		keyMaterial = data
	} else if envKey := os.Getenv("SESSION_SEAL_KEY"); envKey != "" {
		keyMaterial = []byte(envKey)
	} else {
		keyMaterial = make([]byte, 32)
		if _, err := rand.Read(keyMaterial); err != nil {
			return nil, fmt.Errorf("failed to generate ephemeral seal key: %w", err)
		}
	}

	// Derive a proper 32-byte key using SHA-256
	hash := sha256.Sum256(keyMaterial)
	return hash[:], nil
}

func getSealKey() ([]byte, error) {
	sealKeyOnce.Do(func() {
		sealKey, sealKeyErr = loadSealKey()
	})
	return sealKey, sealKeyErr
}

// Seal encrypts a small payload (for example a session ID) into a compact
// base64url string suitable for a cookie value. The output format is
// base64url([24-byte nonce][ciphertext][16-byte auth tag]).
func Seal(plaintext []byte) (string, error) {
	key, err := getSealKey()
	if err != nil {
		return "", fmt.Errorf("failed to get seal key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal. Tampered, truncated, or
// foreign-key values return ErrSealOpen.
func Open(value string) ([]byte, error) {
	key, err := getSealKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get seal key: %w", err)
	}

	sealed, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, ErrSealOpen
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	if len(sealed) < aead.NonceSize() {
		return nil, ErrSealOpen
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrSealOpen
	}

	return plaintext, nil
}
