package store

import (
	"context"
	"errors"

	"github.com/trippath/innkeeper/internal/gateway/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Sessions() Sessions

	ApplyMigrations() error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Sessions interface {
	// CreateSession inserts a new session row (id is a random token minted
	// by the service at login).
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByID returns a session by id.
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)

	// UpdateSession replaces the mutable fields (tokens, error tag, user,
	// expiry) and bumps updated_at. The write is a single statement so a
	// refresh rotation can never be observed half-applied.
	UpdateSession(ctx context.Context, s domain.Session) error

	// DeleteSession removes a session row. Deleting a missing row is not an
	// error; logout must be idempotent.
	DeleteSession(ctx context.Context, id string) error

	// DeleteUserSessions removes every session belonging to a user.
	DeleteUserSessions(ctx context.Context, userID string) error

	// DeleteExpiredSessions removes rows past their expiry.
	DeleteExpiredSessions(ctx context.Context) error
}
