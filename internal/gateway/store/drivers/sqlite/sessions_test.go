package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trippath/innkeeper/internal/gateway/domain"
	"github.com/trippath/innkeeper/internal/gateway/store"
	"github.com/trippath/innkeeper/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "gateway.db")
	st, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func testSession(expiresAt time.Time) domain.Session {
	return domain.Session{
		ID:           idx.New().String(),
		UserID:       "user-1",
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
		User: domain.User{
			ID:          "user-1",
			Username:    "alice",
			DisplayName: "Alice",
			Role:        "guest",
			Permissions: []string{"bookings:write"},
		},
		ExpiresAt: expiresAt,
	}
}

func TestSessionsRoundTrip(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	want := testSession(time.Now().Add(24 * time.Hour))
	require.NoError(t, st.Sessions().CreateSession(ctx, want))

	got, err := st.Sessions().GetSessionByID(ctx, want.ID)
	require.NoError(t, err)

	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.UserID, got.UserID)
	require.Equal(t, want.AccessToken, got.AccessToken)
	require.Equal(t, want.RefreshToken, got.RefreshToken)
	require.Empty(t, got.ErrorTag)
	require.Equal(t, want.User, got.User)
	require.WithinDuration(t, want.ExpiresAt, got.ExpiresAt, time.Second)
	require.False(t, got.CreatedAt.IsZero())
}

func TestSessionsGetMissing(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	_, err := st.Sessions().GetSessionByID(context.Background(), "nope")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessionsUpdate(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	s := testSession(time.Now().Add(24 * time.Hour))
	require.NoError(t, st.Sessions().CreateSession(ctx, s))

	s.AccessToken = "at-2"
	s.RefreshToken = "rt-2"
	s.ErrorTag = domain.TagRefreshTokenUnauthorized
	s.User.DisplayName = "Alice B"
	require.NoError(t, st.Sessions().UpdateSession(ctx, s))

	got, err := st.Sessions().GetSessionByID(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, "at-2", got.AccessToken)
	require.Equal(t, "rt-2", got.RefreshToken)
	require.Equal(t, domain.TagRefreshTokenUnauthorized, got.ErrorTag)
	require.True(t, got.Failed())
	require.Equal(t, "Alice B", got.User.DisplayName)
}

func TestSessionsUpdateMissing(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	err := st.Sessions().UpdateSession(context.Background(), testSession(time.Now().Add(time.Hour)))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessionsDeleteIdempotent(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	s := testSession(time.Now().Add(24 * time.Hour))
	require.NoError(t, st.Sessions().CreateSession(ctx, s))

	require.NoError(t, st.Sessions().DeleteSession(ctx, s.ID))
	_, err := st.Sessions().GetSessionByID(ctx, s.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Deleting again is not an error.
	require.NoError(t, st.Sessions().DeleteSession(ctx, s.ID))
}

func TestSessionsDeleteUserSessions(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	mine := testSession(time.Now().Add(24 * time.Hour))
	other := testSession(time.Now().Add(24 * time.Hour))
	other.UserID = "user-2"

	require.NoError(t, st.Sessions().CreateSession(ctx, mine))
	require.NoError(t, st.Sessions().CreateSession(ctx, other))

	require.NoError(t, st.Sessions().DeleteUserSessions(ctx, "user-1"))

	_, err := st.Sessions().GetSessionByID(ctx, mine.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Sessions().GetSessionByID(ctx, other.ID)
	require.NoError(t, err)
}

func TestSessionsDeleteExpired(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	stale := testSession(time.Now().Add(-time.Minute))
	live := testSession(time.Now().Add(24 * time.Hour))

	require.NoError(t, st.Sessions().CreateSession(ctx, stale))
	require.NoError(t, st.Sessions().CreateSession(ctx, live))

	require.NoError(t, st.Sessions().DeleteExpiredSessions(ctx))

	_, err := st.Sessions().GetSessionByID(ctx, stale.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Sessions().GetSessionByID(ctx, live.ID)
	require.NoError(t, err)
}
