package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/trippath/innkeeper/internal/gateway/domain"
)

type sessionsRepo struct {
	db *sql.DB
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	userJSON, err := json.Marshal(s.User)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, access_token, refresh_token, error_tag, user_json, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.AccessToken, s.RefreshToken, s.ErrorTag, string(userJSON), s.ExpiresAt.UTC(),
	)
	return err
}

func (r *sessionsRepo) GetSessionByID(ctx context.Context, id string) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, access_token, refresh_token, error_tag, user_json, expires_at, created_at, updated_at
		FROM sessions WHERE id = ?`, id)

	var (
		s        domain.Session
		userJSON string
	)
	err := row.Scan(
		&s.ID, &s.UserID, &s.AccessToken, &s.RefreshToken, &s.ErrorTag,
		&userJSON, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}

	if err := json.Unmarshal([]byte(userJSON), &s.User); err != nil {
		return domain.Session{}, err
	}
	return s, nil
}

// UpdateSession rewrites the mutable fields in one statement so a token
// rotation is never observable half-applied.
func (r *sessionsRepo) UpdateSession(ctx context.Context, s domain.Session) error {
	userJSON, err := json.Marshal(s.User)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE sessions
		SET access_token = ?, refresh_token = ?, error_tag = ?, user_json = ?,
		    expires_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		s.AccessToken, s.RefreshToken, s.ErrorTag, string(userJSON), s.ExpiresAt.UTC(), s.ID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

func (r *sessionsRepo) DeleteUserSessions(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
