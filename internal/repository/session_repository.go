package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SujitD0/Student-Dashboard/internal/session"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Get fetches the session for a chat, nil when none is stored
func (r *SessionRepository) Get(ctx context.Context, telegramID int64) (*session.Session, error) {
	query := `
		SELECT telegram_id, user_id, username, access_token, refresh_token, role, created_at, updated_at
		FROM sessions
		WHERE telegram_id = $1
	`

	var s session.Session
	err := r.pool.QueryRow(ctx, query, telegramID).Scan(
		&s.TelegramID,
		&s.UserID,
		&s.Username,
		&s.AccessToken,
		&s.RefreshToken,
		&s.Role,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &s, nil
}

// Save upserts the session for a chat
func (r *SessionRepository) Save(ctx context.Context, s *session.Session) error {
	query := `
		INSERT INTO sessions (telegram_id, user_id, username, access_token, refresh_token, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (telegram_id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			username = EXCLUDED.username,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			role = EXCLUDED.role,
			updated_at = now()
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		s.TelegramID,
		s.UserID,
		s.Username,
		s.AccessToken,
		s.RefreshToken,
		s.Role,
	).Scan(&s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Delete removes the session for a chat
func (r *SessionRepository) Delete(ctx context.Context, telegramID int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE telegram_id = $1`, telegramID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
