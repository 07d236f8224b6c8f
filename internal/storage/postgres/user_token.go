package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
)

// SetUserToken вставляет или заменяет секрет тройки (user_id, login_provider, name)
// одним UPSERT'ом: читатель видит либо старое, либо новое значение целиком.
func (s *Storage) SetUserToken(ctx context.Context, token *models.UserToken) error {
	const op = "storage.postgres.SetUserToken"

	query := `
		INSERT INTO user_tokens(user_id, login_provider, name, value_hash, security_stamp, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, login_provider, name) DO UPDATE
		SET value_hash = EXCLUDED.value_hash,
			security_stamp = EXCLUDED.security_stamp,
			created_at = EXCLUDED.created_at,
			expires_at = EXCLUDED.expires_at
	`

	_, err := s.db.Exec(ctx, query,
		token.UserID,
		token.LoginProvider,
		token.Name,
		token.ValueHash,
		token.SecurityStamp,
		token.CreatedAt,
		token.ExpiresAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UserToken возвращает секрет тройки.
func (s *Storage) UserToken(ctx context.Context, userID uuid.UUID, provider, name string) (*models.UserToken, error) {
	const op = "storage.postgres.UserToken"

	query := `
		SELECT user_id, login_provider, name, value_hash, security_stamp, created_at, expires_at
		FROM user_tokens
		WHERE user_id = $1 AND login_provider = $2 AND name = $3
	`

	var token models.UserToken
	err := s.db.QueryRow(ctx, query, userID, provider, name).Scan(
		&token.UserID,
		&token.LoginProvider,
		&token.Name,
		&token.ValueHash,
		&token.SecurityStamp,
		&token.CreatedAt,
		&token.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &token, nil
}

// RemoveUserToken удаляет секрет тройки. Идемпотентно.
func (s *Storage) RemoveUserToken(ctx context.Context, userID uuid.UUID, provider, name string) error {
	const op = "storage.postgres.RemoveUserToken"

	query := `
		DELETE FROM user_tokens
		WHERE user_id = $1 AND login_provider = $2 AND name = $3
	`

	if _, err := s.db.Exec(ctx, query, userID, provider, name); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteExpiredUserTokens удаляет все просроченные секреты.
func (s *Storage) DeleteExpiredUserTokens(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.DeleteExpiredUserTokens"

	query := `
		DELETE FROM user_tokens
		WHERE expires_at <= $1
	`

	if _, err := s.db.Exec(ctx, query, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
