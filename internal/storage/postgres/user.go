package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
)

// userColumns — единый список колонок users для SELECT, порядок совпадает со scanUser.
const userColumns = `
id, email, normalized_email, username, first_name, last_name, password_hash, security_stamp, created_at, updated_at
`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User

	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.NormalizedEmail,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.SecurityStamp,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &user, nil
}

// SaveUser создает нового пользователя в БД.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.SaveUser"

	query := `
		INSERT INTO users(id, email, normalized_email, username, first_name, last_name,
			password_hash, security_stamp, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.NormalizedEmail,
		user.Username,
		user.FirstName,
		user.LastName,
		user.PasswordHash,
		user.SecurityStamp,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UserByEmail находит пользователя по нормализованному email.
func (s *Storage) UserByEmail(ctx context.Context, normalizedEmail string) (*models.User, error) {
	const op = "storage.postgres.UserByEmail"

	query := `SELECT ` + userColumns + ` FROM users WHERE normalized_email = $1`

	user, err := scanUser(s.db.QueryRow(ctx, query, normalizedEmail))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UserByID находит пользователя по ID.
func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.postgres.UserByID"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// AddUserToRole назначает пользователю роль по имени.
// Ошибки: storage.ErrRoleNotFound, если роли нет; storage.ErrNotFound, если нет пользователя.
func (s *Storage) AddUserToRole(ctx context.Context, userID uuid.UUID, role string) error {
	const op = "storage.postgres.AddUserToRole"

	query := `
		INSERT INTO user_roles(user_id, role_id)
		SELECT $1, id FROM roles WHERE name = $2
		ON CONFLICT DO NOTHING
		RETURNING role_id
	`

	var roleID uuid.UUID
	err := s.db.QueryRow(ctx, query, userID, role).Scan(&roleID)
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, err)
	}

	// Ни одной вставленной строки: либо роль уже назначена, либо её нет.
	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM roles WHERE name = $1)`, role).Scan(&exists); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return fmt.Errorf("%s: %w", op, storage.ErrRoleNotFound)
	}

	return nil
}

// UserRoles возвращает имена ролей пользователя.
func (s *Storage) UserRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const op = "storage.postgres.UserRoles"

	query := `
		SELECT r.name
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	roles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return roles, nil
}

// UserClaims возвращает claim'ы пользователя в порядке добавления.
func (s *Storage) UserClaims(ctx context.Context, userID uuid.UUID) ([]models.Claim, error) {
	const op = "storage.postgres.UserClaims"

	query := `
		SELECT claim_type, claim_value
		FROM user_claims
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var claims []models.Claim
	for rows.Next() {
		var typ, value string
		if err := rows.Scan(&typ, &value); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		claims = append(claims, models.NewClaim(typ, value))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return claims, nil
}

// AddUserClaim сохраняет claim пользователя.
func (s *Storage) AddUserClaim(ctx context.Context, userID uuid.UUID, claim models.Claim) error {
	const op = "storage.postgres.AddUserClaim"

	query := `
		INSERT INTO user_claims(user_id, claim_type, claim_value)
		VALUES ($1, $2, $3)
	`

	_, err := s.db.Exec(ctx, query, userID, claim.TypeName(), claim.Value)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateSecurityStamp заменяет штамп безопасности пользователя.
func (s *Storage) UpdateSecurityStamp(ctx context.Context, userID uuid.UUID, stamp string) error {
	const op = "storage.postgres.UpdateSecurityStamp"

	query := `
		UPDATE users
		SET security_stamp = $2, updated_at = now()
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query, userID, stamp)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
