package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pribylovaa/hotel-listing-api/internal/credentials"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/pkg/log"
	"github.com/pribylovaa/hotel-listing-api/internal/pkg/redact"
)

// RegisterInput — данные для регистрации.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register создаёт пользователя (username = email) и назначает ему роль User.
// Нарушения правил возвращаются списком; пустой список и nil — успех.
func (s *Service) Register(ctx context.Context, in RegisterInput) ([]models.ValidationError, error) {
	const op = "service.auth.Register"

	lg := log.From(ctx)

	user := &models.User{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}

	verrs, err := s.creds.Create(ctx, user, in.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(verrs) > 0 {
		lg.Info("register_rejected",
			slog.String("email", redact.Email(in.Email)),
			slog.Int("errors", len(verrs)),
		)
		return verrs, nil
	}

	if err := s.creds.AssignRole(ctx, user.ID, models.RoleUser); err != nil {
		lg.Error("register_assign_role_failed",
			slog.String("op", op),
			log.UserID(user.ID.String()),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("user_registered", log.UserID(user.ID.String()))

	return nil, nil
}

// Login проверяет email и пароль и выпускает access-токен вместе с новым refresh-секретом.
// При любой неудаче refresh-секрет не выпускается.
func (s *Service) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	const op = "service.auth.Login"

	lg := log.From(ctx)
	lg.Debug("login_lookup", slog.String("email", redact.Email(email)))

	user, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, credentials.ErrNotFound) {
			lg.Warn("login_unknown_user", slog.String("email", redact.Email(email)))
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !s.creds.CheckPassword(user, password) {
		lg.Warn("login_bad_password", log.UserID(user.ID.String()))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	resp, err := s.issue(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("login_succeeded", log.UserID(user.ID.String()))

	return resp, nil
}

// VerifyRefreshToken обменивает (access-токен, id пользователя, refresh-секрет) на новую пару.
//
// Access-токен только декодируется: подпись и срок не проверяются, он нужен лишь
// чтобы узнать email. Доверие даёт совпадение refresh-секрета.
// Несовпадение секрета считается признаком компрометации: штамп безопасности
// пользователя меняется, и все ранее выданные секреты перестают действовать.
// Снаружи все отказы одинаковы: ErrInvalidToken.
func (s *Service) VerifyRefreshToken(ctx context.Context, req models.AuthResponse) (*models.AuthResponse, error) {
	const op = "service.auth.VerifyRefreshToken"

	lg := log.From(ctx)

	principal, err := s.signer.Decode(req.Token)
	if err != nil || principal.Email == "" {
		lg.Warn("refresh_token_undecodable")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claimedID, err := uuid.Parse(req.UserID)
	if err != nil {
		lg.Warn("refresh_bad_user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	user, err := s.creds.FindByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, credentials.ErrNotFound) {
			lg.Warn("refresh_unknown_user", slog.String("email", redact.Email(principal.Email)))
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Расхождение личности: штамп не трогаем, это не доказательство утечки секрета.
	if user.ID != claimedID || (principal.UserID != "" && principal.UserID != user.ID.String()) {
		lg.Warn("refresh_identity_mismatch", log.UserID(user.ID.String()))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	ok, err := s.refresh.Verify(ctx, user, models.LoginProvider, models.RefreshTokenName, req.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !ok {
		lg.Warn("refresh_secret_mismatch", log.UserID(user.ID.String()))

		if err := s.creds.UpdateSecurityStamp(ctx, user); err != nil {
			lg.Error("security_stamp_update_failed",
				slog.String("op", op),
				log.UserID(user.ID.String()),
				slog.String("err", err.Error()),
			)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	resp, err := s.issue(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("refresh_rotated", log.UserID(user.ID.String()))

	return resp, nil
}

// issue выпускает access-токен с текущими ролями и claim'ами и ротирует refresh-секрет.
func (s *Service) issue(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	const op = "service.auth.issue"

	roles, err := s.creds.Roles(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	claims, err := s.creds.Claims(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	accessToken, _, err := s.signer.Issue(user, roles, claims)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	secret, err := s.refresh.Rotate(ctx, user, models.LoginProvider, models.RefreshTokenName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.AuthResponse{
		Token:        accessToken,
		UserID:       user.ID.String(),
		RefreshToken: secret,
	}, nil
}
