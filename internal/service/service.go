// service содержит бизнес-логику Hotel Listing API:
// регистрацию и вход пользователей, выпуск access-токенов и ротацию refresh-секретов,
// а также CRUD стран и отелей.
//
// Основные аспекты:
//   - Service не хранит состояние запроса: пользователь и прочие данные передаются
//     явно через параметры, поэтому экземпляр безопасен для конкурентного использования.
//   - Исходы аутентификации возвращаются sentinel-ошибками, транспорт маппит их на HTTP-коды.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/hotel-listing-api/internal/credentials"
	"github.com/pribylovaa/hotel-listing-api/internal/refresh"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
	"github.com/pribylovaa/hotel-listing-api/internal/token"
)

var (
	// ErrInvalidCredentials — пользователь не найден или пароль неверен. HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — refresh не прошёл: токен не разбирается, пользователь не найден,
	// id не совпадает или секрет неверен. Причины намеренно не различаются. HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotFound — запись каталога не найдена. HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict — запись изменилась с момента чтения (версия не совпала). HTTP 409.
	ErrConflict = errors.New("conflict")

	// ErrInvalidArgument — некорректные входные данные. HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Options — параметры Service.
type Options struct {
	Password   credentials.Policy
	RefreshTTL time.Duration
	// BcryptCost <= 0 означает bcrypt.DefaultCost.
	BcryptCost int
}

// Service описывает бизнес-логику API.
type Service struct {
	storage storage.Storage
	creds   *credentials.Store
	signer  *token.Signer
	refresh *refresh.Store
}

// New создаёт новый экземпляр Service.
func New(st storage.Storage, signer *token.Signer, opts Options) *Service {
	return &Service{
		storage: st,
		creds:   credentials.New(st, opts.Password, opts.BcryptCost),
		signer:  signer,
		refresh: refresh.New(st, opts.RefreshTTL),
	}
}

// Ping проверяет доступность хранилища.
func (s *Service) Ping(ctx context.Context) error {
	const op = "service.Ping"

	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// PurgeExpiredRefreshTokens удаляет просроченные refresh-секреты.
func (s *Service) PurgeExpiredRefreshTokens(ctx context.Context) error {
	const op = "service.PurgeExpiredRefreshTokens"

	if err := s.refresh.PurgeExpired(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// mapStorageErr переводит ошибки хранилища каталога в ошибки сервиса.
func mapStorageErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrConflict):
		return ErrConflict
	case errors.Is(err, storage.ErrForeignKey):
		return ErrInvalidArgument
	default:
		return err
	}
}
