// refresh хранит по одному ротируемому refresh-секрету на тройку
// (пользователь, провайдер, назначение). В БД лежит только sha256-хэш секрета
// вместе со штампом безопасности пользователя на момент выпуска.
package refresh

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/pkg/log"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
)

const secretSize = 32

// Store — хранилище refresh-секретов. Безопасен для конкурентного использования.
type Store struct {
	storage storage.UserTokenStorage
	ttl     time.Duration
	now     func() time.Time
	locks   keyedMutex
}

// New создаёт Store. ttl — срок жизни секрета с момента сохранения.
func New(st storage.UserTokenStorage, ttl time.Duration) *Store {
	return &Store{
		storage: st,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Remove удаляет секрет тройки. Отсутствие секрета не ошибка.
func (s *Store) Remove(ctx context.Context, user *models.User, provider, purpose string) error {
	const op = "refresh.Remove"

	if err := s.storage.RemoveUserToken(ctx, user.ID, provider, purpose); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Generate возвращает новый случайный непрозрачный секрет (32 байта, base64url).
// Секрет нигде не сохраняется.
func (s *Store) Generate(ctx context.Context, user *models.User, provider, purpose string) (string, error) {
	const op = "refresh.Generate"

	b := make([]byte, secretSize)
	if _, err := rand.Read(b); err != nil {
		log.From(ctx).Error("refresh_rand_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Debug("refresh_secret_generated",
		log.UserID(user.ID.String()),
		slog.String("provider", provider),
		slog.String("purpose", purpose),
	)

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Store сохраняет секрет одной атомарной операцией, заменяя предыдущий.
// Секрет привязывается к текущему штампу безопасности пользователя.
func (s *Store) Store(ctx context.Context, user *models.User, provider, purpose, secret string) error {
	const op = "refresh.Store"

	now := s.now().UTC()
	token := &models.UserToken{
		UserID:        user.ID,
		LoginProvider: provider,
		Name:          purpose,
		ValueHash:     hashSecret(secret),
		SecurityStamp: user.SecurityStamp,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
	}

	if err := s.storage.SetUserToken(ctx, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Verify сравнивает кандидата с сохранённым секретом за постоянное время.
// false — секрета нет, он просрочен, не совпадает или выпущен под прежним штампом.
// Ошибка — только сбой хранилища.
func (s *Store) Verify(ctx context.Context, user *models.User, provider, purpose, candidate string) (bool, error) {
	const op = "refresh.Verify"

	lg := log.From(ctx)

	token, err := s.storage.UserToken(ctx, user.ID, provider, purpose)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Debug("refresh_secret_absent", log.UserID(user.ID.String()))
			return false, nil
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	if !s.now().Before(token.ExpiresAt) {
		lg.Debug("refresh_secret_expired", log.UserID(user.ID.String()))
		return false, nil
	}

	hashOK := subtle.ConstantTimeCompare([]byte(hashSecret(candidate)), []byte(token.ValueHash)) == 1
	stampOK := subtle.ConstantTimeCompare([]byte(user.SecurityStamp), []byte(token.SecurityStamp)) == 1

	return hashOK && stampOK, nil
}

// Rotate выполняет Remove → Generate → Store последовательно.
// В пределах процесса ротации одной тройки сериализуются.
func (s *Store) Rotate(ctx context.Context, user *models.User, provider, purpose string) (string, error) {
	const op = "refresh.Rotate"

	unlock := s.locks.Lock(triple{userID: user.ID.String(), provider: provider, purpose: purpose})
	defer unlock()

	if err := s.Remove(ctx, user, provider, purpose); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	secret, err := s.Generate(ctx, user, provider, purpose)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.Store(ctx, user, provider, purpose, secret); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return secret, nil
}

// PurgeExpired удаляет все просроченные секреты.
func (s *Store) PurgeExpired(ctx context.Context) error {
	const op = "refresh.PurgeExpired"

	if err := s.storage.DeleteExpiredUserTokens(ctx, s.now().UTC()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func hashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
