// storage задаёт контракты слоя хранения: пользователи, роли и claim'ы,
// refresh-секреты (user_tokens), страны и отели.
package storage

//go:generate mockgen -destination=../../mocks/mock_storage.go -package=mocks github.com/pribylovaa/hotel-listing-api/internal/storage Storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email/id).
	ErrAlreadyExists = errors.New("already exists")
	// ErrRoleNotFound — роль с таким именем не заведена.
	ErrRoleNotFound = errors.New("role not found")
	// ErrConflict — версия записи изменилась с момента чтения.
	ErrConflict = errors.New("conflict")
	// ErrForeignKey — ссылка на несуществующую запись (например, country_id отеля).
	ErrForeignKey = errors.New("foreign key violation")
)

// UserStorage выполняет операции над пользователями, их ролями и claim'ами.
type UserStorage interface {
	// SaveUser создаёт нового пользователя.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по нормализованному email.
	UserByEmail(ctx context.Context, normalizedEmail string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// AddUserToRole назначает роль; повторное назначение не считается ошибкой.
	AddUserToRole(ctx context.Context, userID uuid.UUID, role string) error
	// UserRoles возвращает имена ролей пользователя в алфавитном порядке.
	UserRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
	// UserClaims возвращает claim'ы пользователя в порядке добавления.
	UserClaims(ctx context.Context, userID uuid.UUID) ([]models.Claim, error)
	// AddUserClaim сохраняет claim пользователя.
	AddUserClaim(ctx context.Context, userID uuid.UUID, claim models.Claim) error
	// UpdateSecurityStamp заменяет штамп безопасности пользователя.
	UpdateSecurityStamp(ctx context.Context, userID uuid.UUID, stamp string) error
}

// UserTokenStorage хранит по одному секрету на тройку (user, provider, name).
type UserTokenStorage interface {
	// SetUserToken атомарно вставляет или заменяет секрет тройки.
	SetUserToken(ctx context.Context, token *models.UserToken) error
	// UserToken возвращает секрет тройки.
	UserToken(ctx context.Context, userID uuid.UUID, provider, name string) (*models.UserToken, error)
	// RemoveUserToken удаляет секрет тройки; отсутствие записи не ошибка.
	RemoveUserToken(ctx context.Context, userID uuid.UUID, provider, name string) error
	// DeleteExpiredUserTokens удаляет все просроченные секреты.
	DeleteExpiredUserTokens(ctx context.Context, now time.Time) error
}

// CountryStorage выполняет операции над странами.
type CountryStorage interface {
	CreateCountry(ctx context.Context, country *models.Country) (*models.Country, error)
	CountryByID(ctx context.Context, id int64) (*models.Country, error)
	// CountryDetails возвращает страну вместе с отелями.
	CountryDetails(ctx context.Context, id int64) (*models.CountryDetails, error)
	AllCountries(ctx context.Context) ([]models.Country, error)
	ListCountries(ctx context.Context, params models.QueryParameters) (*models.PagedResult[models.Country], error)
	// UpdateCountry обновляет запись, если её версия совпадает с country.Version.
	// Возвращает ErrNotFound при отсутствии записи и ErrConflict при расхождении версий.
	UpdateCountry(ctx context.Context, country *models.Country) (*models.Country, error)
	DeleteCountry(ctx context.Context, id int64) error
}

// HotelStorage выполняет операции над отелями.
type HotelStorage interface {
	CreateHotel(ctx context.Context, hotel *models.Hotel) (*models.Hotel, error)
	HotelByID(ctx context.Context, id int64) (*models.Hotel, error)
	AllHotels(ctx context.Context) ([]models.Hotel, error)
	ListHotels(ctx context.Context, params models.QueryParameters) (*models.PagedResult[models.Hotel], error)
	// UpdateHotel — см. UpdateCountry.
	UpdateHotel(ctx context.Context, hotel *models.Hotel) (*models.Hotel, error)
	DeleteHotel(ctx context.Context, id int64) error
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	UserStorage
	UserTokenStorage
	CountryStorage
	HotelStorage
	Ping(ctx context.Context) error
	Close()
}
