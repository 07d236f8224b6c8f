package models

import (
	"time"

	"github.com/google/uuid"
)

// Провайдер и назначение refresh-токена в таблице user_tokens.
const (
	LoginProvider    = "HotelListingApi"
	RefreshTokenName = "RefreshToken"
)

// UserToken — единственный активный секрет для тройки (пользователь, провайдер, назначение).
// Хранится только хэш секрета; SecurityStamp фиксирует штамп пользователя на момент выпуска.
type UserToken struct {
	UserID        uuid.UUID
	LoginProvider string
	Name          string
	ValueHash     string
	SecurityStamp string
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

// AuthResponse — ответ на вход/обновление: access-токен, id пользователя и текущий refresh-секрет.
type AuthResponse struct {
	Token        string
	UserID       string
	RefreshToken string
}
