package models

import (
	"time"

	"github.com/google/uuid"
)

// User - учётная запись пользователя API.
// Username всегда совпадает с Email; NormalizedEmail используется для поиска без учёта регистра.
type User struct {
	ID              uuid.UUID
	Email           string
	NormalizedEmail string
	Username        string
	FirstName       string
	LastName        string
	PasswordHash    string
	SecurityStamp   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Роли, заведённые миграцией.
const (
	RoleAdministrator = "Administrator"
	RoleUser          = "User"
)

// ValidationError — ошибка валидации при регистрации.
// Code — стабильный машиночитаемый код, Description — текст для клиента.
type ValidationError struct {
	Code        string
	Description string
}
