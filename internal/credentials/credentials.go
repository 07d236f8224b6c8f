// credentials — хранилище учётных данных поверх storage.UserStorage:
// нормализация email, политика паролей, bcrypt-хэши, роли, claim'ы и штамп безопасности.
package credentials

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
)

// Коды ошибок валидации регистрации.
const (
	CodeInvalidEmail                    = "InvalidEmail"
	CodeDuplicateEmail                  = "DuplicateEmail"
	CodePasswordTooShort                = "PasswordTooShort"
	CodePasswordTooLong                 = "PasswordTooLong"
	CodePasswordRequiresDigit           = "PasswordRequiresDigit"
	CodePasswordRequiresLower           = "PasswordRequiresLower"
	CodePasswordRequiresUpper           = "PasswordRequiresUpper"
	CodePasswordRequiresNonAlphanumeric = "PasswordRequiresNonAlphanumeric"
	CodeInvalidName                     = "InvalidName"
)

const maxNameLength = 100

// maxPasswordBytes — предел bcrypt: более длинный пароль GenerateFromPassword отвергает.
const maxPasswordBytes = 72

var (
	// ErrNotFound — пользователь не найден.
	ErrNotFound = errors.New("user not found")
	// ErrRoleNotFound — роль не заведена.
	ErrRoleNotFound = errors.New("role not found")
)

// Policy — требования к паролю.
type Policy struct {
	MinLength          int
	RequireDigit       bool
	RequireLowercase   bool
	RequireUppercase   bool
	RequireNonAlphanum bool
}

// DefaultPolicy: не короче 6 символов, хотя бы одна цифра и одна строчная буква.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:        6,
		RequireDigit:     true,
		RequireLowercase: true,
	}
}

// Store работает с учётными записями. Безопасен для конкурентного использования.
type Store struct {
	storage storage.UserStorage
	policy  Policy
	cost    int
	now     func() time.Time
}

// New создаёт Store. cost <= 0 означает bcrypt.DefaultCost.
func New(st storage.UserStorage, policy Policy, cost int) *Store {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}

	return &Store{
		storage: st,
		policy:  policy,
		cost:    cost,
		now:     time.Now,
	}
}

// Normalize приводит email к форме для поиска: обрезает пробелы и выполняет Unicode case folding.
func Normalize(email string) string {
	// cases.Caser хранит состояние, поэтому создаётся на каждый вызов.
	return cases.Fold().String(strings.TrimSpace(email))
}

// NewSecurityStamp возвращает случайный штамп безопасности.
func NewSecurityStamp() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b), nil
}

// FindByEmail ищет пользователя по email без учёта регистра.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "credentials.FindByEmail"

	user, err := s.storage.UserByEmail(ctx, Normalize(email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return user, nil
}

// FindByID ищет пользователя по id.
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "credentials.FindByID"

	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return user, nil
}

// CheckPassword сравнивает пароль с bcrypt-хэшем пользователя.
func (s *Store) CheckPassword(user *models.User, password string) bool {
	if user == nil || user.PasswordHash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// Create валидирует и сохраняет нового пользователя. Username всегда равен email.
// Нарушения правил возвращаются списком (пользователь не создаётся),
// ошибка — только для сбоев инфраструктуры.
// При успехе в user заполняются ID, нормализованный email, хэш пароля, штамп и даты.
func (s *Store) Create(ctx context.Context, user *models.User, password string) ([]models.ValidationError, error) {
	const op = "credentials.Create"

	user.Email = strings.TrimSpace(user.Email)
	user.Username = user.Email
	user.NormalizedEmail = Normalize(user.Email)

	verrs := validateEmail(user.Email)
	verrs = append(verrs, validateName(user.FirstName)...)
	verrs = append(verrs, validateName(user.LastName)...)
	verrs = append(verrs, s.policy.Validate(password)...)

	if !hasCode(verrs, CodeInvalidEmail) {
		_, err := s.storage.UserByEmail(ctx, user.NormalizedEmail)
		switch {
		case err == nil:
			verrs = append(verrs, duplicateEmail(user.Email))
		case !errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if len(verrs) > 0 {
		return verrs, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stamp, err := NewSecurityStamp()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	user.ID = uuid.New()
	user.PasswordHash = string(hash)
	user.SecurityStamp = stamp
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.storage.SaveUser(ctx, user); err != nil {
		// Гонка двух регистраций с одним email: вторая упирается в уникальный индекс.
		if errors.Is(err, storage.ErrAlreadyExists) {
			return []models.ValidationError{duplicateEmail(user.Email)}, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return nil, nil
}

// AssignRole назначает пользователю роль.
func (s *Store) AssignRole(ctx context.Context, userID uuid.UUID, role string) error {
	const op = "credentials.AssignRole"

	if err := s.storage.AddUserToRole(ctx, userID, role); err != nil {
		return fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return nil
}

// Roles возвращает роли пользователя.
func (s *Store) Roles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const op = "credentials.Roles"

	roles, err := s.storage.UserRoles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return roles, nil
}

// Claims возвращает сохранённые claim'ы пользователя.
func (s *Store) Claims(ctx context.Context, userID uuid.UUID) ([]models.Claim, error) {
	const op = "credentials.Claims"

	claims, err := s.storage.UserClaims(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return claims, nil
}

// AddClaim сохраняет claim пользователя.
func (s *Store) AddClaim(ctx context.Context, userID uuid.UUID, claim models.Claim) error {
	const op = "credentials.AddClaim"

	if err := s.storage.AddUserClaim(ctx, userID, claim); err != nil {
		return fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return nil
}

// UpdateSecurityStamp выдаёт пользователю новый штамп безопасности.
// Все refresh-секреты, выпущенные под старым штампом, перестают проходить проверку.
func (s *Store) UpdateSecurityStamp(ctx context.Context, user *models.User) error {
	const op = "credentials.UpdateSecurityStamp"

	stamp, err := NewSecurityStamp()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdateSecurityStamp(ctx, user.ID, stamp); err != nil {
		return fmt.Errorf("%s: %w", op, mapErr(err))
	}

	user.SecurityStamp = stamp

	return nil
}

// Validate проверяет пароль по политике и возвращает все нарушения.
func (p Policy) Validate(password string) []models.ValidationError {
	var verrs []models.ValidationError

	if utf8.RuneCountInString(password) < p.MinLength {
		verrs = append(verrs, models.ValidationError{
			Code:        CodePasswordTooShort,
			Description: fmt.Sprintf("Passwords must be at least %d characters.", p.MinLength),
		})
	}

	if len(password) > maxPasswordBytes {
		verrs = append(verrs, models.ValidationError{
			Code:        CodePasswordTooLong,
			Description: fmt.Sprintf("Passwords must be at most %d bytes.", maxPasswordBytes),
		})
	}

	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasOther = true
		}
	}

	if p.RequireNonAlphanum && !hasOther {
		verrs = append(verrs, models.ValidationError{
			Code:        CodePasswordRequiresNonAlphanumeric,
			Description: "Passwords must have at least one non alphanumeric character.",
		})
	}

	if p.RequireDigit && !hasDigit {
		verrs = append(verrs, models.ValidationError{
			Code:        CodePasswordRequiresDigit,
			Description: "Passwords must have at least one digit ('0'-'9').",
		})
	}

	if p.RequireLowercase && !hasLower {
		verrs = append(verrs, models.ValidationError{
			Code:        CodePasswordRequiresLower,
			Description: "Passwords must have at least one lowercase ('a'-'z').",
		})
	}

	if p.RequireUppercase && !hasUpper {
		verrs = append(verrs, models.ValidationError{
			Code:        CodePasswordRequiresUpper,
			Description: "Passwords must have at least one uppercase ('A'-'Z').",
		})
	}

	return verrs
}

func validateEmail(email string) []models.ValidationError {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []models.ValidationError{{
			Code:        CodeInvalidEmail,
			Description: fmt.Sprintf("Email '%s' is invalid.", email),
		}}
	}

	return nil
}

func validateName(name string) []models.ValidationError {
	if utf8.RuneCountInString(name) > maxNameLength || strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return []models.ValidationError{{
			Code:        CodeInvalidName,
			Description: fmt.Sprintf("Name must be at most %d printable characters.", maxNameLength),
		}}
	}

	return nil
}

func duplicateEmail(email string) models.ValidationError {
	return models.ValidationError{
		Code:        CodeDuplicateEmail,
		Description: fmt.Sprintf("Email '%s' is already taken.", email),
	}
}

func hasCode(verrs []models.ValidationError, code string) bool {
	for _, v := range verrs {
		if v.Code == code {
			return true
		}
	}

	return false
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrRoleNotFound):
		return ErrRoleNotFound
	default:
		return err
	}
}
