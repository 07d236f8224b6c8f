// memory — реализация storage.Storage в памяти процесса.
// Используется в тестах и для локального запуска без Postgres (DATABASE_URL=memory://).
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
)

type tokenKey struct {
	userID   uuid.UUID
	provider string
	name     string
}

// Storage хранит все данные в map'ах под одним RWMutex.
type Storage struct {
	mu sync.RWMutex

	users      map[uuid.UUID]models.User
	byEmail    map[string]uuid.UUID
	roles      map[string]struct{}
	userRoles  map[uuid.UUID]map[string]struct{}
	userClaims map[uuid.UUID][]models.Claim
	tokens     map[tokenKey]models.UserToken

	countries     map[int64]models.Country
	hotels        map[int64]models.Hotel
	nextCountryID int64
	nextHotelID   int64
}

var _ storage.Storage = (*Storage)(nil)

// New создаёт пустое хранилище с ролями Administrator и User.
func New() *Storage {
	return &Storage{
		users:      make(map[uuid.UUID]models.User),
		byEmail:    make(map[string]uuid.UUID),
		roles:      map[string]struct{}{models.RoleAdministrator: {}, models.RoleUser: {}},
		userRoles:  make(map[uuid.UUID]map[string]struct{}),
		userClaims: make(map[uuid.UUID][]models.Claim),
		tokens:     make(map[tokenKey]models.UserToken),
		countries:  make(map[int64]models.Country),
		hotels:     make(map[int64]models.Hotel),
	}
}

// NewSeeded создаёт хранилище с теми же странами и отелями, что заводит миграция.
func NewSeeded() *Storage {
	s := New()
	ctx := context.Background()

	for _, c := range []models.Country{
		{Name: "Jamaica", ShortName: "JM"},
		{Name: "Bahamas", ShortName: "BS"},
		{Name: "Cayman Island", ShortName: "CI"},
	} {
		c := c
		_, _ = s.CreateCountry(ctx, &c)
	}

	rating := func(v float64) *float64 { return &v }
	for _, h := range []models.Hotel{
		{Name: "Sandals Resort and Spa", Address: "Negril", Rating: rating(4.5), CountryID: 1},
		{Name: "Comfort Suites", Address: "George Town", Rating: rating(4.3), CountryID: 3},
		{Name: "Grand Palldium", Address: "Nassua", Rating: rating(4), CountryID: 2},
	} {
		h := h
		_, _ = s.CreateHotel(ctx, &h)
	}

	return s
}

func (s *Storage) Ping(context.Context) error { return nil }

func (s *Storage) Close() {}

func (s *Storage) SaveUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return storage.ErrAlreadyExists
	}

	if _, ok := s.byEmail[user.NormalizedEmail]; ok {
		return storage.ErrAlreadyExists
	}

	s.users[user.ID] = *user
	s.byEmail[user.NormalizedEmail] = user.ID

	return nil
}

func (s *Storage) UserByEmail(_ context.Context, normalizedEmail string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[normalizedEmail]
	if !ok {
		return nil, storage.ErrNotFound
	}

	user := s.users[id]

	return &user, nil
}

func (s *Storage) UserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &user, nil
}

func (s *Storage) AddUserToRole(_ context.Context, userID uuid.UUID, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roles[role]; !ok {
		return storage.ErrRoleNotFound
	}

	if _, ok := s.users[userID]; !ok {
		return storage.ErrNotFound
	}

	if s.userRoles[userID] == nil {
		s.userRoles[userID] = make(map[string]struct{})
	}
	s.userRoles[userID][role] = struct{}{}

	return nil
}

func (s *Storage) UserRoles(_ context.Context, userID uuid.UUID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roles := make([]string, 0, len(s.userRoles[userID]))
	for r := range s.userRoles[userID] {
		roles = append(roles, r)
	}
	sort.Strings(roles)

	return roles, nil
}

func (s *Storage) UserClaims(_ context.Context, userID uuid.UUID) ([]models.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Claim(nil), s.userClaims[userID]...), nil
}

func (s *Storage) AddUserClaim(_ context.Context, userID uuid.UUID, claim models.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return storage.ErrNotFound
	}

	s.userClaims[userID] = append(s.userClaims[userID], claim)

	return nil
}

func (s *Storage) UpdateSecurityStamp(_ context.Context, userID uuid.UUID, stamp string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return storage.ErrNotFound
	}

	user.SecurityStamp = stamp
	user.UpdatedAt = time.Now().UTC()
	s.users[userID] = user

	return nil
}

func (s *Storage) SetUserToken(_ context.Context, token *models.UserToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[token.UserID]; !ok {
		return storage.ErrNotFound
	}

	s.tokens[tokenKey{token.UserID, token.LoginProvider, token.Name}] = *token

	return nil
}

func (s *Storage) UserToken(_ context.Context, userID uuid.UUID, provider, name string) (*models.UserToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[tokenKey{userID, provider, name}]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &token, nil
}

func (s *Storage) RemoveUserToken(_ context.Context, userID uuid.UUID, provider, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, tokenKey{userID, provider, name})

	return nil
}

func (s *Storage) DeleteExpiredUserTokens(_ context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, t := range s.tokens {
		if !t.ExpiresAt.After(now) {
			delete(s.tokens, k)
		}
	}

	return nil
}
