// token выпускает и проверяет подписанные HS256 access-токены.
package token

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
)

var (
	// ErrMissingKey — ключ подписи не задан.
	ErrMissingKey = errors.New("jwt signing key is not configured")
	// ErrMissingIssuer — издатель не задан.
	ErrMissingIssuer = errors.New("jwt issuer is not configured")
	// ErrMissingAudience — аудитория не задана.
	ErrMissingAudience = errors.New("jwt audience is not configured")
	// ErrInvalidToken — токен не прошёл проверку: подпись, алгоритм, iss/aud, срок или формат.
	ErrInvalidToken = errors.New("invalid token")
)

// Зарегистрированные claim'ы, которые пользовательские claim'ы не могут перекрыть.
var reserved = map[string]struct{}{
	"iss": {},
	"aud": {},
	"exp": {},
	"iat": {},
	"nbf": {},
}

// Config — параметры подписи.
type Config struct {
	Key      string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Signer выпускает и проверяет access-токены. Безопасен для конкурентного использования.
type Signer struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// Principal — проверенное (или только декодированное) содержимое токена.
type Principal struct {
	Subject   string
	TokenID   string
	Email     string
	UserID    string
	Roles     []string
	Claims    []models.Claim
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasRole сообщает, выдана ли роль.
func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// New проверяет конфигурацию. Ошибка здесь фатальна для запуска сервиса.
func New(cfg Config) (*Signer, error) {
	const op = "token.New"

	switch {
	case cfg.Key == "":
		return nil, fmt.Errorf("%s: %w", op, ErrMissingKey)
	case cfg.Issuer == "":
		return nil, fmt.Errorf("%s: %w", op, ErrMissingIssuer)
	case cfg.Audience == "":
		return nil, fmt.Errorf("%s: %w", op, ErrMissingAudience)
	}

	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("%s: non-positive ttl %s", op, cfg.TTL)
	}

	return &Signer{
		key:      []byte(cfg.Key),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      cfg.TTL,
		now:      time.Now,
	}, nil
}

// Issue подписывает токен для пользователя: sub и email — email пользователя,
// jti — случайный uuid, uid — id пользователя, role — роли, далее сохранённые claim'ы.
// Возвращает токен и момент его истечения.
func (s *Signer) Issue(user *models.User, roles []string, claims []models.Claim) (string, time.Time, error) {
	const op = "token.Issue"

	var set models.Claims
	set.Add(models.Claim{Kind: models.ClaimSubject, Value: user.Email})
	set.Add(models.Claim{Kind: models.ClaimTokenID, Value: uuid.NewString()})
	set.Add(models.Claim{Kind: models.ClaimEmail, Value: user.Email})
	set.Add(models.Claim{Kind: models.ClaimUserID, Value: user.ID.String()})

	for _, role := range roles {
		set.Add(models.Claim{Kind: models.ClaimRole, Value: role})
	}

	for _, c := range claims {
		// sub, email, jti и uid однозначны: второе значение превратило бы их в массив.
		if c.Kind != models.ClaimCustom && c.Kind != models.ClaimRole {
			continue
		}
		if _, ok := reserved[c.TypeName()]; ok {
			continue
		}

		set.Add(c)
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)

	mc := toMapClaims(&set)
	mc["iss"] = s.issuer
	mc["aud"] = s.audience
	mc["iat"] = jwt.NewNumericDate(now)
	mc["exp"] = jwt.NewNumericDate(expiresAt)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, expiresAt.Truncate(time.Second), nil
}

// Verify проверяет подпись, алгоритм, издателя, аудиторию и срок без допуска на рассинхрон часов.
func (s *Signer) Verify(tokenStr string) (*Principal, error) {
	const op = "token.Verify"

	parsed, err := jwt.Parse(tokenStr,
		func(t *jwt.Token) (interface{}, error) {
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return principalFrom(mc), nil
}

// Decode разбирает токен БЕЗ проверки подписи и срока.
// Результату можно доверять только после сверки с хранилищем.
func (s *Signer) Decode(tokenStr string) (*Principal, error) {
	const op = "token.Decode"

	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, mc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return principalFrom(mc), nil
}

// toMapClaims группирует claim'ы по имени: одно значение — строка, несколько — массив строк.
func toMapClaims(set *models.Claims) jwt.MapClaims {
	grouped := make(map[string][]string)
	for _, c := range set.Items() {
		name := c.TypeName()
		grouped[name] = append(grouped[name], c.Value)
	}

	mc := make(jwt.MapClaims, len(grouped)+4)
	for name, values := range grouped {
		if len(values) == 1 {
			mc[name] = values[0]
			continue
		}

		mc[name] = values
	}

	return mc
}

func principalFrom(mc jwt.MapClaims) *Principal {
	p := &Principal{
		Subject: stringClaim(mc, models.ClaimNameSubject),
		TokenID: stringClaim(mc, models.ClaimNameTokenID),
		Email:   stringClaim(mc, models.ClaimNameEmail),
		UserID:  stringClaim(mc, models.ClaimNameUserID),
		Roles:   stringsClaim(mc, models.ClaimNameRole),
	}

	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		p.IssuedAt = iat.Time
	}

	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		p.ExpiresAt = exp.Time
	}

	names := make([]string, 0, len(mc))
	for name := range mc {
		if _, ok := reserved[name]; ok {
			continue
		}

		if models.KindOf(name) != models.ClaimCustom {
			continue
		}

		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, v := range stringsClaim(mc, name) {
			p.Claims = append(p.Claims, models.NewClaim(name, v))
		}
	}

	return p
}

func stringClaim(mc jwt.MapClaims, name string) string {
	if v, ok := mc[name].(string); ok {
		return v
	}

	return ""
}

// stringsClaim принимает и одиночное значение, и массив.
func stringsClaim(mc jwt.MapClaims, name string) []string {
	switch v := mc[name].(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, it := range v {
			out = append(out, fmt.Sprint(it))
		}
		return out
	case nil:
		return nil
	default:
		return []string{fmt.Sprint(v)}
	}
}
