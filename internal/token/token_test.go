package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/stretchr/testify/require"
)

func testCfg() Config {
	return Config{
		Key:      "unit-test-secret-unit-test-secret",
		Issuer:   "HotelListingAPI",
		Audience: "HotelListingAPIClient",
		TTL:      10 * time.Minute,
	}
}

func newSigner(t *testing.T) *Signer {
	t.Helper()

	s, err := New(testCfg())
	require.NoError(t, err)

	return s
}

func testUser() *models.User {
	return &models.User{ID: uuid.New(), Email: "a@x.com"}
}

// payload декодирует вторую часть токена без проверок.
func payload(t *testing.T, tok string) map[string]any {
	t.Helper()

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out))

	return out
}

func TestNew_ConfigErrors(t *testing.T) {
	t.Parallel()

	cfg := testCfg()
	cfg.Key = ""
	_, err := New(cfg)
	require.ErrorIs(t, err, ErrMissingKey)

	cfg = testCfg()
	cfg.Issuer = ""
	_, err = New(cfg)
	require.ErrorIs(t, err, ErrMissingIssuer)

	cfg = testCfg()
	cfg.Audience = ""
	_, err = New(cfg)
	require.ErrorIs(t, err, ErrMissingAudience)

	cfg = testCfg()
	cfg.TTL = 0
	_, err = New(cfg)
	require.Error(t, err)
}

func TestIssueAndVerify_OK(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	user := testUser()

	tok, exp, err := s.Issue(user, []string{models.RoleUser}, []models.Claim{models.NewClaim("tenant", "t1")})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.WithinDuration(t, time.Now().Add(10*time.Minute), exp, 2*time.Second)

	p, err := s.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, user.Email, p.Subject)
	require.Equal(t, user.Email, p.Email)
	require.Equal(t, user.ID.String(), p.UserID)
	require.Equal(t, []string{models.RoleUser}, p.Roles)
	require.True(t, p.HasRole(models.RoleUser))
	require.False(t, p.HasRole(models.RoleAdministrator))
	require.Equal(t, []models.Claim{models.NewClaim("tenant", "t1")}, p.Claims)
	require.Equal(t, exp.Unix(), p.ExpiresAt.Unix())

	_, err = uuid.Parse(p.TokenID)
	require.NoError(t, err)
}

func TestIssue_ClaimShape(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	user := testUser()

	single, _, err := s.Issue(user, []string{models.RoleUser}, nil)
	require.NoError(t, err)

	pl := payload(t, single)
	require.Equal(t, models.RoleUser, pl["role"])
	require.Equal(t, "HotelListingAPI", pl["iss"])
	require.Equal(t, "HotelListingAPIClient", pl["aud"])
	require.Equal(t, user.Email, pl["sub"])
	require.Equal(t, user.ID.String(), pl["uid"])

	multi, _, err := s.Issue(user, []string{models.RoleAdministrator, models.RoleUser}, nil)
	require.NoError(t, err)
	require.Equal(t, []any{models.RoleAdministrator, models.RoleUser}, payload(t, multi)["role"])

	none, _, err := s.Issue(user, nil, nil)
	require.NoError(t, err)
	_, ok := payload(t, none)["role"]
	require.False(t, ok)
}

func TestIssue_ReservedClaimsIgnored(t *testing.T) {
	t.Parallel()

	s := newSigner(t)

	tok, _, err := s.Issue(testUser(), nil, []models.Claim{
		models.NewClaim("iss", "evil"),
		models.NewClaim("exp", "0"),
	})
	require.NoError(t, err)

	pl := payload(t, tok)
	require.Equal(t, "HotelListingAPI", pl["iss"])

	_, err = s.Verify(tok)
	require.NoError(t, err)
}

func TestIssue_StoredIdentityClaimsDoNotOverride(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	user := testUser()

	tok, _, err := s.Issue(user, []string{models.RoleUser}, []models.Claim{
		models.NewClaim("sub", "other@x.com"),
		models.NewClaim("email", "other@x.com"),
		models.NewClaim("uid", uuid.NewString()),
		models.NewClaim("jti", "fixed"),
		models.NewClaim("role", "Auditor"),
		models.NewClaim("tenant", "t1"),
	})
	require.NoError(t, err)

	pl := payload(t, tok)
	require.Equal(t, user.Email, pl["sub"])
	require.Equal(t, user.Email, pl["email"])
	require.Equal(t, user.ID.String(), pl["uid"])
	require.NotEqual(t, "fixed", pl["jti"])

	p, err := s.Decode(tok)
	require.NoError(t, err)
	require.Equal(t, user.Email, p.Subject)
	require.Equal(t, user.Email, p.Email)
	require.Equal(t, user.ID.String(), p.UserID)
	require.ElementsMatch(t, []string{models.RoleUser, "Auditor"}, p.Roles)
	require.Equal(t, []models.Claim{models.NewClaim("tenant", "t1")}, p.Claims)
}

func TestIssue_UniqueTokenID(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	user := testUser()

	a, _, err := s.Issue(user, nil, nil)
	require.NoError(t, err)
	b, _, err := s.Issue(user, nil, nil)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NotEqual(t, payload(t, a)["jti"], payload(t, b)["jti"])
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	tok, _, err := s.Issue(testUser(), nil, nil)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	sig := []byte(parts[2])
	if sig[5] == 'A' {
		sig[5] = 'B'
	} else {
		sig[5] = 'A'
	}
	parts[2] = string(sig)

	_, err = s.Verify(strings.Join(parts, "."))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	tok, _, err := s.Issue(testUser(), nil, nil)
	require.NoError(t, err)

	pl := payload(t, tok)
	pl["role"] = models.RoleAdministrator
	raw, err := json.Marshal(pl)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	parts[1] = base64.RawURLEncoding.EncodeToString(raw)

	_, err = s.Verify(strings.Join(parts, "."))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongKey(t *testing.T) {
	t.Parallel()

	other := testCfg()
	other.Key = "another-secret-another-secret-xx"
	forger, err := New(other)
	require.NoError(t, err)

	tok, _, err := forger.Issue(testUser(), []string{models.RoleAdministrator}, nil)
	require.NoError(t, err)

	_, err = newSigner(t).Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expiry_ZeroLeeway(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	tok, exp, err := s.Issue(testUser(), nil, nil)
	require.NoError(t, err)

	s.now = func() time.Time { return exp.Add(-time.Second) }
	_, err = s.Verify(tok)
	require.NoError(t, err)

	s.now = func() time.Time { return exp.Add(time.Second) }
	_, err = s.Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongAlg_WrongIssuer_WrongAudience(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	cfg := testCfg()
	now := time.Now()

	claims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub":   "a@x.com",
			"email": "a@x.com",
			"uid":   uuid.NewString(),
			"iss":   cfg.Issuer,
			"aud":   cfg.Audience,
			"exp":   now.Add(time.Minute).Unix(),
			"iat":   now.Unix(),
		}
	}

	t.Run("wrong alg", func(t *testing.T) {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims()).SignedString([]byte(cfg.Key))
		require.NoError(t, err)

		_, err = s.Verify(signed)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("alg none", func(t *testing.T) {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims()).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = s.Verify(signed)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := claims()
		c["iss"] = "someone-else"
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(cfg.Key))
		require.NoError(t, err)

		_, err = s.Verify(signed)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		c := claims()
		c["aud"] = "other-client"
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(cfg.Key))
		require.NoError(t, err)

		_, err = s.Verify(signed)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing exp", func(t *testing.T) {
		c := claims()
		delete(c, "exp")
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(cfg.Key))
		require.NoError(t, err)

		_, err = s.Verify(signed)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestDecode_IgnoresSignatureAndExpiry(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	user := testUser()
	s.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, _, err := s.Issue(user, []string{models.RoleUser}, nil)
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)

	p, err := s.Decode(tok)
	require.NoError(t, err)
	require.Equal(t, user.Email, p.Email)
	require.Equal(t, user.ID.String(), p.UserID)
	require.Equal(t, []string{models.RoleUser}, p.Roles)
}

func TestDecode_Garbage(t *testing.T) {
	t.Parallel()

	s := newSigner(t)

	for _, in := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := s.Decode(in)
		require.ErrorIs(t, err, ErrInvalidToken, in)
	}
}
