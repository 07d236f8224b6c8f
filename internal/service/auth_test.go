package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/hotel-listing-api/internal/credentials"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
	"github.com/pribylovaa/hotel-listing-api/internal/storage/memory"
	"github.com/pribylovaa/hotel-listing-api/internal/token"
	"github.com/pribylovaa/hotel-listing-api/mocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testKey = "unit-test-secret-unit-test-secret"

func testSigner(t *testing.T) *token.Signer {
	t.Helper()

	s, err := token.New(token.Config{
		Key:      testKey,
		Issuer:   "HotelListingAPI",
		Audience: "HotelListingAPIClient",
		TTL:      10 * time.Minute,
	})
	require.NoError(t, err)

	return s
}

func testOptions() Options {
	return Options{
		Password:   credentials.DefaultPolicy(),
		RefreshTTL: time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)

	return New(st, testSigner(t), testOptions()), st
}

func newMemSvc(t *testing.T) (*Service, *memory.Storage) {
	t.Helper()

	st := memory.New()

	return New(st, testSigner(t), testOptions()), st
}

func register(t *testing.T, svc *Service, email, password string) {
	t.Helper()

	verrs, err := svc.Register(context.Background(), RegisterInput{Email: email, Password: password})
	require.NoError(t, err)
	require.Empty(t, verrs)
}

// expiredToken подписывает токен с истёкшим exp для указанного email/uid.
func expiredToken(t *testing.T, email, uid string) string {
	t.Helper()

	past := time.Now().Add(-time.Hour)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   email,
		"email": email,
		"uid":   uid,
		"iss":   "HotelListingAPI",
		"aud":   "HotelListingAPIClient",
		"iat":   past.Add(-10 * time.Minute).Unix(),
		"exp":   past.Unix(),
	}).SignedString([]byte(testKey))
	require.NoError(t, err)

	return signed
}

func TestRegister_AssignsUserRole(t *testing.T) {
	t.Parallel()

	svc, st := newMemSvc(t)
	ctx := context.Background()

	register(t, svc, "a@x.com", "secret1")

	user, err := st.UserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", user.Username)

	roles, err := st.UserRoles(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []string{models.RoleUser}, roles)
}

func TestRegister_ValidationErrors_NoUserCreated(t *testing.T) {
	t.Parallel()

	svc, st := newMemSvc(t)
	ctx := context.Background()

	verrs, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "abc"})
	require.NoError(t, err)
	require.NotEmpty(t, verrs)

	_, err = st.UserByEmail(ctx, "a@x.com")
	require.ErrorIs(t, err, storage.ErrNotFound)

	register(t, svc, "a@x.com", "secret1")

	verrs, err = svc.Register(ctx, RegisterInput{Email: "A@X.com", Password: "secret1"})
	require.NoError(t, err)
	require.Len(t, verrs, 1)
	require.Equal(t, credentials.CodeDuplicateEmail, verrs[0].Code)
}

func TestRegister_LongPassword_SoftFailure(t *testing.T) {
	t.Parallel()

	svc, st := newMemSvc(t)
	ctx := context.Background()

	verrs, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "a1" + strings.Repeat("x", 80)})
	require.NoError(t, err)
	require.Len(t, verrs, 1)
	require.Equal(t, credentials.CodePasswordTooLong, verrs[0].Code)

	_, err = st.UserByEmail(ctx, "a@x.com")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRegister_AssignRoleFailure(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	boom := errors.New("db down")

	st.EXPECT().UserByEmail(gomock.Any(), "a@x.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().AddUserToRole(gomock.Any(), gomock.Any(), models.RoleUser).Return(boom)

	verrs, err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com", Password: "secret1"})
	require.ErrorIs(t, err, boom)
	require.Nil(t, verrs)
}

func TestLogin_AfterRegister_ReturnsUserID(t *testing.T) {
	t.Parallel()

	svc, st := newMemSvc(t)
	ctx := context.Background()

	register(t, svc, "a@x.com", "secret1")
	user, err := st.UserByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	resp, err := svc.Login(ctx, "A@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, user.ID.String(), resp.UserID)

	p, err := testSigner(t).Verify(resp.Token)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", p.Email)
	require.Equal(t, user.ID.String(), p.UserID)
	require.True(t, p.HasRole(models.RoleUser))
}

func TestLogin_WrongPassword_NoRefreshIssued(t *testing.T) {
	t.Parallel()

	svc, st := newMemSvc(t)
	ctx := context.Background()

	register(t, svc, "a@x.com", "secret1")
	user, err := st.UserByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	resp, err := svc.Login(ctx, "a@x.com", "wrong1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Nil(t, resp)

	_, err = st.UserToken(ctx, user.ID, models.LoginProvider, models.RefreshTokenName)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)

	st.EXPECT().UserByEmail(gomock.Any(), "nobody@x.com").Return(nil, storage.ErrNotFound)

	_, err := svc.Login(context.Background(), "nobody@x.com", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StorageFailureIsNotCredentialsError(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	boom := errors.New("db down")

	st.EXPECT().UserByEmail(gomock.Any(), "a@x.com").Return(nil, boom)

	_, err := svc.Login(context.Background(), "a@x.com", "secret1")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRefreshToken_RoundTrip_SingleUse(t *testing.T) {
	t.Parallel()

	svc, _ := newMemSvc(t)
	ctx := context.Background()

	register(t, svc, "a@x.com", "secret1")
	first, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	second, err := svc.VerifyRefreshToken(ctx, *first)
	require.NoError(t, err)
	require.Equal(t, first.UserID, second.UserID)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)
	require.NotEqual(t, first.Token, second.Token)

	// Повтор со старым секретом отклоняется.
	_, err = svc.VerifyRefreshToken(ctx, *first)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Повтор считается компрометацией: штамп сменился, новый секрет тоже больше не действует.
	_, err = svc.VerifyRefreshToken(ctx, *second)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Повторный вход восстанавливает доступ.
	third, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	_, err = svc.VerifyRefreshToken(ctx, *third)
	require.NoError(t, err)
}

func TestVerifyRefreshToken_ExpiredAccessTokenAccepted(t *testing.T) {
	t.Parallel()

	svc, _ := newMemSvc(t)
	ctx := context.Background()

	register(t, svc, "a@x.com", "secret1")
	login, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	req := *login
	req.Token = expiredToken(t, "a@x.com", login.UserID)

	resp, err := svc.VerifyRefreshToken(ctx, req)
	require.NoError(t, err)
	require.NotEqual(t, login.RefreshToken, resp.RefreshToken)
}

func TestVerifyRefreshToken_IdentityMismatch_NoStampMutation(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	user := &models.User{ID: uuid.New(), Email: "a@x.com", SecurityStamp: "S1"}

	// Ни UserToken, ни UpdateSecurityStamp не ожидаются: gomock упадёт при вызове.
	st.EXPECT().UserByEmail(gomock.Any(), "a@x.com").Return(user, nil)

	_, err := svc.VerifyRefreshToken(context.Background(), models.AuthResponse{
		Token:        expiredToken(t, "a@x.com", user.ID.String()),
		UserID:       uuid.NewString(),
		RefreshToken: "whatever",
	})
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRefreshToken_UIDClaimMismatch(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	user := &models.User{ID: uuid.New(), Email: "a@x.com", SecurityStamp: "S1"}

	st.EXPECT().UserByEmail(gomock.Any(), "a@x.com").Return(user, nil)

	_, err := svc.VerifyRefreshToken(context.Background(), models.AuthResponse{
		Token:        expiredToken(t, "a@x.com", uuid.NewString()),
		UserID:       user.ID.String(),
		RefreshToken: "whatever",
	})
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRefreshToken_SecretMismatch_RotatesStamp(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	user := &models.User{ID: uuid.New(), Email: "a@x.com", SecurityStamp: "S1"}

	gomock.InOrder(
		st.EXPECT().UserByEmail(gomock.Any(), "a@x.com").Return(user, nil),
		st.EXPECT().UserToken(gomock.Any(), user.ID, models.LoginProvider, models.RefreshTokenName).
			Return(&models.UserToken{
				UserID:        user.ID,
				ValueHash:     "not-the-hash",
				SecurityStamp: "S1",
				ExpiresAt:     time.Now().Add(time.Hour),
			}, nil),
		st.EXPECT().UpdateSecurityStamp(gomock.Any(), user.ID, gomock.Not("S1")).Return(nil),
	)

	_, err := svc.VerifyRefreshToken(context.Background(), models.AuthResponse{
		Token:        expiredToken(t, "a@x.com", user.ID.String()),
		UserID:       user.ID.String(),
		RefreshToken: "guess",
	})
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRefreshToken_Rejections(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.VerifyRefreshToken(ctx, models.AuthResponse{Token: "garbage", UserID: uuid.NewString()})
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("bad user id", func(t *testing.T) {
		_, err := svc.VerifyRefreshToken(ctx, models.AuthResponse{
			Token:  expiredToken(t, "a@x.com", ""),
			UserID: "1",
		})
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown user", func(t *testing.T) {
		st.EXPECT().UserByEmail(gomock.Any(), "ghost@x.com").Return(nil, storage.ErrNotFound)

		_, err := svc.VerifyRefreshToken(ctx, models.AuthResponse{
			Token:  expiredToken(t, "ghost@x.com", ""),
			UserID: uuid.NewString(),
		})
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
