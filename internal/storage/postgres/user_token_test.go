package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
)

func TestIntegration_UserTokens_UpsertRemovePurge(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()

	u := newUser("tokens@example.com")
	require.NoError(t, st.SaveUser(ctx, u))

	now := time.Now().UTC().Truncate(time.Microsecond)
	tok := &models.UserToken{
		UserID:        u.ID,
		LoginProvider: models.LoginProvider,
		Name:          models.RefreshTokenName,
		ValueHash:     "hash-1",
		SecurityStamp: "stamp-1",
		CreatedAt:     now,
		ExpiresAt:     now.Add(time.Hour),
	}
	require.NoError(t, st.SetUserToken(ctx, tok))

	// UPSERT заменяет значение той же тройки.
	tok.ValueHash = "hash-2"
	require.NoError(t, st.SetUserToken(ctx, tok))

	got, err := st.UserToken(ctx, u.ID, models.LoginProvider, models.RefreshTokenName)
	require.NoError(t, err)
	require.Equal(t, "hash-2", got.ValueHash)
	require.Equal(t, "stamp-1", got.SecurityStamp)
	require.WithinDuration(t, tok.ExpiresAt, got.ExpiresAt, time.Millisecond)

	_, err = st.UserToken(ctx, u.ID, "other", models.RefreshTokenName)
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, st.RemoveUserToken(ctx, u.ID, models.LoginProvider, models.RefreshTokenName))
	require.NoError(t, st.RemoveUserToken(ctx, u.ID, models.LoginProvider, models.RefreshTokenName))

	_, err = st.UserToken(ctx, u.ID, models.LoginProvider, models.RefreshTokenName)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Просроченный удаляется, живой остаётся.
	expired := *tok
	expired.Name = "Expired"
	expired.ExpiresAt = now.Add(-time.Minute)
	require.NoError(t, st.SetUserToken(ctx, &expired))
	require.NoError(t, st.SetUserToken(ctx, tok))

	require.NoError(t, st.DeleteExpiredUserTokens(ctx, now))

	_, err = st.UserToken(ctx, u.ID, models.LoginProvider, "Expired")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.UserToken(ctx, u.ID, models.LoginProvider, models.RefreshTokenName)
	require.NoError(t, err)
}

func TestIntegration_UserTokens_UnknownUser(t *testing.T) {
	st := startPostgres(t)

	err := st.SetUserToken(context.Background(), &models.UserToken{
		UserID:        uuid.New(),
		LoginProvider: models.LoginProvider,
		Name:          models.RefreshTokenName,
		ValueHash:     "h",
		SecurityStamp: "s",
		CreatedAt:     time.Now(),
		ExpiresAt:     time.Now().Add(time.Hour),
	})
	require.ErrorIs(t, err, storage.ErrNotFound)
}
