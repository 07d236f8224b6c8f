package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
)

func TestIntegration_Countries_CRUDAndPaging(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()

	created, err := st.CreateCountry(ctx, &models.Country{Name: "Barbados", ShortName: "BB"})
	require.NoError(t, err)
	require.Equal(t, int64(4), created.ID)
	require.Equal(t, int64(1), created.Version)

	page, err := st.ListCountries(ctx, models.QueryParameters{StartIndex: 1, PageSize: 2, PageNumber: 1})
	require.NoError(t, err)
	require.Equal(t, 4, page.TotalCount)
	require.Equal(t, 2, page.RecordNumber)
	require.Len(t, page.Items, 2)
	require.Equal(t, int64(2), page.Items[0].ID)

	details, err := st.CountryDetails(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Jamaica", details.Name)
	require.Len(t, details.Hotels, 1)

	updated, err := st.UpdateCountry(ctx, &models.Country{ID: 4, Name: "Barbados", ShortName: "BRB", Version: 1})
	require.NoError(t, err)
	require.Equal(t, int64(2), updated.Version)

	_, err = st.UpdateCountry(ctx, &models.Country{ID: 4, Name: "Stale", Version: 1})
	require.ErrorIs(t, err, storage.ErrConflict)

	// Version == 0 — без проверки.
	_, err = st.UpdateCountry(ctx, &models.Country{ID: 4, Name: "Forced"})
	require.NoError(t, err)

	_, err = st.UpdateCountry(ctx, &models.Country{ID: 99, Name: "Nope"})
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, st.DeleteCountry(ctx, 4))
	require.ErrorIs(t, st.DeleteCountry(ctx, 4), storage.ErrNotFound)

	_, err = st.CountryByID(ctx, 4)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_Hotels_CRUDAndCascade(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()

	_, err := st.CreateHotel(ctx, &models.Hotel{Name: "Ghost", Address: "Nowhere", CountryID: 42})
	require.ErrorIs(t, err, storage.ErrForeignKey)

	created, err := st.CreateHotel(ctx, &models.Hotel{Name: "Sea View", Address: "Montego Bay", CountryID: 1})
	require.NoError(t, err)
	require.Nil(t, created.Rating)
	require.Equal(t, int64(4), created.ID)

	rating := 4.9
	updated, err := st.UpdateHotel(ctx, &models.Hotel{
		ID: created.ID, Name: "Sea View", Address: "Ocho Rios", Rating: &rating, CountryID: 1, Version: created.Version,
	})
	require.NoError(t, err)
	require.Equal(t, "Ocho Rios", updated.Address)
	require.InDelta(t, 4.9, *updated.Rating, 1e-9)

	_, err = st.UpdateHotel(ctx, &models.Hotel{ID: created.ID, Name: "x", Address: "y", CountryID: 42})
	require.ErrorIs(t, err, storage.ErrForeignKey)

	_, err = st.UpdateHotel(ctx, &models.Hotel{ID: created.ID, Name: "x", Address: "y", CountryID: 1, Version: 1})
	require.ErrorIs(t, err, storage.ErrConflict)

	page, err := st.ListHotels(ctx, models.QueryParameters{})
	require.NoError(t, err)
	require.Equal(t, 4, page.TotalCount)
	require.Equal(t, models.DefaultPageSize, page.RecordNumber)

	// Удаление страны удаляет её отели.
	require.NoError(t, st.DeleteCountry(ctx, 1))

	_, err = st.HotelByID(ctx, created.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.ErrorIs(t, st.DeleteHotel(ctx, created.ID), storage.ErrNotFound)
}
