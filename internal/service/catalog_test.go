package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestListCountries_NormalizesParams(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	want := &models.PagedResult[models.Country]{TotalCount: 3, RecordNumber: models.DefaultPageSize}

	st.EXPECT().
		ListCountries(gomock.Any(), models.QueryParameters{StartIndex: 0, PageNumber: 0, PageSize: models.DefaultPageSize}).
		Return(want, nil)

	got, err := svc.ListCountries(context.Background(), models.QueryParameters{StartIndex: -5})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCountryDetails_NotFound(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)

	st.EXPECT().CountryDetails(gomock.Any(), int64(42)).Return(nil, storage.ErrNotFound)

	_, err := svc.CountryDetails(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCountry_Validation(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	ctx := context.Background()

	_, err := svc.CreateCountry(ctx, &models.Country{Name: "  "})
	require.ErrorIs(t, err, ErrInvalidArgument)

	st.EXPECT().CreateCountry(gomock.Any(), &models.Country{Name: "Cuba", ShortName: "CU"}).
		Return(&models.Country{ID: 4, Name: "Cuba", ShortName: "CU", Version: 1}, nil)

	created, err := svc.CreateCountry(ctx, &models.Country{Name: "Cuba", ShortName: "CU"})
	require.NoError(t, err)
	require.Equal(t, int64(4), created.ID)
}

func TestUpdateCountry_Outcomes(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	ctx := context.Background()

	t.Run("id mismatch", func(t *testing.T) {
		_, err := svc.UpdateCountry(ctx, 1, &models.Country{ID: 2, Name: "X"})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("ok takes id from path", func(t *testing.T) {
		st.EXPECT().UpdateCountry(gomock.Any(), &models.Country{ID: 1, Name: "X", Version: 1}).
			Return(&models.Country{ID: 1, Name: "X", Version: 2}, nil)

		got, err := svc.UpdateCountry(ctx, 1, &models.Country{Name: "X", Version: 1})
		require.NoError(t, err)
		require.Equal(t, int64(2), got.Version)
	})

	t.Run("not found", func(t *testing.T) {
		st.EXPECT().UpdateCountry(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)

		_, err := svc.UpdateCountry(ctx, 9, &models.Country{Name: "X"})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("conflict", func(t *testing.T) {
		st.EXPECT().UpdateCountry(gomock.Any(), gomock.Any()).Return(nil, storage.ErrConflict)

		_, err := svc.UpdateCountry(ctx, 1, &models.Country{Name: "X", Version: 7})
		require.ErrorIs(t, err, ErrConflict)
	})
}

func TestDeleteCountry(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	ctx := context.Background()

	st.EXPECT().DeleteCountry(gomock.Any(), int64(1)).Return(nil)
	require.NoError(t, svc.DeleteCountry(ctx, 1))

	st.EXPECT().DeleteCountry(gomock.Any(), int64(2)).Return(storage.ErrNotFound)
	require.ErrorIs(t, svc.DeleteCountry(ctx, 2), ErrNotFound)

	boom := errors.New("db down")
	st.EXPECT().DeleteCountry(gomock.Any(), int64(3)).Return(boom)
	require.ErrorIs(t, svc.DeleteCountry(ctx, 3), boom)
}

func TestCreateHotel_Validation(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	ctx := context.Background()

	for _, h := range []*models.Hotel{
		{Address: "a", CountryID: 1},
		{Name: "n", CountryID: 1},
		{Name: "n", Address: "a"},
	} {
		_, err := svc.CreateHotel(ctx, h)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}

	st.EXPECT().CreateHotel(gomock.Any(), gomock.Any()).Return(nil, storage.ErrForeignKey)
	_, err := svc.CreateHotel(ctx, &models.Hotel{Name: "n", Address: "a", CountryID: 99})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUpdateHotel_Outcomes(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	ctx := context.Background()
	in := &models.Hotel{Name: "n", Address: "a", CountryID: 1}

	_, err := svc.UpdateHotel(ctx, 1, &models.Hotel{ID: 2, Name: "n", Address: "a", CountryID: 1})
	require.ErrorIs(t, err, ErrInvalidArgument)

	st.EXPECT().UpdateHotel(gomock.Any(), gomock.Any()).Return(nil, storage.ErrConflict)
	_, err = svc.UpdateHotel(ctx, 1, in)
	require.ErrorIs(t, err, ErrConflict)

	st.EXPECT().UpdateHotel(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
	_, err = svc.UpdateHotel(ctx, 1, in)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHotel_NotFound(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)

	st.EXPECT().HotelByID(gomock.Any(), int64(5)).Return(nil, storage.ErrNotFound)

	_, err := svc.Hotel(context.Background(), 5)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_AgainstMemory(t *testing.T) {
	t.Parallel()

	svc, st := newMemSvc(t)
	ctx := context.Background()

	c, err := svc.CreateCountry(ctx, &models.Country{Name: "Cuba", ShortName: "CU"})
	require.NoError(t, err)

	h, err := svc.CreateHotel(ctx, &models.Hotel{Name: "Melia", Address: "Havana", CountryID: c.ID})
	require.NoError(t, err)

	details, err := svc.CountryDetails(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, []models.Hotel{*h}, details.Hotels)

	require.NoError(t, svc.DeleteHotel(ctx, h.ID))
	require.ErrorIs(t, svc.DeleteHotel(ctx, h.ID), ErrNotFound)

	all, err := st.AllHotels(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
