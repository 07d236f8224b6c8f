package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/pkg/log"
)

// AllHotels возвращает все отели.
func (s *Service) AllHotels(ctx context.Context) ([]models.Hotel, error) {
	const op = "service.hotels.AllHotels"

	hotels, err := s.storage.AllHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return hotels, nil
}

// ListHotels возвращает страницу отелей.
func (s *Service) ListHotels(ctx context.Context, params models.QueryParameters) (*models.PagedResult[models.Hotel], error) {
	const op = "service.hotels.ListHotels"

	page, err := s.storage.ListHotels(ctx, params.Normalize())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// Hotel возвращает отель по id.
func (s *Service) Hotel(ctx context.Context, id int64) (*models.Hotel, error) {
	const op = "service.hotels.Hotel"

	hotel, err := s.storage.HotelByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return hotel, nil
}

// CreateHotel создаёт отель. Несуществующая страна — ErrInvalidArgument.
func (s *Service) CreateHotel(ctx context.Context, hotel *models.Hotel) (*models.Hotel, error) {
	const op = "service.hotels.CreateHotel"

	if err := validateHotel(hotel); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.storage.CreateHotel(ctx, hotel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	log.From(ctx).Info("hotel_created", slog.Int64("hotel_id", created.ID))

	return created, nil
}

// UpdateHotel обновляет отель id (правила как у UpdateCountry).
func (s *Service) UpdateHotel(ctx context.Context, id int64, hotel *models.Hotel) (*models.Hotel, error) {
	const op = "service.hotels.UpdateHotel"

	if hotel.ID != 0 && hotel.ID != id {
		return nil, fmt.Errorf("%s: id mismatch: %w", op, ErrInvalidArgument)
	}

	if err := validateHotel(hotel); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	in := *hotel
	in.ID = id

	updated, err := s.storage.UpdateHotel(ctx, &in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	log.From(ctx).Info("hotel_updated",
		slog.Int64("hotel_id", updated.ID),
		slog.Int64("version", updated.Version),
	)

	return updated, nil
}

// DeleteHotel удаляет отель.
func (s *Service) DeleteHotel(ctx context.Context, id int64) error {
	const op = "service.hotels.DeleteHotel"

	if err := s.storage.DeleteHotel(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	log.From(ctx).Info("hotel_deleted", slog.Int64("hotel_id", id))

	return nil
}

func validateHotel(hotel *models.Hotel) error {
	switch {
	case strings.TrimSpace(hotel.Name) == "":
		return fmt.Errorf("name is required: %w", ErrInvalidArgument)
	case strings.TrimSpace(hotel.Address) == "":
		return fmt.Errorf("address is required: %w", ErrInvalidArgument)
	case hotel.CountryID < 1:
		return fmt.Errorf("countryId must be positive: %w", ErrInvalidArgument)
	}

	return nil
}
