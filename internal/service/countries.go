package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/pkg/log"
)

// AllCountries возвращает все страны.
func (s *Service) AllCountries(ctx context.Context) ([]models.Country, error) {
	const op = "service.countries.AllCountries"

	countries, err := s.storage.AllCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return countries, nil
}

// ListCountries возвращает страницу стран.
func (s *Service) ListCountries(ctx context.Context, params models.QueryParameters) (*models.PagedResult[models.Country], error) {
	const op = "service.countries.ListCountries"

	page, err := s.storage.ListCountries(ctx, params.Normalize())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// CountryDetails возвращает страну с отелями.
func (s *Service) CountryDetails(ctx context.Context, id int64) (*models.CountryDetails, error) {
	const op = "service.countries.CountryDetails"

	details, err := s.storage.CountryDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return details, nil
}

// CreateCountry создаёт страну.
func (s *Service) CreateCountry(ctx context.Context, country *models.Country) (*models.Country, error) {
	const op = "service.countries.CreateCountry"

	if err := validateCountry(country); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.storage.CreateCountry(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	log.From(ctx).Info("country_created", slog.Int64("country_id", created.ID))

	return created, nil
}

// UpdateCountry обновляет страну id. country.ID, если задан, должен совпадать с id.
// country.Version == 0 отключает проверку версии.
func (s *Service) UpdateCountry(ctx context.Context, id int64, country *models.Country) (*models.Country, error) {
	const op = "service.countries.UpdateCountry"

	if country.ID != 0 && country.ID != id {
		return nil, fmt.Errorf("%s: id mismatch: %w", op, ErrInvalidArgument)
	}

	if err := validateCountry(country); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	in := *country
	in.ID = id

	updated, err := s.storage.UpdateCountry(ctx, &in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	log.From(ctx).Info("country_updated",
		slog.Int64("country_id", updated.ID),
		slog.Int64("version", updated.Version),
	)

	return updated, nil
}

// DeleteCountry удаляет страну вместе с её отелями.
func (s *Service) DeleteCountry(ctx context.Context, id int64) error {
	const op = "service.countries.DeleteCountry"

	if err := s.storage.DeleteCountry(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	log.From(ctx).Info("country_deleted", slog.Int64("country_id", id))

	return nil
}

func validateCountry(country *models.Country) error {
	if strings.TrimSpace(country.Name) == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidArgument)
	}

	return nil
}
