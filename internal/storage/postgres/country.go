package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
)

const countryColumns = `id, name, short_name, version`

func scanCountry(row pgx.Row) (*models.Country, error) {
	var country models.Country

	if err := row.Scan(
		&country.ID,
		&country.Name,
		&country.ShortName,
		&country.Version,
	); err != nil {
		return nil, err
	}

	return &country, nil
}

// CreateCountry вставляет страну и возвращает её с серверными полями (id, version).
func (s *Storage) CreateCountry(ctx context.Context, country *models.Country) (*models.Country, error) {
	const op = "storage.postgres.CreateCountry"

	query := `
		INSERT INTO countries(name, short_name)
		VALUES ($1, $2)
		RETURNING ` + countryColumns

	result, err := scanCountry(s.db.QueryRow(ctx, query, country.Name, country.ShortName))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// CountryByID возвращает страну без отелей.
func (s *Storage) CountryByID(ctx context.Context, id int64) (*models.Country, error) {
	const op = "storage.postgres.CountryByID"

	query := `SELECT ` + countryColumns + ` FROM countries WHERE id = $1`

	result, err := scanCountry(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// CountryDetails возвращает страну вместе с её отелями (отели по возрастанию id).
func (s *Storage) CountryDetails(ctx context.Context, id int64) (*models.CountryDetails, error) {
	const op = "storage.postgres.CountryDetails"

	country, err := s.CountryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE country_id = $1 ORDER BY id`

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hotels, err := collectHotels(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.CountryDetails{Country: *country, Hotels: hotels}, nil
}

// AllCountries возвращает все страны по возрастанию id.
func (s *Storage) AllCountries(ctx context.Context) ([]models.Country, error) {
	const op = "storage.postgres.AllCountries"

	rows, err := s.db.Query(ctx, `SELECT `+countryColumns+` FROM countries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	countries, err := collectCountries(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return countries, nil
}

// ListCountries возвращает страницу стран: пропускает StartIndex записей и берёт PageSize.
func (s *Storage) ListCountries(ctx context.Context, params models.QueryParameters) (*models.PagedResult[models.Country], error) {
	const op = "storage.postgres.ListCountries"

	params = params.Normalize()

	var total int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM countries`).Scan(&total); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+countryColumns+`
		FROM countries
		ORDER BY id
		OFFSET $1
		LIMIT $2
	`, params.StartIndex, params.PageSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := collectCountries(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.PagedResult[models.Country]{
		TotalCount:   total,
		PageNumber:   params.PageNumber,
		RecordNumber: params.PageSize,
		Items:        items,
	}, nil
}

// UpdateCountry обновляет страну с проверкой версии.
// Version == 0 означает «без проверки версии».
func (s *Storage) UpdateCountry(ctx context.Context, country *models.Country) (*models.Country, error) {
	const op = "storage.postgres.UpdateCountry"

	query := `
		UPDATE countries
		SET name = $2, short_name = $3, version = version + 1
		WHERE id = $1 AND ($4::bigint = 0 OR version = $4::bigint)
		RETURNING ` + countryColumns

	result, err := scanCountry(s.db.QueryRow(ctx, query,
		country.ID,
		country.Name,
		country.ShortName,
		country.Version,
	))
	if err == nil {
		return result, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.conflictOrNotFound(ctx, "countries", country.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
}

// DeleteCountry удаляет страну (отели удаляются каскадно).
func (s *Storage) DeleteCountry(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteCountry"

	cmdTag, err := s.db.Exec(ctx, `DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func collectCountries(rows pgx.Rows) ([]models.Country, error) {
	defer rows.Close()

	countries := make([]models.Country, 0)
	for rows.Next() {
		country, err := scanCountry(rows)
		if err != nil {
			return nil, err
		}

		countries = append(countries, *country)
	}

	return countries, rows.Err()
}

// conflictOrNotFound различает причину несработавшего UPDATE ... WHERE version = $n:
// nil — запись есть (значит, конфликт версий), storage.ErrNotFound — записи нет.
func (s *Storage) conflictOrNotFound(ctx context.Context, table string, id int64) error {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)`, table)

	if err := s.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return err
	}

	if !exists {
		return storage.ErrNotFound
	}

	return nil
}
