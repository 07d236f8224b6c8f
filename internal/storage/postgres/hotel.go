package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
)

const hotelColumns = `id, name, address, rating, country_id, version`

func scanHotel(row pgx.Row) (*models.Hotel, error) {
	var hotel models.Hotel

	if err := row.Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Address,
		&hotel.Rating,
		&hotel.CountryID,
		&hotel.Version,
	); err != nil {
		return nil, err
	}

	return &hotel, nil
}

// CreateHotel вставляет отель. Ошибки: storage.ErrForeignKey, если страны нет.
func (s *Storage) CreateHotel(ctx context.Context, hotel *models.Hotel) (*models.Hotel, error) {
	const op = "storage.postgres.CreateHotel"

	query := `
		INSERT INTO hotels(name, address, rating, country_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + hotelColumns

	result, err := scanHotel(s.db.QueryRow(ctx, query,
		hotel.Name,
		hotel.Address,
		hotel.Rating,
		hotel.CountryID,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrForeignKey)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// HotelByID возвращает отель по id.
func (s *Storage) HotelByID(ctx context.Context, id int64) (*models.Hotel, error) {
	const op = "storage.postgres.HotelByID"

	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1`

	result, err := scanHotel(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// AllHotels возвращает все отели по возрастанию id.
func (s *Storage) AllHotels(ctx context.Context) ([]models.Hotel, error) {
	const op = "storage.postgres.AllHotels"

	rows, err := s.db.Query(ctx, `SELECT `+hotelColumns+` FROM hotels ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hotels, err := collectHotels(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return hotels, nil
}

// ListHotels возвращает страницу отелей.
func (s *Storage) ListHotels(ctx context.Context, params models.QueryParameters) (*models.PagedResult[models.Hotel], error) {
	const op = "storage.postgres.ListHotels"

	params = params.Normalize()

	var total int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM hotels`).Scan(&total); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+hotelColumns+`
		FROM hotels
		ORDER BY id
		OFFSET $1
		LIMIT $2
	`, params.StartIndex, params.PageSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := collectHotels(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.PagedResult[models.Hotel]{
		TotalCount:   total,
		PageNumber:   params.PageNumber,
		RecordNumber: params.PageSize,
		Items:        items,
	}, nil
}

// UpdateHotel обновляет отель с проверкой версии (Version == 0 — без проверки).
func (s *Storage) UpdateHotel(ctx context.Context, hotel *models.Hotel) (*models.Hotel, error) {
	const op = "storage.postgres.UpdateHotel"

	query := `
		UPDATE hotels
		SET name = $2, address = $3, rating = $4, country_id = $5, version = version + 1
		WHERE id = $1 AND ($6::bigint = 0 OR version = $6::bigint)
		RETURNING ` + hotelColumns

	result, err := scanHotel(s.db.QueryRow(ctx, query,
		hotel.ID,
		hotel.Name,
		hotel.Address,
		hotel.Rating,
		hotel.CountryID,
		hotel.Version,
	))
	if err == nil {
		return result, nil
	}

	if isForeignKeyViolation(err) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrForeignKey)
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.conflictOrNotFound(ctx, "hotels", hotel.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
}

// DeleteHotel удаляет отель.
func (s *Storage) DeleteHotel(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteHotel"

	cmdTag, err := s.db.Exec(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func collectHotels(rows pgx.Rows) ([]models.Hotel, error) {
	defer rows.Close()

	hotels := make([]models.Hotel, 0)
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}

		hotels = append(hotels, *hotel)
	}

	return hotels, rows.Err()
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
