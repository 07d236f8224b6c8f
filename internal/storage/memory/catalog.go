package memory

import (
	"context"
	"sort"

	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
)

func (s *Storage) CreateCountry(_ context.Context, country *models.Country) (*models.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCountryID++
	c := models.Country{
		ID:        s.nextCountryID,
		Name:      country.Name,
		ShortName: country.ShortName,
		Version:   1,
	}
	s.countries[c.ID] = c

	return &c, nil
}

func (s *Storage) CountryByID(_ context.Context, id int64) (*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.countries[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &c, nil
}

func (s *Storage) CountryDetails(_ context.Context, id int64) (*models.CountryDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.countries[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	hotels := make([]models.Hotel, 0)
	for _, h := range s.sortedHotels() {
		if h.CountryID == id {
			hotels = append(hotels, h)
		}
	}

	return &models.CountryDetails{Country: c, Hotels: hotels}, nil
}

func (s *Storage) AllCountries(context.Context) ([]models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedCountries(), nil
}

func (s *Storage) ListCountries(_ context.Context, params models.QueryParameters) (*models.PagedResult[models.Country], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	params = params.Normalize()
	all := s.sortedCountries()

	return &models.PagedResult[models.Country]{
		TotalCount:   len(all),
		PageNumber:   params.PageNumber,
		RecordNumber: params.PageSize,
		Items:        page(all, params),
	}, nil
}

func (s *Storage) UpdateCountry(_ context.Context, country *models.Country) (*models.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.countries[country.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if country.Version != 0 && country.Version != c.Version {
		return nil, storage.ErrConflict
	}

	c.Name = country.Name
	c.ShortName = country.ShortName
	c.Version++
	s.countries[c.ID] = c

	return &c, nil
}

func (s *Storage) DeleteCountry(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.countries[id]; !ok {
		return storage.ErrNotFound
	}

	delete(s.countries, id)
	for hid, h := range s.hotels {
		if h.CountryID == id {
			delete(s.hotels, hid)
		}
	}

	return nil
}

func (s *Storage) CreateHotel(_ context.Context, hotel *models.Hotel) (*models.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.countries[hotel.CountryID]; !ok {
		return nil, storage.ErrForeignKey
	}

	s.nextHotelID++
	h := *hotel
	h.ID = s.nextHotelID
	h.Version = 1
	s.hotels[h.ID] = h

	return &h, nil
}

func (s *Storage) HotelByID(_ context.Context, id int64) (*models.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.hotels[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &h, nil
}

func (s *Storage) AllHotels(context.Context) ([]models.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedHotels(), nil
}

func (s *Storage) ListHotels(_ context.Context, params models.QueryParameters) (*models.PagedResult[models.Hotel], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	params = params.Normalize()
	all := s.sortedHotels()

	return &models.PagedResult[models.Hotel]{
		TotalCount:   len(all),
		PageNumber:   params.PageNumber,
		RecordNumber: params.PageSize,
		Items:        page(all, params),
	}, nil
}

func (s *Storage) UpdateHotel(_ context.Context, hotel *models.Hotel) (*models.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.hotels[hotel.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if hotel.Version != 0 && hotel.Version != h.Version {
		return nil, storage.ErrConflict
	}

	if _, ok := s.countries[hotel.CountryID]; !ok {
		return nil, storage.ErrForeignKey
	}

	h.Name = hotel.Name
	h.Address = hotel.Address
	h.Rating = hotel.Rating
	h.CountryID = hotel.CountryID
	h.Version++
	s.hotels[h.ID] = h

	return &h, nil
}

func (s *Storage) DeleteHotel(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.hotels[id]; !ok {
		return storage.ErrNotFound
	}

	delete(s.hotels, id)

	return nil
}

func (s *Storage) sortedCountries() []models.Country {
	out := make([]models.Country, 0, len(s.countries))
	for _, c := range s.countries {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func (s *Storage) sortedHotels() []models.Hotel {
	out := make([]models.Hotel, 0, len(s.hotels))
	for _, h := range s.hotels {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func page[T any](all []T, params models.QueryParameters) []T {
	if params.StartIndex >= len(all) {
		return []T{}
	}

	end := params.StartIndex + params.PageSize
	if end > len(all) {
		end = len(all)
	}

	return append([]T{}, all[params.StartIndex:end]...)
}
