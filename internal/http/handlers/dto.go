package handlers

import (
	"github.com/pribylovaa/hotel-listing-api/internal/models"
)

// Входные/выходные модели REST. Имена полей в camelCase совпадают с тем,
// что ожидают существующие клиенты.

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ValidationErrorDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type RegisterResponse struct {
	Errors []ValidationErrorDTO `json:"errors"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse — ответ входа и тело/ответ обновления токена.
type AuthResponse struct {
	Token        string `json:"token"`
	UserID       string `json:"userId"`
	RefreshToken string `json:"refreshToken"`
}

type CountryDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Version   int64  `json:"version"`
}

type CountryDetailsDTO struct {
	CountryDTO
	Hotels []HotelDTO `json:"hotels"`
}

type CreateCountryRequest struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

// UpdateCountryRequest — Version == 0 отключает проверку версии.
type UpdateCountryRequest struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Version   int64  `json:"version"`
}

type HotelDTO struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Rating    *float64 `json:"rating"`
	CountryID int64    `json:"countryId"`
	Version   int64    `json:"version"`
}

type CreateHotelRequest struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Rating    *float64 `json:"rating"`
	CountryID int64    `json:"countryId"`
}

type UpdateHotelRequest struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Rating    *float64 `json:"rating"`
	CountryID int64    `json:"countryId"`
	Version   int64    `json:"version"`
}

type PagedResult[T any] struct {
	TotalCount   int `json:"totalCount"`
	PageNumber   int `json:"pageNumber"`
	RecordNumber int `json:"recordNumber"`
	Items        []T `json:"items"`
}

func authFromModel(a *models.AuthResponse) AuthResponse {
	return AuthResponse{Token: a.Token, UserID: a.UserID, RefreshToken: a.RefreshToken}
}

func validationErrorsFromModel(in []models.ValidationError) []ValidationErrorDTO {
	out := make([]ValidationErrorDTO, 0, len(in))
	for _, e := range in {
		out = append(out, ValidationErrorDTO{Code: e.Code, Description: e.Description})
	}

	return out
}

func countryFromModel(c *models.Country) CountryDTO {
	return CountryDTO{ID: c.ID, Name: c.Name, ShortName: c.ShortName, Version: c.Version}
}

func countriesFromModel(in []models.Country) []CountryDTO {
	out := make([]CountryDTO, 0, len(in))
	for i := range in {
		out = append(out, countryFromModel(&in[i]))
	}

	return out
}

func hotelFromModel(h *models.Hotel) HotelDTO {
	return HotelDTO{
		ID:        h.ID,
		Name:      h.Name,
		Address:   h.Address,
		Rating:    h.Rating,
		CountryID: h.CountryID,
		Version:   h.Version,
	}
}

func hotelsFromModel(in []models.Hotel) []HotelDTO {
	out := make([]HotelDTO, 0, len(in))
	for i := range in {
		out = append(out, hotelFromModel(&in[i]))
	}

	return out
}

func pagedFromModel[M, D any](p *models.PagedResult[M], conv func([]M) []D) PagedResult[D] {
	return PagedResult[D]{
		TotalCount:   p.TotalCount,
		PageNumber:   p.PageNumber,
		RecordNumber: p.RecordNumber,
		Items:        conv(p.Items),
	}
}
