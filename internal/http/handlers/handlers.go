package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/service"
)

// Service — операции бизнес-слоя, которые вызывают хендлеры.
type Service interface {
	Register(ctx context.Context, in service.RegisterInput) ([]models.ValidationError, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	VerifyRefreshToken(ctx context.Context, req models.AuthResponse) (*models.AuthResponse, error)

	AllCountries(ctx context.Context) ([]models.Country, error)
	ListCountries(ctx context.Context, params models.QueryParameters) (*models.PagedResult[models.Country], error)
	CountryDetails(ctx context.Context, id int64) (*models.CountryDetails, error)
	CreateCountry(ctx context.Context, country *models.Country) (*models.Country, error)
	UpdateCountry(ctx context.Context, id int64, country *models.Country) (*models.Country, error)
	DeleteCountry(ctx context.Context, id int64) error

	AllHotels(ctx context.Context) ([]models.Hotel, error)
	ListHotels(ctx context.Context, params models.QueryParameters) (*models.PagedResult[models.Hotel], error)
	Hotel(ctx context.Context, id int64) (*models.Hotel, error)
	CreateHotel(ctx context.Context, hotel *models.Hotel) (*models.Hotel, error)
	UpdateHotel(ctx context.Context, id int64, hotel *models.Hotel) (*models.Hotel, error)
	DeleteHotel(ctx context.Context, id int64) error
}

// Handlers агрегирует зависимости REST-эндпойнтов.
type Handlers struct {
	svc Service
	// basePath — префикс для заголовка Location, например "/api/v1".
	basePath string
}

func New(svc Service, basePath string) *Handlers {
	return &Handlers{svc: svc, basePath: basePath}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// pathID разбирает {id} из пути; id должен быть положительным.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
