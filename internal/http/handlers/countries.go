package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/pribylovaa/hotel-listing-api/internal/errors"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
)

func (h *Handlers) AllCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.svc.AllCountries(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, countriesFromModel(countries))
}

func (h *Handlers) ListCountries(w http.ResponseWriter, r *http.Request) {
	params, ok := queryParameters(r)
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	page, err := h.svc.ListCountries(r.Context(), params)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pagedFromModel(page, countriesFromModel))
}

func (h *Handlers) GetCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	details, err := h.svc.CountryDetails(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CountryDetailsDTO{
		CountryDTO: countryFromModel(&details.Country),
		Hotels:     hotelsFromModel(details.Hotels),
	})
}

func (h *Handlers) CreateCountry(w http.ResponseWriter, r *http.Request) {
	var in CreateCountryRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	created, err := h.svc.CreateCountry(r.Context(), &models.Country{Name: in.Name, ShortName: in.ShortName})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.Header().Set("Location", h.basePath+"/countries/"+strconv.FormatInt(created.ID, 10))
	writeJSON(w, http.StatusCreated, countryFromModel(created))
}

// UpdateCountry — PUT /countries/{id}: 204; 400 если id в теле не совпадает с путём.
func (h *Handlers) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	var in UpdateCountryRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	_, err := h.svc.UpdateCountry(r.Context(), id, &models.Country{
		ID:        in.ID,
		Name:      in.Name,
		ShortName: in.ShortName,
		Version:   in.Version,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	if err := h.svc.DeleteCountry(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
