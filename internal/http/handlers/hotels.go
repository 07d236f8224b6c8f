package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/pribylovaa/hotel-listing-api/internal/errors"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
)

func (h *Handlers) AllHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.svc.AllHotels(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, hotelsFromModel(hotels))
}

func (h *Handlers) ListHotels(w http.ResponseWriter, r *http.Request) {
	params, ok := queryParameters(r)
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	page, err := h.svc.ListHotels(r.Context(), params)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pagedFromModel(page, hotelsFromModel))
}

func (h *Handlers) GetHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	hotel, err := h.svc.Hotel(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, hotelFromModel(hotel))
}

func (h *Handlers) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var in CreateHotelRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	created, err := h.svc.CreateHotel(r.Context(), &models.Hotel{
		Name:      in.Name,
		Address:   in.Address,
		Rating:    in.Rating,
		CountryID: in.CountryID,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.Header().Set("Location", h.basePath+"/hotels/"+strconv.FormatInt(created.ID, 10))
	writeJSON(w, http.StatusCreated, hotelFromModel(created))
}

func (h *Handlers) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	var in UpdateHotelRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	_, err := h.svc.UpdateHotel(r.Context(), id, &models.Hotel{
		ID:        in.ID,
		Name:      in.Name,
		Address:   in.Address,
		Rating:    in.Rating,
		CountryID: in.CountryID,
		Version:   in.Version,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	if err := h.svc.DeleteHotel(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
