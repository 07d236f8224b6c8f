package handlers

import (
	"net/http"
	"net/mail"
	"unicode/utf8"

	apierrors "github.com/pribylovaa/hotel-listing-api/internal/errors"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/service"
)

// Ограничения на пароль во входе. Политика регистрации настраивается отдельно.
const (
	loginPasswordMin = 6
	loginPasswordMax = 15
)

// Register — POST /account/register.
// Всегда 200 со списком нарушений (пустым при успехе); 400 только на неразборчивое тело.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in RegisterRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	verrs, err := h.svc.Register(r.Context(), service.RegisterInput{
		Email:     in.Email,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RegisterResponse{Errors: validationErrorsFromModel(verrs)})
}

// Login — POST /account/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in LoginRequest
	if err := decodeStrict(r, &in); err != nil || !validLogin(in) {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	resp, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authFromModel(resp))
}

// RefreshToken — POST /account/refreshtoken.
func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var in AuthResponse
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	resp, err := h.svc.VerifyRefreshToken(r.Context(), models.AuthResponse{
		Token:        in.Token,
		UserID:       in.UserID,
		RefreshToken: in.RefreshToken,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authFromModel(resp))
}

func validLogin(in LoginRequest) bool {
	addr, err := mail.ParseAddress(in.Email)
	if err != nil || addr.Address != in.Email {
		return false
	}

	n := utf8.RuneCountInString(in.Password)
	return n >= loginPasswordMin && n <= loginPasswordMax
}
