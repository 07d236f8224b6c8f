package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	apierrors "github.com/pribylovaa/hotel-listing-api/internal/errors"
	logctx "github.com/pribylovaa/hotel-listing-api/internal/pkg/log"
	"github.com/pribylovaa/hotel-listing-api/internal/token"
)

// TokenVerifier проверяет access-токен.
type TokenVerifier interface {
	Verify(tokenStr string) (*token.Principal, error)
}

// Authenticate извлекает Bearer-токен из Authorization, проверяет его и кладёт
// token.Principal в контекст. Отсутствующий или невалидный токен оставляет запрос анонимным:
// решение об отказе принимают RequireAuth/RequireRole на конкретных маршрутах.
// v == nil оставляет все запросы анонимными.
func Authenticate(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		if v == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearer(r.Header.Get("Authorization"))
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			p, err := v.Verify(raw)
			if err != nil {
				logctx.From(r.Context()).Debug("bearer_rejected", slog.String("err", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithPrincipal(r.Context(), p)
			ctx = logctx.WithUser(ctx, p.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth пропускает только аутентифицированные запросы, иначе 401.
func RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if PrincipalFrom(r.Context()) == nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole пропускает только пользователей с ролью role: 401 без токена, 403 без роли.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := PrincipalFrom(r.Context())
			if p == nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}

			if !p.HasRole(role) {
				apierrors.WriteError(w, r, apierrors.ErrPermissionDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearer(auth string) string {
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
