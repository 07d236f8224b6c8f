package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	apierrors "github.com/pribylovaa/hotel-listing-api/internal/errors"
	logctx "github.com/pribylovaa/hotel-listing-api/internal/pkg/log"
)

var errPanic = errors.New("handler panic")

// Recover перехватывает panic обработчика и отвечает 500/internal.
// Детали паники не утекают на клиент; в лог попадают маршрут и пользователь.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				attrs := []slog.Attr{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("reason", rec),
				}
				if route := routePattern(r.Context()); route != "" {
					attrs = append(attrs, slog.String("route", route))
				}
				if info := requestInfoFrom(r.Context()); info != nil && info.userID != "" {
					attrs = append(attrs, logctx.UserID(info.userID))
				}

				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "panic", attrs...)
				apierrors.WriteError(w, r, errPanic)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
