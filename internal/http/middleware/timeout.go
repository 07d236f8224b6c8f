package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/pribylovaa/hotel-listing-api/internal/pkg/log"
)

// Timeout ограничивает время обработки запроса к хранилищу и сервису.
// Уже установленный deadline не продлевается. Значение <=0 делает мидлвар no-op.
// Если обработчик упёрся в deadline, это отмечается в логе (ответ 504 пишет сам обработчик).
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if _, ok := ctx.Deadline(); !ok {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d)
				defer cancel()
			}

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				logctx.From(ctx).Warn("request_deadline_exceeded",
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", d),
				)
			}
		})
	}
}
