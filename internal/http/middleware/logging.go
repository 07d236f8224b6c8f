package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	logctx "github.com/pribylovaa/hotel-listing-api/internal/pkg/log"
)

// Logging кладёт request-scoped логгер в контекст и пишет одну запись "http" на запрос:
// маршрут chi, пользователь (если токен принят), попадание в кэш ответов.
// 5xx пишутся уровнем Error, 4xx — Warn.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := l
			if rid := RequestIDFrom(r.Context()); rid != "" {
				reqLogger = reqLogger.With(slog.String("request_id", rid))
			}

			ctx, info := withRequestInfo(logctx.Into(r.Context(), reqLogger))
			r = r.WithContext(ctx)

			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			status := sw.code()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Duration("dur", time.Since(start)),
				slog.Int("bytes", sw.count),
			}

			if route := routePattern(r.Context()); route != "" {
				attrs = append(attrs, slog.String("route", route))
			}
			if info.userID != "" {
				attrs = append(attrs, logctx.UserID(info.userID))
			}
			if hit := w.Header().Get("X-Cache"); hit != "" {
				attrs = append(attrs, slog.String("cache", hit))
			}

			logctx.From(ctx).LogAttrs(ctx, levelFor(status), "http", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func routePattern(ctx context.Context) string {
	if rctx := chi.RouteContext(ctx); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
