package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/hotel-listing-api/internal/cache"
	logctx "github.com/pribylovaa/hotel-listing-api/internal/pkg/log"
)

// ResponseCacheOptions — параметры кэширования ответов.
type ResponseCacheOptions struct {
	TTL         time.Duration
	MaxBodySize int
}

// ResponseCache кэширует успешные ответы на анонимные GET-запросы.
// Ключ — путь и строка запроса с учётом регистра. Ответы больше MaxBodySize
// и ответы с Cache-Control: no-store не кэшируются.
// Ошибки Redis не ломают запрос: он обслуживается как обычно.
// c == nil делает мидлвар no-op.
func ResponseCache(c cache.ResponseCache, opts ResponseCacheOptions) Middleware {
	return func(next http.Handler) http.Handler {
		if c == nil || opts.TTL <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || r.Header.Get("Authorization") != "" {
				next.ServeHTTP(w, r)
				return
			}

			lg := logctx.From(r.Context())
			key := r.URL.RequestURI()

			e, ok, err := c.Get(r.Context(), key)
			if err != nil {
				lg.Warn("response_cache_get_failed", slog.String("key", key), slog.String("err", err.Error()))
			}

			if ok {
				if e.ContentType != "" {
					w.Header().Set("Content-Type", e.ContentType)
				}
				w.Header().Set("Content-Length", strconv.Itoa(len(e.Body)))
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(e.Status)
				_, _ = w.Write(e.Body)
				return
			}

			bw := &bufferingWriter{ResponseWriter: w, limit: opts.MaxBodySize}
			next.ServeHTTP(bw, r)

			if bw.status() != http.StatusOK || bw.overflow ||
				strings.Contains(w.Header().Get("Cache-Control"), "no-store") {
				return
			}

			entry := &cache.Entry{
				Status:      http.StatusOK,
				ContentType: w.Header().Get("Content-Type"),
				Body:        bw.buf.Bytes(),
			}

			if err := c.Set(r.Context(), key, entry, opts.TTL); err != nil {
				lg.Warn("response_cache_set_failed", slog.String("key", key), slog.String("err", err.Error()))
			}
		})
	}
}

// bufferingWriter пропускает ответ клиенту и параллельно копит тело до limit байт.
type bufferingWriter struct {
	http.ResponseWriter
	code     int
	limit    int
	buf      bytes.Buffer
	overflow bool
}

func (w *bufferingWriter) WriteHeader(code int) {
	if w.code == 0 {
		w.code = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *bufferingWriter) Write(p []byte) (int, error) {
	if w.code == 0 {
		w.code = http.StatusOK
	}

	if !w.overflow {
		if w.buf.Len()+len(p) > w.limit {
			w.overflow = true
			w.buf.Reset()
		} else {
			w.buf.Write(p)
		}
	}

	return w.ResponseWriter.Write(p)
}

func (w *bufferingWriter) status() int {
	if w.code == 0 {
		return http.StatusOK
	}
	return w.code
}
