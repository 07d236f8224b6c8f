package middleware

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	apierrors "github.com/pribylovaa/hotel-listing-api/internal/errors"
)

// SupportedAPIVersions — значение заголовка api-supported-versions.
const SupportedAPIVersions = "1.0"

// Источники запрошенной версии API.
const (
	versionQueryParam = "api-version"
	versionHeader     = "X-Version"
	versionMediaParam = "ver"
)

// APIVersion сообщает клиенту поддерживаемые версии API и проверяет запрошенную.
// Версия читается из ?api-version=, заголовка X-Version и параметра ver медиатипа
// в Accept/Content-Type. Без явной версии действует 1.0.
// Неподдерживаемая версия или расхождение источников дают 400.
func APIVersion() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("api-supported-versions", SupportedAPIVersions)

			if err := checkAPIVersion(requestedVersions(r)); err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func checkAPIVersion(requested []string) error {
	var chosen string
	for _, v := range requested {
		v = canonicalVersion(v)
		if chosen != "" && v != chosen {
			return fmt.Errorf("ambiguous api version: %w", apierrors.ErrBadRequest)
		}
		chosen = v
	}

	if chosen != "" && chosen != SupportedAPIVersions {
		return fmt.Errorf("unsupported api version %q: %w", chosen, apierrors.ErrBadRequest)
	}

	return nil
}

// canonicalVersion приводит "1" к "1.0".
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.Contains(v, ".") {
		return v + ".0"
	}
	return v
}

func requestedVersions(r *http.Request) []string {
	var out []string

	for key, values := range r.URL.Query() {
		if !strings.EqualFold(key, versionQueryParam) {
			continue
		}
		for _, v := range values {
			if v != "" {
				out = append(out, v)
			}
		}
	}

	if v := r.Header.Get(versionHeader); v != "" {
		out = append(out, v)
	}

	for _, name := range []string{"Accept", "Content-Type"} {
		for _, value := range r.Header.Values(name) {
			for _, part := range strings.Split(value, ",") {
				_, params, err := mime.ParseMediaType(strings.TrimSpace(part))
				if err != nil {
					continue
				}
				if v := params[versionMediaParam]; v != "" {
					out = append(out, v)
				}
			}
		}
	}

	return out
}

// CacheControl выставляет "Cache-Control: public, max-age=N" и "Vary: Accept-Encoding" на все ответы.
func CacheControl(maxAge time.Duration) Middleware {
	value := "public, max-age=" + strconv.Itoa(int(maxAge/time.Second))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", value)
			w.Header().Add("Vary", "Accept-Encoding")
			next.ServeHTTP(w, r)
		})
	}
}

// NoStore запрещает кэширование ответа: ставится на маршруты, отдающие токены.
// Внешний CacheControl уже выставил public, поэтому значение перезаписывается.
func NoStore() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			w.Header().Set("Pragma", "no-cache")
			next.ServeHTTP(w, r)
		})
	}
}
