package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/pribylovaa/hotel-listing-api/internal/cache"
	"github.com/pribylovaa/hotel-listing-api/internal/http/handlers"
	"github.com/pribylovaa/hotel-listing-api/internal/http/middleware"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
)

// DefaultBasePath — префикс версии API.
const DefaultBasePath = "/api/v1"

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	// BasePath — например, "/api/v1"; если пустой — используется DefaultBasePath.
	BasePath string

	Verifier middleware.TokenVerifier

	// Cache == nil отключает кэш ответов.
	Cache        cache.ResponseCache
	CacheMaxAge  time.Duration
	CacheMaxBody int

	CORSOrigins []string

	// Metrics == nil — без метрик (удобно в тестах).
	Metrics *middleware.Metrics

	HealthChecks []handlers.HealthCheck
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc handlers.Service, opts Options) http.Handler {
	if opts.BasePath == "" {
		opts.BasePath = DefaultBasePath
	}

	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.RequestID(),          // до логирования, чтобы id попал в логгер
		middleware.Logging(opts.Logger), // request-scoped логгер в контексте
		middleware.Recover(),            // внутри Logging: паника попадает в запись "http" как 500
	)
	if opts.Metrics != nil {
		root.Use(opts.Metrics.Middleware())
	}
	root.Use(
		cors.Handler(corsOptions(opts.CORSOrigins)),
		middleware.APIVersion(),
		middleware.CacheControl(opts.CacheMaxAge),
		middleware.ResponseCache(opts.Cache, middleware.ResponseCacheOptions{
			TTL:         opts.CacheMaxAge,
			MaxBodySize: opts.CacheMaxBody,
		}),
		middleware.Authenticate(opts.Verifier),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout))
	}

	h := handlers.New(svc, opts.BasePath)

	root.Get("/health", handlers.Health(opts.Timeout, opts.HealthChecks...))
	root.Get("/healthcheck", handlers.Health(opts.Timeout, handlers.Tagged(handlers.TagCustom, opts.HealthChecks)...))
	root.Get("/database-healthcheck", handlers.Health(opts.Timeout, handlers.Tagged(handlers.TagDatabase, opts.HealthChecks)...))

	sub := chi.NewRouter()
	registerRoutes(sub, h)
	root.Mount(opts.BasePath, sub)

	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	authorized := middleware.RequireAuth()
	admin := middleware.RequireRole(models.RoleAdministrator)

	// account: ответы несут токены, кэшировать их нельзя
	r.Route("/account", func(r chi.Router) {
		r.Use(middleware.NoStore())
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refreshtoken", h.RefreshToken)
	})

	// countries
	r.Route("/countries", func(r chi.Router) {
		r.Get("/all", h.AllCountries)
		r.Get("/", h.ListCountries)
		r.Get("/{id}", h.GetCountry)
		r.With(authorized).Post("/", h.CreateCountry)
		r.With(authorized).Put("/{id}", h.UpdateCountry)
		r.With(admin).Delete("/{id}", h.DeleteCountry)
	})

	// hotels
	r.Route("/hotels", func(r chi.Router) {
		r.Get("/all", h.AllHotels)
		r.Get("/", h.ListHotels)
		r.Get("/{id}", h.GetHotel)
		r.With(authorized).Post("/", h.CreateHotel)
		r.With(authorized).Put("/{id}", h.UpdateHotel)
		r.With(admin).Delete("/{id}", h.DeleteHotel)
	})
}

// corsOptions — политика CORS: пустой список или "*" разрешают любой origin.
func corsOptions(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-Id", "api-supported-versions", "Location"},
	}
}
