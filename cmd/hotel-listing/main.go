package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/hotel-listing-api/internal/cache"
	"github.com/pribylovaa/hotel-listing-api/internal/config"
	"github.com/pribylovaa/hotel-listing-api/internal/credentials"
	apihttp "github.com/pribylovaa/hotel-listing-api/internal/http"
	"github.com/pribylovaa/hotel-listing-api/internal/http/handlers"
	"github.com/pribylovaa/hotel-listing-api/internal/http/middleware"
	"github.com/pribylovaa/hotel-listing-api/internal/models"
	"github.com/pribylovaa/hotel-listing-api/internal/service"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
	"github.com/pribylovaa/hotel-listing-api/internal/storage/memory"
	"github.com/pribylovaa/hotel-listing-api/internal/storage/postgres"
	"github.com/pribylovaa/hotel-listing-api/internal/token"
	"github.com/pribylovaa/hotel-listing-api/migrations"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// memoryURL в DATABASE_URL включает хранилище в памяти (данные теряются при рестарте).
const memoryURL = "memory://"

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting application", "env", cfg.Env)

	signer, err := token.New(token.Config{
		Key:      cfg.JWT.Key,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.AccessTokenTTL(),
	})
	if err != nil {
		log.Error("jwt_config_invalid", slog.String("err", err.Error()))
		os.Exit(1)
	}

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	str, err := openStorage(dbCtx, cfg.DB, log)
	dbCancel()
	if err != nil {
		log.Error("storage_open_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}
	defer str.Close()

	var respCache cache.ResponseCache
	if cfg.Redis.RedisURL != "" {
		redisCtx, redisCancel := context.WithTimeout(rootCtx, 5*time.Second)
		respCache, err = cache.NewRedisCache(redisCtx, cfg.Redis.RedisURL, cfg.Redis.Prefix)
		redisCancel()
		if err != nil {
			log.Error("redis_connect_failed", slog.String("err", err.Error()))
			str.Close()
			rootCancel()
			os.Exit(1)
		}
		defer func() { _ = respCache.Close() }()
		log.Info("redis_connected")
	} else {
		log.Info("response_cache_disabled")
	}

	srvc := service.New(str, signer, service.Options{
		Password: credentials.Policy{
			MinLength:          cfg.Password.MinLength,
			RequireDigit:       cfg.Password.RequireDigit,
			RequireLowercase:   cfg.Password.RequireLowercase,
			RequireUppercase:   cfg.Password.RequireUppercase,
			RequireNonAlphanum: cfg.Password.RequireNonAlphanum,
		},
		RefreshTTL: cfg.JWT.RefreshTokenTTL,
	})
	log.Info("service_initialized")

	checks := []handlers.HealthCheck{
		{Name: "database", Critical: true, Tags: []string{handlers.TagDatabase}, Check: srvc.Ping},
		{Name: "token_signer", Tags: []string{handlers.TagCustom}, Check: signerCheck(signer)},
	}
	if respCache != nil {
		checks = append(checks, handlers.HealthCheck{Name: "redis", Check: respCache.Ping})
	}

	apiHandler := apihttp.NewRouter(srvc, apihttp.Options{
		Logger:       log,
		Timeout:      cfg.Timeouts.Service,
		Verifier:     signer,
		Cache:        respCache,
		CacheMaxAge:  cfg.Cache.MaxAge,
		CacheMaxBody: cfg.Cache.MaxBodySize,
		CORSOrigins:  cfg.CORS.AllowedOrigins,
		Metrics:      middleware.NewMetrics(nil),
		HealthChecks: checks,
	})

	var ready int32 // 0 — not ready; 1 — ready

	opsMux := http.NewServeMux()
	opsMux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	opsMux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	opsMux.Handle("/health", handlers.Health(cfg.Timeouts.Service, checks...))
	opsMux.Handle("/healthcheck", handlers.Health(cfg.Timeouts.Service, handlers.Tagged(handlers.TagCustom, checks)...))
	opsMux.Handle("/database-healthcheck", handlers.Health(cfg.Timeouts.Service, handlers.Tagged(handlers.TagDatabase, checks)...))
	opsMux.Handle("/metrics", promhttp.Handler())

	opsAddr := cfg.Metrics.Addr()
	opsSrv := &http.Server{
		Addr:              opsAddr,
		Handler:           opsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("ops_listen_start", slog.String("addr", opsAddr))
		if err := opsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("ops_serve_failed", slog.String("err", err.Error()))
		}
	}()

	// Фоновая очистка просроченных refresh-секретов.
	startRefreshJanitor(rootCtx, srvc, log, cfg.Janitor.Interval, cfg.Janitor.Timeout)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           apiHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		str.Close()
		rootCancel()
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	_ = opsSrv.Shutdown(shutdownCtx)

	log.Info("service_stopped")
}

// openStorage подключает PostgreSQL и применяет миграции либо, для memory://,
// поднимает хранилище в памяти с теми же начальными данными.
func openStorage(ctx context.Context, cfg config.DBConfig, log *slog.Logger) (storage.Storage, error) {
	if cfg.DatabaseURL == memoryURL {
		log.Warn("storage_in_memory")
		return memory.NewSeeded(), nil
	}

	pg, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	log.Info("postgres_connected")

	if cfg.Migrate {
		if err := pg.Migrate(ctx, migrations.FS); err != nil {
			pg.Close()
			return nil, err
		}
		log.Info("postgres_migrated")
	}

	return pg, nil
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}

// startRefreshJanitor запускает фоновую задачу, которая периодически удаляет
// просроченные refresh-секреты.
func startRefreshJanitor(ctx context.Context, srvc *service.Service, log *slog.Logger, period, timeout time.Duration) {
	if period <= 0 {
		return
	}

	go func() {
		t := time.NewTicker(period)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				runCtx, cancel := context.WithTimeout(ctx, timeout)
				if err := srvc.PurgeExpiredRefreshTokens(runCtx); err != nil {
					log.Error("refresh_janitor_failed", slog.String("err", err.Error()))
				}
				cancel()
			}
		}
	}()
}

// signerCheck — проверка "custom": подписывает и сразу проверяет токен служебного пользователя.
func signerCheck(signer *token.Signer) func(context.Context) error {
	return func(context.Context) error {
		tok, _, err := signer.Issue(&models.User{ID: uuid.New(), Email: "healthcheck@localhost"}, nil, nil)
		if err != nil {
			return err
		}

		_, err = signer.Verify(tok)
		return err
	}
}
