// config предоставляет структуру конфигурации сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	JWT      JWTConfig      `yaml:"jwt"`
	Password PasswordConfig `yaml:"password"`
	DB       DBConfig       `yaml:"db"`
	Redis    RedisConfig    `yaml:"redis"`
	Cache    CacheConfig    `yaml:"cache"`
	CORS     CORSConfig     `yaml:"cors"`
	Janitor  JanitorConfig  `yaml:"janitor"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service  time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// HTTPConfig — публичный REST-сервер.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// MetricsConfig — отдельный HTTP для health-проверок и Prometheus.
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"8085"`
}

// Addr возвращает адрес в формате host:port.
func (m MetricsConfig) Addr() string { return net.JoinHostPort(m.Host, m.Port) }

// JWTConfig содержит параметры выпуска и валидации токенов.
type JWTConfig struct {
	Key               string        `yaml:"key" env:"JWT_KEY" env-required:"true"`
	Issuer            string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"HotelListingAPI"`
	Audience          string        `yaml:"audience" env:"JWT_AUDIENCE" env-default:"HotelListingAPIClient"`
	DurationInMinutes int           `yaml:"duration_in_minutes" env:"JWT_DURATION_IN_MINUTES" env-default:"10"`
	RefreshTokenTTL   time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"24h"`
}

// AccessTokenTTL возвращает время жизни access-токена.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	return time.Duration(j.DurationInMinutes) * time.Minute
}

// PasswordConfig — политика паролей при регистрации.
type PasswordConfig struct {
	MinLength          int  `yaml:"min_length" env:"PASSWORD_MIN_LENGTH" env-default:"6"`
	RequireDigit       bool `yaml:"require_digit" env:"PASSWORD_REQUIRE_DIGIT" env-default:"true"`
	RequireLowercase   bool `yaml:"require_lowercase" env:"PASSWORD_REQUIRE_LOWERCASE" env-default:"true"`
	RequireUppercase   bool `yaml:"require_uppercase" env:"PASSWORD_REQUIRE_UPPERCASE" env-default:"false"`
	RequireNonAlphanum bool `yaml:"require_non_alphanumeric" env:"PASSWORD_REQUIRE_NON_ALPHANUMERIC" env-default:"false"`
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DatabaseURL string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
	Migrate     bool   `yaml:"migrate" env:"DB_MIGRATE" env-default:"true"`
}

// RedisConfig — подключение к Redis для кэша ответов. Пустой URL отключает кэш.
type RedisConfig struct {
	RedisURL string `yaml:"redis_url" env:"REDIS_URL"`
	Prefix   string `yaml:"prefix" env:"REDIS_PREFIX" env-default:"hotel-listing:response:"`
}

// CacheConfig — параметры HTTP-кэширования.
type CacheConfig struct {
	MaxAge      time.Duration `yaml:"max_age" env:"CACHE_MAX_AGE" env-default:"10s"`
	MaxBodySize int           `yaml:"max_body_size" env:"CACHE_MAX_BODY_SIZE" env-default:"1024"`
}

// CORSConfig — политика CORS. По умолчанию разрешено всё.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

// JanitorConfig — периодическая очистка просроченных refresh-секретов.
type JanitorConfig struct {
	Interval time.Duration `yaml:"interval" env:"JANITOR_INTERVAL" env-default:"1h"`
	Timeout  time.Duration `yaml:"timeout" env:"JANITOR_TIMEOUT" env-default:"30s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла ENV-переменные накладываются поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
