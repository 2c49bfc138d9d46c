package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every storefront environment variable.
const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Persistence backend identifiers.
const (
	PersistenceBackendRedis  = "redis"
	PersistenceBackendSQLite = "sqlite"
)

type Config struct {
	App         AppConfig
	Catalog     CatalogConfig
	Persistence PersistenceConfig
	Redis       RedisConfig
	Cache       CacheConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Persistence.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" default:"dev"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CatalogConfig points the engine at the remote product catalog.
type CatalogConfig struct {
	BaseURL string        `envconfig:"STOREFRONT_CATALOG_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"STOREFRONT_CATALOG_TIMEOUT" default:"10s"`
}

// PersistenceConfig selects the durable mirror backing the cart state.
type PersistenceConfig struct {
	Backend string `envconfig:"STOREFRONT_PERSISTENCE_BACKEND" default:"sqlite"`
}

func (p PersistenceConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(p.Backend)) {
	case PersistenceBackendRedis, PersistenceBackendSQLite:
		return nil
	}
	return fmt.Errorf("unknown persistence backend %q", p.Backend)
}

// IsRedis reports whether the redis backend is selected.
func (p PersistenceConfig) IsRedis() bool {
	return strings.EqualFold(strings.TrimSpace(p.Backend), PersistenceBackendRedis)
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CacheConfig configures the sqlite snapshot mirror.
type CacheConfig struct {
	Path string `envconfig:"STOREFRONT_CACHE_PATH" default:"storefront.db"`
}
