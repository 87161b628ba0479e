// Package config содержит логику чтения конфигурации сервиса обработки чеков.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Поддерживаемые хранилища баллов.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

const defaultPort = "8080"

var (
	// ErrUnknownStorage возвращается для неподдерживаемого STORAGE_BACKEND.
	ErrUnknownStorage = errors.New("unknown storage backend")
	// ErrMissingStorageAddress возвращается, если для хранилища не задан адрес подключения.
	ErrMissingStorageAddress = errors.New("storage address is not set")
)

// Config содержит параметры конфигурации сервиса обработки чеков.
type Config struct {
	Port               string   `env:"PORT"`
	StorageBackend     string   `env:"STORAGE_BACKEND"`
	DatabaseURI        string   `env:"DATABASE_URI"`
	RedisAddress       string   `env:"REDIS_ADDRESS"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Addr возвращает адрес, на котором слушает HTTP-сервер.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Переменные окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envPort := cfg.Port
	envStorage := cfg.StorageBackend
	envDatabaseURI := cfg.DatabaseURI
	envRedisAddress := cfg.RedisAddress

	flag.StringVar(&cfg.Port, "p", defaultPort, "port for HTTP server")
	flag.StringVar(&cfg.StorageBackend, "s", StorageMemory, "storage backend: memory, postgres or redis")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.RedisAddress, "r", "", "redis address")

	flag.Parse()

	if envPort != "" {
		cfg.Port = envPort
	}
	if envStorage != "" {
		cfg.StorageBackend = envStorage
	}
	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}
	if envRedisAddress != "" {
		cfg.RedisAddress = envRedisAddress
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURI == "" {
			return fmt.Errorf("%w: %s requires DATABASE_URI", ErrMissingStorageAddress, c.StorageBackend)
		}
	case StorageRedis:
		if c.RedisAddress == "" {
			return fmt.Errorf("%w: %s requires REDIS_ADDRESS", ErrMissingStorageAddress, c.StorageBackend)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, c.StorageBackend)
	}
	return nil
}
