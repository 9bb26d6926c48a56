package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	// Database. StoreDriver is "mongo" or "memory".
	StoreDriver         string        `env:"STORE_DRIVER" envDefault:"mongo"`
	MongoURI            string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB             string        `env:"MONGO_DB" envDefault:"catalog"`
	MongoConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`

	// Server
	Port            string        `env:"PORT" envDefault:"3000"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Uploads
	UploadDir       string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadMemory int64  `env:"MAX_UPLOAD_MEMORY" envDefault:"33554432"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	switch cfg.StoreDriver {
	case StoreMongo, StoreMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
