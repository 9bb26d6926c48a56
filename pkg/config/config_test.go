package config

import (
	"log/slog"
	"os"
	"testing"
	"time"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// Setenv restores the original value on cleanup
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "STORE_DRIVER", "MONGO_URI", "MONGO_DB", "PORT", "SHUTDOWN_TIMEOUT", "LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.StoreDriver != StoreMongo {
		t.Errorf("StoreDriver = %q", cfg.StoreDriver)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDB != "catalog" {
		t.Errorf("MongoDB = %q", cfg.MongoDB)
	}
	if cfg.Addr() != ":3000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("MONGO_DB", "shop")
	t.Setenv("PORT", "8080")
	t.Setenv("UPLOAD_DIR", "/var/uploads")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MongoURI != "mongodb://mongo:27017" || cfg.MongoDB != "shop" {
		t.Errorf("mongo settings = %q/%q", cfg.MongoURI, cfg.MongoDB)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.UploadDir != "/var/uploads" {
		t.Errorf("UploadDir = %q", cfg.UploadDir)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed duration")
	}
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown store driver")
	}
}
