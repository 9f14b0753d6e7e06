package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults apply when no config file exists", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "unit-test-secret")

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
		}
		if cfg.Database.DBName != "campuscore" {
			t.Errorf("Database.DBName = %q, want campuscore", cfg.Database.DBName)
		}
		if cfg.JWT.Secret != "unit-test-secret" {
			t.Errorf("JWT.Secret = %q, want env value", cfg.JWT.Secret)
		}
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "unit-test-secret")

		configPath := filepath.Join(t.TempDir(), "config.yaml")
		yaml := `
server:
  port: "9090"
database:
  host: "db.internal"
  max_open_conns: 50
`
		if err := os.WriteFile(configPath, []byte(yaml), 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
		}
		if cfg.Database.Host != "db.internal" {
			t.Errorf("Database.Host = %q, want db.internal", cfg.Database.Host)
		}
		if cfg.Database.MaxOpenConns != 50 {
			t.Errorf("Database.MaxOpenConns = %d, want 50", cfg.Database.MaxOpenConns)
		}
	})

	t.Run("environment overrides yaml", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "unit-test-secret")
		t.Setenv("DB_HOST", "env-host")

		configPath := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(configPath, []byte("database:\n  host: \"yaml-host\"\n"), 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Database.Host != "env-host" {
			t.Errorf("Database.Host = %q, want env-host", cfg.Database.Host)
		}
	})

	t.Run("missing jwt secret is rejected", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("config without a JWT secret must not load")
		}
	})

	t.Run("bad duration is rejected", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "unit-test-secret")
		t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "soon")
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("invalid expiration must not load")
		}
	})
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "secret"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "campus"

	want := "postgres://app:secret@db:5433/campus?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("connection string = %q, want %q", got, want)
	}
}
