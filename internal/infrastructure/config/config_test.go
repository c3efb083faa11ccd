package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.TokenTTL() != time.Hour {
		t.Errorf("TokenTTL = %s, want 1h", cfg.TokenTTL())
	}
	if cfg.Postgres.URL == "" {
		t.Errorf("Postgres.URL default missing")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("TOKEN_TTL_MINUTES", "15")
	t.Setenv("DATABASE_URL", "postgres://app:app@db:5432/planner")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q, want production", cfg.Env)
	}
	if cfg.TokenTTL() != 15*time.Minute {
		t.Errorf("TokenTTL = %s, want 15m", cfg.TokenTTL())
	}
	if cfg.Postgres.URL != "postgres://app:app@db:5432/planner" {
		t.Errorf("Postgres.URL = %q", cfg.Postgres.URL)
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	// t.Setenv registers the restore; unset to exercise the required check.
	t.Setenv("JWT_SECRET", "placeholder")
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("Load succeeded without JWT_SECRET")
	}
}
