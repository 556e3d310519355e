package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing JWT_SECRET")
	}
}

func TestLoad_MissingMongoURI(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MONGO_URI", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing MONGO_URI")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "dev" || cfg.IsProd() {
		t.Fatalf("expected dev env, got %q", cfg.Env)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.HTTPAddr)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("expected 1h token TTL, got %v", cfg.TokenTTL)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Fatalf("expected no default origins, got %v", cfg.AllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "prod")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://app.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsProd() {
		t.Fatalf("expected prod env")
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m TTL, got %v", cfg.TokenTTL)
	}
	want := []string{"http://localhost:5173", "https://app.example.com"}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != want[0] || cfg.AllowedOrigins[1] != want[1] {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_TTL", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
