package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("REDIS_URI", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("ENV", "")

	cfg := Load()

	if cfg.MongoURI != "mongodb://localhost:27017/social_assistant" {
		t.Errorf("unexpected default MongoURI: %q", cfg.MongoURI)
	}
	if cfg.Port != "8080" {
		t.Errorf("unexpected default Port: %q", cfg.Port)
	}
	if cfg.PostgresURI != "" {
		t.Errorf("PostgresURI should default to empty, got %q", cfg.PostgresURI)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("unexpected default origins: %v", cfg.AllowedOrigins)
	}
	if cfg.IsProduction() {
		t.Error("default environment must not be production")
	}
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://www.example.com ,")

	cfg := Load()

	want := []string{"https://app.example.com", "https://www.example.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("expected %d origins, got %v", len(want), cfg.AllowedOrigins)
	}
	for i, origin := range want {
		if cfg.AllowedOrigins[i] != origin {
			t.Errorf("origin[%d] = %q, want %q", i, cfg.AllowedOrigins[i], origin)
		}
	}
}

func TestLoadFrontendURLFallback(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_URL", "https://dashboard.example.com")

	cfg := Load()

	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://dashboard.example.com" {
		t.Errorf("FRONTEND_URL fallback not applied: %v", cfg.AllowedOrigins)
	}
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "Production")
	if !Load().IsProduction() {
		t.Error("ENV=Production should count as production")
	}
}
