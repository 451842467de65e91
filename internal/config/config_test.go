package config

import (
	"testing"
	"time"
)

func setRequiredKeys(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "sk-test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredKeys(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Storage.Type != "memory" {
		t.Errorf("expected default storage memory, got %q", cfg.Storage.Type)
	}
	if cfg.RateLimit.Headlines.Requests != 30 || cfg.RateLimit.Headlines.Window != time.Hour {
		t.Errorf("unexpected headlines rule: %+v", cfg.RateLimit.Headlines)
	}
	if cfg.RateLimit.Generation.Requests != 20 || cfg.RateLimit.Generation.Window != time.Hour {
		t.Errorf("unexpected generation rule: %+v", cfg.RateLimit.Generation)
	}
	if cfg.Cache.DecoyTTL != 24*time.Hour {
		t.Errorf("expected 24h decoy TTL, got %v", cfg.Cache.DecoyTTL)
	}
	if cfg.Sweep.Schedule != "0 * * * *" {
		t.Errorf("expected hourly sweep schedule, got %q", cfg.Sweep.Schedule)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("expected default model, got %q", cfg.OpenAI.Model)
	}
}

func TestLoad_MissingOpenAIKeyIsFatal(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when OPENAI_API_KEY is missing")
	}
}

func TestLoad_MissingNewsKeyIsAllowed(t *testing.T) {
	setRequiredKeys(t)
	t.Setenv("NEWS_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("headlines path must degrade, not fail: %v", err)
	}
	if cfg.News.APIKey != "" {
		t.Errorf("expected empty news key, got %q", cfg.News.APIKey)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredKeys(t)
	t.Setenv("GENERATION_RATE_LIMIT", "5")
	t.Setenv("GENERATION_RATE_WINDOW_SECONDS", "60")
	t.Setenv("DECOY_CACHE_TTL_HOURS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RateLimit.Generation.Requests != 5 || cfg.RateLimit.Generation.Window != time.Minute {
		t.Errorf("unexpected generation rule: %+v", cfg.RateLimit.Generation)
	}
	if cfg.Cache.DecoyTTL != 2*time.Hour {
		t.Errorf("expected 2h TTL, got %v", cfg.Cache.DecoyTTL)
	}
}

func TestLoad_InvalidNumbers(t *testing.T) {
	setRequiredKeys(t)
	t.Setenv("HEADLINES_RATE_LIMIT", "lots")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric rate limit")
	}
}

func TestLoad_NonPositiveRateLimit(t *testing.T) {
	setRequiredKeys(t)
	t.Setenv("GENERATION_RATE_LIMIT", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero rate limit")
	}
}
