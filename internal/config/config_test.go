package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, name := range []string{"OCLARIA_ENV", "OCLARIA_HTTP_ADDR", "PORT", "OCLARIA_CATALOG_PATH", "OPENAI_API_KEY", "OCLARIA_LLM_MODEL", "OCLARIA_LLM_TIMEOUT_SECONDS", "OCLARIA_API_URL"} {
		t.Setenv(name, "")
	}

	cfg := FromEnv()
	if cfg.HTTPAddr != ":8787" {
		t.Fatalf("expected default addr :8787, got %s", cfg.HTTPAddr)
	}
	if cfg.CatalogPath != "data/catalog.json" {
		t.Fatalf("unexpected catalog path: %s", cfg.CatalogPath)
	}
	if cfg.LLMModel != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %s", cfg.LLMModel)
	}
	if cfg.LLMTimeout() != 60*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.LLMTimeout())
	}
	if cfg.APIURL != "http://localhost:8787" {
		t.Fatalf("unexpected api url: %s", cfg.APIURL)
	}
}

func TestFromEnvHonorsLegacyPort(t *testing.T) {
	t.Setenv("OCLARIA_HTTP_ADDR", "")
	t.Setenv("PORT", "9000")
	if addr := FromEnv().HTTPAddr; addr != ":9000" {
		t.Fatalf("expected :9000, got %s", addr)
	}
}

func TestFromEnvExplicitAddrWinsOverPort(t *testing.T) {
	t.Setenv("OCLARIA_HTTP_ADDR", "127.0.0.1:8080")
	t.Setenv("PORT", "9000")
	if addr := FromEnv().HTTPAddr; addr != "127.0.0.1:8080" {
		t.Fatalf("expected 127.0.0.1:8080, got %s", addr)
	}
}

func TestFromEnvReadsValues(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "  sk-test  ")
	t.Setenv("OCLARIA_LLM_MODEL", "gpt-4o")
	t.Setenv("OCLARIA_LLM_TIMEOUT_SECONDS", "15")

	cfg := FromEnv()
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("expected trimmed key, got %q", cfg.OpenAIAPIKey)
	}
	if cfg.LLMModel != "gpt-4o" {
		t.Fatalf("unexpected model: %s", cfg.LLMModel)
	}
	if cfg.LLMTimeout() != 15*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.LLMTimeout())
	}
}

func TestIntOrDefaultRejectsGarbage(t *testing.T) {
	t.Setenv("OCLARIA_LLM_TIMEOUT_SECONDS", "not-a-number")
	if got := FromEnv().LLMTimeoutSec; got != 60 {
		t.Fatalf("expected fallback 60, got %d", got)
	}
	t.Setenv("OCLARIA_LLM_TIMEOUT_SECONDS", "0")
	if got := FromEnv().LLMTimeoutSec; got != 60 {
		t.Fatalf("expected fallback 60 for non-positive value, got %d", got)
	}
}
