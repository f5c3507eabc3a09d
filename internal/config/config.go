package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string
	HTTPAddr    string
	CatalogPath string

	OpenAIAPIKey  string
	LLMBaseURL    string
	LLMModel      string
	LLMTimeoutSec int

	// APIURL is where the CLI chat client reaches a running server.
	APIURL string
}

func FromEnv() Config {
	return Config{
		Environment: stringOrDefault("OCLARIA_ENV", "development"),
		HTTPAddr:    httpAddr(),
		CatalogPath: stringOrDefault("OCLARIA_CATALOG_PATH", "data/catalog.json"),

		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		LLMBaseURL:    strings.TrimSpace(os.Getenv("OCLARIA_LLM_BASE_URL")),
		LLMModel:      stringOrDefault("OCLARIA_LLM_MODEL", "gpt-4o-mini"),
		LLMTimeoutSec: intOrDefault("OCLARIA_LLM_TIMEOUT_SECONDS", 60),

		APIURL: stringOrDefault("OCLARIA_API_URL", "http://localhost:8787"),
	}
}

func (c Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSec) * time.Second
}

// httpAddr honors the bare PORT variable the original deployment used before
// falling back to the default listen address.
func httpAddr() string {
	if addr := strings.TrimSpace(os.Getenv("OCLARIA_HTTP_ADDR")); addr != "" {
		return addr
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		return ":" + port
	}
	return ":8787"
}

func stringOrDefault(name, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func intOrDefault(name string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
