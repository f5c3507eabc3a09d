package app

import (
	"log/slog"
	"net/http"

	"github.com/Thep1rince/oclaria-chatbot/internal/assistant"
	"github.com/Thep1rince/oclaria-chatbot/internal/catalog"
	"github.com/Thep1rince/oclaria-chatbot/internal/config"
	"github.com/Thep1rince/oclaria-chatbot/internal/httpapi"
	"github.com/Thep1rince/oclaria-chatbot/internal/llm/openai"
)

// Runtime owns the process-lifetime state: the catalog loaded once at
// startup and the HTTP server wired around it. There is no other shared
// state; each request runs the pipeline independently.
type Runtime struct {
	cfg        config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

func New(cfg config.Config, logger *slog.Logger) *Runtime {
	if logger == nil {
		logger = slog.Default()
	}

	cat := catalog.Load(cfg.CatalogPath, logger.With("component", "catalog"))

	completer := openai.New(openai.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout(),
	}, logger.With("component", "llm"))

	service := assistant.New(cat, completer, logger.With("component", "assistant"))

	handler := httpapi.NewRouter(httpapi.Dependencies{
		Assistant: service,
		Logger:    logger.With("component", "httpapi"),
	})

	return &Runtime{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: handler,
		},
	}
}
