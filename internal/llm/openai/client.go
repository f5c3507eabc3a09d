package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"

	"github.com/Thep1rince/oclaria-chatbot/internal/llm"
)

const (
	// Temperature and output cap are fixed product decisions: short, quick
	// sales replies.
	temperature     = 0.5
	maxOutputTokens = 220

	overloadedBackoff  = 5 * time.Second
	serverFaultBackoff = 1200 * time.Millisecond
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client wraps the upstream chat-completion API. SDK-level retries are
// disabled; the retry policy here is exactly one delayed retry on an
// overloaded (429) or server-fault (5xx) response, nothing else.
type Client struct {
	cfg    Config
	api    openai.Client
	logger *slog.Logger

	// Backoffs are fields so tests do not sleep for real.
	overloadedBackoff  time.Duration
	serverFaultBackoff time.Duration
}

func New(cfg Config, logger *slog.Logger) *Client {
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := []option.RequestOption{
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.Timeout),
	}
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}

	return &Client{
		cfg:                cfg,
		api:                openai.NewClient(opts...),
		logger:             logger,
		overloadedBackoff:  overloadedBackoff,
		serverFaultBackoff: serverFaultBackoff,
	}
}

func (c *Client) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	if requiresAPIKey(c.cfg.BaseURL) && strings.TrimSpace(c.cfg.APIKey) == "" {
		return "", fmt.Errorf("%w: missing API key", llm.ErrUnavailable)
	}

	text, err := c.askOnce(ctx, messages)
	if err == nil {
		return text, nil
	}

	var delay time.Duration
	switch {
	case errors.Is(err, llm.ErrOverloaded):
		delay = c.overloadedBackoff
	case errors.Is(err, llm.ErrServerFault):
		delay = c.serverFaultBackoff
	default:
		return "", err
	}

	c.logger.Warn("completion failed, retrying once", "error", err, "backoff", delay)
	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return c.askOnce(ctx, messages)
}

func (c *Client) askOnce(ctx context.Context, messages []llm.Message) (string, error) {
	start := time.Now()
	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.cfg.Model),
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxOutputTokens),
		Messages:    toParams(messages),
	})
	if err != nil {
		return "", classify(err)
	}
	c.logger.Info("completion call finished", "model", c.cfg.Model, "latency_ms", time.Since(start).Milliseconds())
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// classify maps upstream status codes onto the retryable sentinel classes;
// everything else (auth, bad request) propagates untouched.
func classify(err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	switch {
	case apiErr.StatusCode == 429:
		return fmt.Errorf("%w: %v", llm.ErrOverloaded, err)
	case apiErr.StatusCode >= 500 && apiErr.StatusCode < 600:
		return fmt.Errorf("%w: %v", llm.ErrServerFault, err)
	default:
		return err
	}
}

func toParams(messages []llm.Message) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case llm.RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		case llm.RoleAssistant:
			params = append(params, openai.AssistantMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}
	return params
}

// Local endpoints (ollama and friends) are usable without a key.
func requiresAPIKey(baseURL string) bool {
	lower := strings.ToLower(baseURL)
	if strings.Contains(lower, "localhost") || strings.Contains(lower, "127.0.0.1") || strings.Contains(lower, "ollama") {
		return false
	}
	return true
}
