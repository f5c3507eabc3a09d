package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Thep1rince/oclaria-chatbot/internal/catalog"
	"github.com/Thep1rince/oclaria-chatbot/internal/facts"
	"github.com/Thep1rince/oclaria-chatbot/internal/llm"
)

const (
	// detectionWindow is the slice of recent history the fact detector may
	// inspect; historyWindow is the smaller slice actually forwarded to
	// the completion API.
	detectionWindow = 8
	historyWindow   = 6
)

// Service orchestrates one chat turn: sanitize the incoming history, derive
// an optional product fact from the latest user turn, compose the prompt and
// call the completion client. Stateless across requests; the catalog is
// read-only.
type Service struct {
	catalog   catalog.Catalog
	completer llm.Completer
	logger    *slog.Logger
}

func New(cat catalog.Catalog, completer llm.Completer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{catalog: cat, completer: completer, logger: logger}
}

// Reply runs the full pipeline for one request. A nil or empty history is
// valid: the model is prompted with no conversation context.
func (s *Service) Reply(ctx context.Context, history []llm.Message) (llm.Message, error) {
	trimmed := sanitizeHistory(history)

	factStatement := ""
	if text, ok := latestUserText(trimmed); ok {
		if fact, found := facts.Detect(text); found {
			factStatement = facts.Render(fact)
			s.logger.Info("product fact injected", "family", fact.Family, "key", fact.Key)
		}
	}

	messages := s.compose(factStatement, tail(trimmed, historyWindow))

	reply, err := s.completer.Complete(ctx, messages)
	if err != nil {
		return llm.Message{}, fmt.Errorf("complete chat: %w", err)
	}

	return llm.Message{Role: llm.RoleAssistant, Content: formatReply(reply)}, nil
}

// sanitizeHistory drops client-supplied system messages (the server is the
// sole author of system instructions) and keeps the most recent detection
// window.
func sanitizeHistory(history []llm.Message) []llm.Message {
	kept := make([]llm.Message, 0, len(history))
	for _, m := range history {
		if m.Role == llm.RoleSystem {
			continue
		}
		kept = append(kept, m)
	}
	return tail(kept, detectionWindow)
}

// latestUserText returns the content of the most recent user-authored turn.
// Earlier turns are never re-scanned for facts.
func latestUserText(history []llm.Message) (string, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == llm.RoleUser {
			return history[i].Content, true
		}
	}
	return "", false
}

func tail(messages []llm.Message, n int) []llm.Message {
	if len(messages) <= n {
		return messages
	}
	return messages[len(messages)-n:]
}
