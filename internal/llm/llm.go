package llm

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable marks a completion client that is not configured to
	// reach its upstream.
	ErrUnavailable = errors.New("llm unavailable")
	// ErrOverloaded classifies a too-many-requests response from the
	// upstream; recovered by a single delayed retry.
	ErrOverloaded = errors.New("llm overloaded")
	// ErrServerFault classifies a 5xx response from the upstream;
	// recovered by a single short-delay retry.
	ErrServerFault = errors.New("llm server fault")
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn. Ordering is chronological; the server is
// the sole author of system-role messages.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer issues one chat-completion call for an ordered message list and
// returns the assistant text of the first choice.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
