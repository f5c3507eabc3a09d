package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Thep1rince/oclaria-chatbot/internal/assistant"
	"github.com/Thep1rince/oclaria-chatbot/internal/catalog"
	"github.com/Thep1rince/oclaria-chatbot/internal/llm"
)

type fakeReplier struct {
	calls int
	last  []llm.Message
	reply llm.Message
	err   error
}

func (f *fakeReplier) Reply(ctx context.Context, history []llm.Message) (llm.Message, error) {
	f.calls++
	f.last = history
	if f.err != nil {
		return llm.Message{}, f.err
	}
	return f.reply, nil
}

func newTestRouter(replier Replier) http.Handler {
	return NewRouter(Dependencies{
		Assistant: replier,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestChatEndpointReturnsReply(t *testing.T) {
	replier := &fakeReplier{reply: llm.Message{Role: llm.RoleAssistant, Content: "Salam!"}}
	handler := newTestRouter(replier)

	body, _ := json.Marshal(map[string]any{
		"messages": []llm.Message{{Role: llm.RoleUser, Content: "hello"}},
	})
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", res.Code, res.Body.String())
	}
	var payload struct {
		Reply llm.Message `json:"reply"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Reply.Role != llm.RoleAssistant || payload.Reply.Content != "Salam!" {
		t.Fatalf("unexpected reply payload: %+v", payload.Reply)
	}
	if replier.calls != 1 || len(replier.last) != 1 || replier.last[0].Content != "hello" {
		t.Fatalf("unexpected replier input: calls=%d last=%+v", replier.calls, replier.last)
	}
}

// Malformed bodies are not rejected: the pipeline runs with empty history.
func TestChatEndpointTreatsMalformedBodyAsEmptyHistory(t *testing.T) {
	replier := &fakeReplier{reply: llm.Message{Role: llm.RoleAssistant, Content: "cold open"}}
	handler := newTestRouter(replier)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}
	if replier.calls != 1 || len(replier.last) != 0 {
		t.Fatalf("expected one call with empty history, calls=%d history=%+v", replier.calls, replier.last)
	}
}

func TestChatEndpointCollapsesFailuresToGenericError(t *testing.T) {
	replier := &fakeReplier{err: context.DeadlineExceeded}
	handler := newTestRouter(replier)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"messages":[]}`))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", res.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(res.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] != "request failed" {
		t.Fatalf("error must stay generic, got %q", payload["error"])
	}
}

func TestChatEndpointRejectsWrongMethod(t *testing.T) {
	handler := newTestRouter(&fakeReplier{})
	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", res.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestRouter(&fakeReplier{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), "Oclaria chatbot is running") {
		t.Fatalf("unexpected health body: %s", res.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestRouter(&fakeReplier{})
	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", res.Code)
	}
	if res.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS allow-origin header")
	}
}

type scriptedCompleter struct {
	calls int
	sent  []llm.Message
}

func (s *scriptedCompleter) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	s.calls++
	s.sent = messages
	return "Wa3ra! The 50-pack is 135 MAD with free delivery 🚚", nil
}

// Full pipeline through the real assistant: a Darija hooks query must reach
// the completer with an authoritative fact in its prompt context.
func TestChatEndpointEndToEndInjectsFact(t *testing.T) {
	completer := &scriptedCompleter{}
	service := assistant.New(catalog.Catalog{
		Products:    map[string]catalog.Product{"hooks50": {Name: "Wall hooks x50", Price: 135}},
		CatalogPage: "https://oclaria.com/products",
	}, completer, slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler := newTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"messages":[{"role":"user","content":"3shbi crochet 50"}]}`))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", res.Code, res.Body.String())
	}
	if completer.calls != 1 {
		t.Fatalf("expected one completion call, got %d", completer.calls)
	}
	factSeen := false
	for _, m := range completer.sent {
		if m.Role == llm.RoleSystem && strings.Contains(m.Content, "135 MAD") && strings.Contains(m.Content, "free delivery") {
			factSeen = true
		}
	}
	if !factSeen {
		t.Fatalf("prompt context missing the injected fact: %+v", completer.sent)
	}
}
