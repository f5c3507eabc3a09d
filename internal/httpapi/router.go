package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Thep1rince/oclaria-chatbot/internal/llm"
)

// Replier produces the assistant reply for one sanitized conversation.
type Replier interface {
	Reply(ctx context.Context, history []llm.Message) (llm.Message, error)
}

type Dependencies struct {
	Assistant Replier
	Logger    *slog.Logger
}

type router struct {
	deps Dependencies
}

func NewRouter(deps Dependencies) http.Handler {
	rt := &router{deps: deps}
	mux := http.NewServeMux()
	mux.HandleFunc("/", rt.handleRoot)
	mux.HandleFunc("/chat", rt.handleChat)
	return withCORS(mux)
}

// handleRoot doubles as the health check: a static confirmation string for
// anyone poking the base URL.
func (r *router) handleRoot(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		http.NotFound(w, req)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Oclaria chatbot is running"))
}

// The browser widget is served from the storefront origin, so the API stays
// wide open for cross-origin calls, matching the storefront deployment.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, req)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
