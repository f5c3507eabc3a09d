package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Thep1rince/oclaria-chatbot/internal/llm"
)

type chatRequest struct {
	Messages []llm.Message `json:"messages"`
}

type chatResponse struct {
	Reply llm.Message `json:"reply"`
}

func (r *router) handleChat(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	// A missing or malformed body is not an error: the pipeline runs with
	// an empty history and the model answers cold.
	var payload chatRequest
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		payload.Messages = nil
	}

	requestID := uuid.NewString()
	reply, err := r.deps.Assistant.Reply(req.Context(), payload.Messages)
	if err != nil {
		if r.deps.Logger != nil {
			r.deps.Logger.Error("chat request failed", "request_id", requestID, "error", err)
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "request failed"})
		return
	}

	if r.deps.Logger != nil {
		r.deps.Logger.Info("chat request served", "request_id", requestID, "history_len", len(payload.Messages))
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
