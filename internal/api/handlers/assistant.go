package handlers

import (
	"net/http"
	"strings"

	"github.com/marketdesk/paper-trading-backend/internal/api/request"
	"github.com/marketdesk/paper-trading-backend/internal/assistant"
)

// AssistantHandler handles the scripted trading assistant chat.
type AssistantHandler struct{}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler() *AssistantHandler {
	return &AssistantHandler{}
}

// AssistantReplyResponse is one assistant chat turn.
type AssistantReplyResponse struct {
	Reply string `json:"reply"`
}

// Greeting returns the assistant's opening message.
//
// Endpoint: GET /api/assistant/greeting
func (h *AssistantHandler) Greeting(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, AssistantReplyResponse{Reply: assistant.Greeting})
}

// Message replies to one user chat message.
//
// Endpoint: POST /api/assistant/message
func (h *AssistantHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req request.AssistantMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": "message is required",
		})
		return
	}

	respondJSON(w, http.StatusOK, AssistantReplyResponse{Reply: assistant.Reply(req.Message)})
}
