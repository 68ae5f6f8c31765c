package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-agent/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// ChatHandler handles conversational turns over HTTP. Each request runs one
// full agent turn and blocks until the agent produces its reply, so the
// route must sit outside any aggressive timeout middleware.
type ChatHandler struct {
	agent ports.AgentService
}

// NewChatHandler creates a new ChatHandler with the given agent port.
func NewChatHandler(agent ports.AgentService) *ChatHandler {
	return &ChatHandler{agent: agent}
}

// Chat handles POST /api/v1/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sessionKey := req.SessionKey
	if sessionKey == "" {
		sessionKey = conversation.DefaultSessionKey
	}

	reply, err := h.agent.HandleUtterance(r.Context(), sessionKey, req.Message)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ChatResponse{
		Reply:      reply,
		SessionKey: sessionKey,
	})
}

// ResetSession handles DELETE /api/v1/chat/{session_key}.
func (h *ChatHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	sessionKey := sessionKeyParam(r)

	if err := h.agent.ResetSession(r.Context(), sessionKey); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
