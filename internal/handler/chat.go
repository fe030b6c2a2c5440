package handler

import (
	"log/slog"
	"net/http"

	"studybot/internal/config"
	llmModels "studybot/internal/domain/models/llm"
	llmSvc "studybot/internal/domain/services/llm"
	"studybot/internal/httputil"
)

// WelcomeMessage is returned by GET /
const WelcomeMessage = "Welcome to the Student assistant Chatbot API"

// ChatHandler handles chat HTTP requests
// Handlers only talk to the chat service, never to the history store
type ChatHandler struct {
	chatService llmSvc.ChatService
	logger      *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService llmSvc.ChatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Home returns the fixed greeting
// GET /
func (h *ChatHandler) Home(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"message": WelcomeMessage,
	})
}

// Chat answers a question in the context of the user's history
// POST /chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req llmSvc.ChatRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.chatService.HandleChat(r.Context(), &req)
	if err != nil {
		h.logger.Error("chat failed", "user_id", req.UserID, "error", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, response)
}

// HistoryResponse is the body of GET /chat/{user_id}/history
type HistoryResponse struct {
	UserID string               `json:"user_id"`
	Turns  []llmModels.ChatTurn `json:"turns"`
}

// History returns the user's most recent turns, oldest first
// GET /chat/{user_id}/history?limit=50
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := PathParam(w, r, "user_id", "User ID")
	if !ok {
		return
	}

	limit := QueryInt(r, "limit", config.DefaultHistoryLimit, 1, config.MaxHistoryLimit)

	turns, err := h.chatService.GetHistory(r.Context(), userID, limit)
	if err != nil {
		handleError(w, err)
		return
	}

	if turns == nil {
		turns = []llmModels.ChatTurn{}
	}

	httputil.RespondJSON(w, http.StatusOK, HistoryResponse{UserID: userID, Turns: turns})
}
