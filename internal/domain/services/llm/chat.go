package llm

import (
	"context"

	"studybot/internal/domain/models/llm"
)

// ChatService defines the business logic of the conversation relay
type ChatService interface {
	// HandleChat loads the user's history, asks the provider, persists the
	// question and the answer as two new turns and returns the answer.
	// The provider is called before any write.
	HandleChat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// GetHistory returns up to limit of the user's most recent turns,
	// oldest first. Read-only.
	GetHistory(ctx context.Context, userID string, limit int) ([]llm.ChatTurn, error)
}

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	UserID   string  `json:"user_id"`
	Question *string `json:"question"`
}

// ChatResponse is the body returned by POST /chat
type ChatResponse struct {
	Response string `json:"response"`
}
