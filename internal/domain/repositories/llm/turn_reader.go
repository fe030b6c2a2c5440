package llm

import (
	"context"

	"studybot/internal/domain/models/llm"
)

// TurnReader defines read operations for conversation history
// Used by components that only need to query turns
type TurnReader interface {
	// FindHistory retrieves every turn stored for a user
	// Returns turns ordered by timestamp ascending, empty slice if none
	FindHistory(ctx context.Context, userID string) ([]llm.ChatTurn, error)

	// FindRecent retrieves the most recent limit turns for a user
	// Returns turns ordered by timestamp ascending
	FindRecent(ctx context.Context, userID string, limit int) ([]llm.ChatTurn, error)
}
