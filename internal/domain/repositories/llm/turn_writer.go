package llm

import (
	"context"

	"studybot/internal/domain/models/llm"
)

// TurnWriter defines write operations for conversation history
type TurnWriter interface {
	// InsertTurn appends a single turn to the user's history
	// The turn's ID and Timestamp must already be set by the caller
	InsertTurn(ctx context.Context, turn *llm.ChatTurn) error
}
