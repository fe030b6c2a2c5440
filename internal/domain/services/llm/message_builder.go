package llm

import (
	"studybot/internal/domain/models/llm"
)

// MessageBuilder builds provider messages from conversation history.
// The caller is responsible for loading the history using TurnReader.
type MessageBuilder interface {
	// BuildMessages returns the system instruction, then history (oldest first),
	// then the question as the final user message.
	BuildMessages(history []llm.ChatTurn, question string) []llm.Message
}
