package conversation

import (
	"log/slog"

	llmModels "studybot/internal/domain/models/llm"
	llmSvc "studybot/internal/domain/services/llm"
)

// MessageBuilderService converts stored history into provider messages.
// Pure conversion: no data loading, no I/O.
type MessageBuilderService struct {
	systemPrompt string
	logger       *slog.Logger
}

// NewMessageBuilderService creates a builder that prefixes every conversation with systemPrompt.
func NewMessageBuilderService(systemPrompt string, logger *slog.Logger) llmSvc.MessageBuilder {
	return &MessageBuilderService{
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

// BuildMessages returns [system, history..., user question].
// History must already be ordered oldest first.
func (s *MessageBuilderService) BuildMessages(history []llmModels.ChatTurn, question string) []llmModels.Message {
	messages := make([]llmModels.Message, 0, len(history)+2)
	messages = append(messages, llmModels.Message{Role: llmModels.RoleSystem, Content: s.systemPrompt})

	for _, turn := range history {
		if turn.Role != llmModels.RoleUser && turn.Role != llmModels.RoleAssistant {
			// Stored data is expected to hold only user/assistant turns
			s.logger.Warn("skipping history turn with unexpected role",
				"turn_id", turn.ID,
				"role", turn.Role,
			)
			continue
		}
		messages = append(messages, turn.ToMessage())
	}

	messages = append(messages, llmModels.Message{Role: llmModels.RoleUser, Content: question})

	s.logger.Debug("built messages",
		"history_turns", len(history),
		"total_messages", len(messages),
	)

	return messages
}
