package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	llmModels "studybot/internal/domain/models/llm"
	llmRepo "studybot/internal/domain/repositories/llm"
)

// Exchange is one question and its answer
type Exchange struct {
	Question string
	Answer   string
}

// SampleConversation is a short study session used for local development
var SampleConversation = []Exchange{
	{
		Question: "What is photosynthesis?",
		Answer:   "Photosynthesis is how plants turn light, water and carbon dioxide into glucose and oxygen. It happens mostly in the chloroplasts of leaf cells.",
	},
	{
		Question: "Where does the oxygen come from?",
		Answer:   "The oxygen comes from splitting water molecules during the light-dependent reactions, not from the carbon dioxide.",
	},
	{
		Question: "Can you give me a quick way to remember the equation?",
		Answer:   "Think \"6 and 6 make 1 and 6\": 6 CO2 + 6 H2O gives 1 C6H12O6 + 6 O2, powered by light.",
	},
}

// HistorySeeder writes sample conversations through the history store
type HistorySeeder struct {
	writer llmRepo.TurnWriter
	logger *slog.Logger
}

// NewHistorySeeder creates a new history seeder
func NewHistorySeeder(writer llmRepo.TurnWriter, logger *slog.Logger) *HistorySeeder {
	return &HistorySeeder{
		writer: writer,
		logger: logger,
	}
}

// StartBefore returns a start time that places every seeded turn in the past,
// the last one a second before now, so live turns written afterwards sort after them.
func StartBefore(now time.Time, exchanges []Exchange) time.Time {
	return now.Add(-time.Duration(2*len(exchanges)) * time.Second)
}

// SeedConversation appends each exchange as a user turn followed by an assistant turn.
// Timestamps start at start and advance one second per turn.
func (s *HistorySeeder) SeedConversation(ctx context.Context, userID string, exchanges []Exchange, start time.Time) (int, error) {
	ts := start.UTC().Truncate(time.Millisecond)
	written := 0

	for _, ex := range exchanges {
		for _, turn := range []llmModels.ChatTurn{
			{Role: llmModels.RoleUser, Message: ex.Question},
			{Role: llmModels.RoleAssistant, Message: ex.Answer},
		} {
			turn.ID = uuid.NewString()
			turn.UserID = userID
			turn.Timestamp = ts
			if err := s.writer.InsertTurn(ctx, &turn); err != nil {
				return written, fmt.Errorf("seed %s turn %d: %w", turn.Role, written+1, err)
			}
			written++
			ts = ts.Add(time.Second)
		}
	}

	s.logger.Info("conversation seeded", "user_id", userID, "turns", written)
	return written, nil
}
