package chat

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"studybot/internal/config"
	"studybot/internal/domain"
	llmModels "studybot/internal/domain/models/llm"
	llmRepo "studybot/internal/domain/repositories/llm"
	llmSvc "studybot/internal/domain/services/llm"
	"studybot/internal/metrics"
)

// Service implements the ChatService interface
// Relays a question plus the user's history to the provider and records the exchange.
type Service struct {
	reader         llmRepo.TurnReader
	writer         llmRepo.TurnWriter
	provider       llmSvc.LLMProvider
	messageBuilder llmSvc.MessageBuilder
	model          string
	now            func() time.Time
	logger         *slog.Logger

	mu       sync.Mutex
	lastTurn time.Time
}

var notBlank = regexp.MustCompile(`\S`)

// userIDRules apply to every operation keyed by user_id
var userIDRules = []validation.Rule{
	validation.Required,
	validation.Match(notBlank).Error("cannot be blank"),
}

// NewService creates a new chat service.
// No per-user locking: concurrent requests for the same user may interleave
// their reads and writes, and history then reflects write order.
func NewService(
	reader llmRepo.TurnReader,
	writer llmRepo.TurnWriter,
	provider llmSvc.LLMProvider,
	messageBuilder llmSvc.MessageBuilder,
	model string,
	logger *slog.Logger,
) *Service {
	return &Service{
		reader:         reader,
		writer:         writer,
		provider:       provider,
		messageBuilder: messageBuilder,
		model:          model,
		now:            time.Now,
		logger:         logger,
	}
}

// WithClock replaces the time source used for turn timestamps
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// HandleChat runs one exchange: read history, call provider, write user turn, write assistant turn.
func (s *Service) HandleChat(ctx context.Context, req *llmSvc.ChatRequest) (*llmSvc.ChatResponse, error) {
	if err := s.validateChatRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}
	question := *req.Question

	history, err := s.reader.FindHistory(ctx, req.UserID)
	if err != nil {
		metrics.ChatExchanges.WithLabelValues("history_error").Inc()
		return nil, fmt.Errorf("load history: %w", err)
	}

	messages := s.messageBuilder.BuildMessages(history, question)
	var lastSeen time.Time
	if len(history) > 0 {
		lastSeen = history[len(history)-1].Timestamp
	}

	started := time.Now()
	resp, err := s.provider.Complete(ctx, &llmSvc.CompletionRequest{
		Model:    s.model,
		Messages: messages,
	})
	metrics.CompletionDuration.WithLabelValues(s.provider.Name()).Observe(time.Since(started).Seconds())
	if err != nil {
		// Nothing has been written yet, so a provider failure leaves history untouched
		metrics.ChatExchanges.WithLabelValues("provider_error").Inc()
		return nil, fmt.Errorf("completion: %w", err)
	}
	if strings.TrimSpace(resp.Content) == "" {
		metrics.ChatExchanges.WithLabelValues("provider_error").Inc()
		return nil, fmt.Errorf("completion: %w", domain.ErrEmptyCompletion)
	}

	// Once the answer exists the exchange is recorded even if the caller goes away
	writeCtx := context.WithoutCancel(ctx)

	userTurn := &llmModels.ChatTurn{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Role:      llmModels.RoleUser,
		Message:   question,
		Timestamp: s.timestamp(lastSeen),
	}
	if err := s.writer.InsertTurn(writeCtx, userTurn); err != nil {
		metrics.ChatExchanges.WithLabelValues("persist_error").Inc()
		return nil, fmt.Errorf("save user turn: %w", err)
	}
	metrics.TurnsPersisted.WithLabelValues(llmModels.RoleUser).Inc()

	assistantTurn := &llmModels.ChatTurn{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Role:      llmModels.RoleAssistant,
		Message:   resp.Content,
		Timestamp: s.timestamp(userTurn.Timestamp),
	}
	if err := s.writer.InsertTurn(writeCtx, assistantTurn); err != nil {
		// The user turn stays without its answer; accepted inconsistency window
		metrics.ChatExchanges.WithLabelValues("persist_error").Inc()
		s.logger.Error("assistant turn not saved after user turn",
			"user_id", req.UserID,
			"user_turn_id", userTurn.ID,
			"error", err,
		)
		return nil, fmt.Errorf("save assistant turn: %w", err)
	}
	metrics.TurnsPersisted.WithLabelValues(llmModels.RoleAssistant).Inc()
	metrics.ChatExchanges.WithLabelValues("ok").Inc()

	s.logger.Info("chat completed",
		"user_id", req.UserID,
		"provider", s.provider.Name(),
		"model", resp.Model,
		"history_turns", len(history),
		"input_tokens", resp.InputTokens,
		"output_tokens", resp.OutputTokens,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return &llmSvc.ChatResponse{Response: resp.Content}, nil
}

// GetHistory returns the user's most recent turns, oldest first.
func (s *Service) GetHistory(ctx context.Context, userID string, limit int) ([]llmModels.ChatTurn, error) {
	if err := validation.Validate(userID, userIDRules...); err != nil {
		return nil, &domain.ValidationError{Message: "user_id: " + err.Error() + "."}
	}

	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}
	limit = min(limit, config.MaxHistoryLimit)

	turns, err := s.reader.FindRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return turns, nil
}

// timestamp returns the current UTC time at millisecond precision, strictly after
// both floor and every timestamp this service issued before.
// Millisecond is the coarsest precision among the stores, and the truncated wall
// clock carries no monotonic reading, so it can repeat or step back.
func (s *Service) timestamp(floor time.Time) time.Time {
	ts := s.now().UTC().Truncate(time.Millisecond)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastTurn.After(floor) {
		floor = s.lastTurn
	}
	if !floor.IsZero() && !ts.After(floor) {
		ts = floor.UTC().Truncate(time.Millisecond).Add(time.Millisecond)
	}
	s.lastTurn = ts
	return ts
}

// validateChatRequest validates a chat request
func (s *Service) validateChatRequest(req *llmSvc.ChatRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, userIDRules...),
		validation.Field(&req.Question, validation.NotNil),
	)
}
