package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	llmModels "studybot/internal/domain/models/llm"
	llmRepo "studybot/internal/domain/repositories/llm"
)

// RedisTurnRepository keeps each user's history in a sorted set scored by
// timestamp in unix milliseconds. Members are JSON-encoded turns.
type RedisTurnRepository struct {
	client    *redis.Client
	keyPrefix string
	logger    *slog.Logger
}

// NewTurnRepository connects to redisURL and verifies the connection.
func NewTurnRepository(ctx context.Context, redisURL, keyPrefix string, logger *slog.Logger) (llmRepo.HistoryStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return newWithClient(client, keyPrefix, logger), nil
}

func newWithClient(client *redis.Client, keyPrefix string, logger *slog.Logger) *RedisTurnRepository {
	return &RedisTurnRepository{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

// historyKey returns the key for a user's turn sorted set.
func (r *RedisTurnRepository) historyKey(userID string) string {
	return fmt.Sprintf("%schat:%s:turns", r.keyPrefix, userID)
}

// InsertTurn appends a turn to the user's history
func (r *RedisTurnRepository) InsertTurn(ctx context.Context, turn *llmModels.ChatTurn) error {
	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("encode turn: %w", err)
	}

	err = r.client.ZAdd(ctx, r.historyKey(turn.UserID), redis.Z{
		Score:  float64(turn.Timestamp.UnixMilli()),
		Member: string(data),
	}).Err()
	if err != nil {
		return fmt.Errorf("insert turn: %w", err)
	}
	return nil
}

// FindHistory retrieves all turns for a user, oldest first
func (r *RedisTurnRepository) FindHistory(ctx context.Context, userID string) ([]llmModels.ChatTurn, error) {
	return r.rangeTurns(ctx, userID, 0, -1)
}

// FindRecent retrieves the latest limit turns for a user, oldest first
func (r *RedisTurnRepository) FindRecent(ctx context.Context, userID string, limit int) ([]llmModels.ChatTurn, error) {
	if limit <= 0 {
		return []llmModels.ChatTurn{}, nil
	}
	return r.rangeTurns(ctx, userID, -int64(limit), -1)
}

func (r *RedisTurnRepository) rangeTurns(ctx context.Context, userID string, start, stop int64) ([]llmModels.ChatTurn, error) {
	results, err := r.client.ZRange(ctx, r.historyKey(userID), start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}

	turns := make([]llmModels.ChatTurn, 0, len(results))
	for _, data := range results {
		var turn llmModels.ChatTurn
		if err := json.Unmarshal([]byte(data), &turn); err != nil {
			r.logger.Warn("skipping undecodable turn", "user_id", userID, "error", err)
			continue
		}
		turn.Timestamp = turn.Timestamp.UTC()
		turns = append(turns, turn)
	}
	return turns, nil
}

// Ping checks the Redis connection.
func (r *RedisTurnRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (r *RedisTurnRepository) Close(_ context.Context) error {
	return r.client.Close()
}
