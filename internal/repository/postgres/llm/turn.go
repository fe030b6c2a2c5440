package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"studybot/internal/domain"
	llmModels "studybot/internal/domain/models/llm"
	llmRepo "studybot/internal/domain/repositories/llm"
	"studybot/internal/repository/postgres"
)

// PostgresTurnRepository implements the HistoryStore interface using PostgreSQL
type PostgresTurnRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	logger *slog.Logger
}

// NewTurnRepository creates a new PostgresTurnRepository
func NewTurnRepository(config *postgres.RepositoryConfig) llmRepo.HistoryStore {
	return &PostgresTurnRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// InsertTurn appends a turn to the user's history
func (r *PostgresTurnRepository) InsertTurn(ctx context.Context, turn *llmModels.ChatTurn) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, role, message, timestamp)
		VALUES ($1, $2, $3, $4, $5)
	`, r.tables.ChatTurns)

	_, err := r.pool.Exec(ctx, query,
		turn.ID,
		turn.UserID,
		turn.Role,
		turn.Message,
		turn.Timestamp,
	)
	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return fmt.Errorf("turn %s already exists: %w", turn.ID, err)
		}
		if postgres.IsPgCheckViolation(err) {
			return fmt.Errorf("role %q: %w", turn.Role, domain.ErrValidation)
		}
		return fmt.Errorf("insert turn: %w", err)
	}

	return nil
}

// FindHistory retrieves all turns for a user, oldest first
func (r *PostgresTurnRepository) FindHistory(ctx context.Context, userID string) ([]llmModels.ChatTurn, error) {
	query := fmt.Sprintf(`
		SELECT id::text, user_id, role, message, timestamp
		FROM %s
		WHERE user_id = $1
		ORDER BY timestamp ASC
	`, r.tables.ChatTurns)

	return r.queryTurns(ctx, query, userID)
}

// FindRecent retrieves the latest limit turns for a user, oldest first
func (r *PostgresTurnRepository) FindRecent(ctx context.Context, userID string, limit int) ([]llmModels.ChatTurn, error) {
	// Select newest first, then flip back to chronological order
	query := fmt.Sprintf(`
		SELECT id::text, user_id, role, message, timestamp FROM (
			SELECT id, user_id, role, message, timestamp
			FROM %s
			WHERE user_id = $1
			ORDER BY timestamp DESC
			LIMIT $2
		) recent
		ORDER BY timestamp ASC
	`, r.tables.ChatTurns)

	return r.queryTurns(ctx, query, userID, limit)
}

func (r *PostgresTurnRepository) queryTurns(ctx context.Context, query string, args ...interface{}) ([]llmModels.ChatTurn, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	turns := make([]llmModels.ChatTurn, 0)
	for rows.Next() {
		var turn llmModels.ChatTurn
		if err := rows.Scan(
			&turn.ID,
			&turn.UserID,
			&turn.Role,
			&turn.Message,
			&turn.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turn.Timestamp = turn.Timestamp.UTC()
		turns = append(turns, turn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}

	return turns, nil
}

// Ping verifies the pool can reach the database
func (r *PostgresTurnRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the underlying pool
func (r *PostgresTurnRepository) Close(_ context.Context) error {
	r.pool.Close()
	return nil
}
