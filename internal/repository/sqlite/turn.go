package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	_ "github.com/mattn/go-sqlite3"

	llmModels "studybot/internal/domain/models/llm"
	llmRepo "studybot/internal/domain/repositories/llm"
)

// SQLiteTurnRepository implements the HistoryStore interface on a local SQLite file.
// Timestamps are stored as unix nanoseconds.
type SQLiteTurnRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewTurnRepository opens (or creates) the database at path and initializes the schema.
func NewTurnRepository(ctx context.Context, path string, logger *slog.Logger) (llmRepo.HistoryStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db at %s: %w", path, err)
	}

	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db at %s: %w", path, err)
	}

	repo := &SQLiteTurnRepository{db: db, logger: logger}
	if err := repo.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

func (r *SQLiteTurnRepository) initSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS chat_turns (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			role TEXT NOT NULL CHECK (role IN ('user', 'assistant')),
			message TEXT NOT NULL,
			timestamp INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_chat_turns_user_timestamp ON chat_turns(user_id, timestamp);
	`)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// InsertTurn appends a turn to the user's history
func (r *SQLiteTurnRepository) InsertTurn(ctx context.Context, turn *llmModels.ChatTurn) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO chat_turns (id, user_id, role, message, timestamp) VALUES (?, ?, ?, ?, ?)`,
		turn.ID, turn.UserID, turn.Role, turn.Message, turn.Timestamp.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert turn: %w", err)
	}
	return nil
}

// FindHistory retrieves all turns for a user, oldest first
func (r *SQLiteTurnRepository) FindHistory(ctx context.Context, userID string) ([]llmModels.ChatTurn, error) {
	return r.queryTurns(ctx,
		`SELECT id, user_id, role, message, timestamp FROM chat_turns
		 WHERE user_id = ? ORDER BY timestamp ASC, rowid ASC`,
		userID,
	)
}

// FindRecent retrieves the latest limit turns for a user, oldest first
func (r *SQLiteTurnRepository) FindRecent(ctx context.Context, userID string, limit int) ([]llmModels.ChatTurn, error) {
	turns, err := r.queryTurns(ctx,
		`SELECT id, user_id, role, message, timestamp FROM chat_turns
		 WHERE user_id = ? ORDER BY timestamp DESC, rowid DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	slices.Reverse(turns)
	return turns, nil
}

func (r *SQLiteTurnRepository) queryTurns(ctx context.Context, query string, args ...any) ([]llmModels.ChatTurn, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	turns := make([]llmModels.ChatTurn, 0)
	for rows.Next() {
		var (
			turn  llmModels.ChatTurn
			nanos int64
		)
		if err := rows.Scan(&turn.ID, &turn.UserID, &turn.Role, &turn.Message, &nanos); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turn.Timestamp = time.Unix(0, nanos).UTC()
		turns = append(turns, turn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}
	return turns, nil
}

// Ping verifies the database file is reachable
func (r *SQLiteTurnRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database handle
func (r *SQLiteTurnRepository) Close(_ context.Context) error {
	return r.db.Close()
}
