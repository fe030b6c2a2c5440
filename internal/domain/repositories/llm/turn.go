package llm

import "context"

// HistoryStore is the full history store contract implemented by every backend
// (mongo, postgres, sqlite, redis). Implementations must be safe for concurrent use.
type HistoryStore interface {
	TurnReader
	TurnWriter

	// Ping verifies the backend is reachable
	Ping(ctx context.Context) error

	// Close releases the underlying connection(s)
	Close(ctx context.Context) error
}
