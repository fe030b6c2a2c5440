package config

const (
	// DefaultHistoryLimit is the number of turns returned by the history
	// endpoint when no limit is given.
	DefaultHistoryLimit = 50

	// MaxHistoryLimit caps the limit query parameter of the history endpoint.
	// Larger requests are clamped rather than rejected.
	MaxHistoryLimit = 500
)
