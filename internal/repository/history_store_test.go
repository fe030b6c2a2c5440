package repository

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studybot/internal/config"
	"studybot/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenHistoryStore_SQLite(t *testing.T) {
	cfg := &config.Config{
		HistoryStore: StoreSQLite,
		SQLitePath:   filepath.Join(t.TempDir(), "nested", "studybot.db"),
	}

	store, err := OpenHistoryStore(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	defer store.Close(context.Background())

	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenHistoryStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		HistoryStore: StoreRedis,
		RedisURL:     "redis://" + mr.Addr(),
		TablePrefix:  "test_",
	}

	store, err := OpenHistoryStore(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	defer store.Close(context.Background())

	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenHistoryStore_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
		is      error
	}{
		{
			name:    "unknown backend",
			cfg:     &config.Config{HistoryStore: "cassandra"},
			wantErr: "unsupported history store",
			is:      domain.ErrUnsupportedStore,
		},
		{
			name:    "mongo without url",
			cfg:     &config.Config{HistoryStore: StoreMongo},
			wantErr: "MONGODB_URL",
		},
		{
			name:    "redis without url",
			cfg:     &config.Config{HistoryStore: StoreRedis},
			wantErr: "REDIS_URL",
		},
		{
			name:    "postgres without url",
			cfg:     &config.Config{HistoryStore: StorePostgres},
			wantErr: "DATABASE_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OpenHistoryStore(context.Background(), tt.cfg, discardLogger())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}
