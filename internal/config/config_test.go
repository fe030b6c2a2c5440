package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "CORS_ORIGINS", "HISTORY_STORE", "MONGODB_DATABASE",
		"MONGODB_COLLECTION", "TABLE_PREFIX", "LLM_PROVIDER", "LLM_MODEL", "LOREM_DELAY", "LOG_MAX_FILES",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, "mongo", cfg.HistoryStore)
	assert.Equal(t, "chatbot_sa", cfg.MongoDBDatabase)
	assert.Equal(t, "Student_Users", cfg.MongoDBCollection)
	assert.Equal(t, "dev_", cfg.TablePrefix)
	assert.Equal(t, "groq", cfg.Provider)
	assert.Equal(t, "openai/gpt-oss-20b", cfg.Model)
	assert.Equal(t, time.Duration(0), cfg.LoremDelay)
	assert.Equal(t, 10, cfg.LogMaxFiles)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("TABLE_PREFIX", "")
	t.Setenv("HISTORY_STORE", "sqlite")
	t.Setenv("LLM_PROVIDER", "lorem")
	t.Setenv("LOREM_DELAY", "250ms")
	t.Setenv("LOG_MAX_FILES", "not-a-number")

	cfg := Load()

	assert.Equal(t, "prod_", cfg.TablePrefix)
	assert.Equal(t, "sqlite", cfg.HistoryStore)
	assert.Equal(t, "lorem", cfg.Provider)
	assert.Equal(t, 250*time.Millisecond, cfg.LoremDelay)
	assert.Equal(t, 10, cfg.LogMaxFiles, "invalid ints fall back to the default")
}

func TestGetTablePrefix(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		override string
		expected string
	}{
		{name: "prod", env: "prod", expected: "prod_"},
		{name: "test", env: "test", expected: "test_"},
		{name: "unknown falls back to dev", env: "staging", expected: "dev_"},
		{name: "explicit override wins", env: "prod", override: "custom_", expected: "custom_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TABLE_PREFIX", tt.override)
			assert.Equal(t, tt.expected, getTablePrefix(tt.env))
		})
	}
}

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"studybot-2026-01-01T00-00-00.log",
		"studybot-2026-01-02T00-00-00.log",
		"studybot-2026-01-03T00-00-00.log",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	require.NoError(t, cleanupOldLogs(dir, 2))

	remaining, err := filepath.Glob(filepath.Join(dir, "studybot-*.log"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, names[1]),
		filepath.Join(dir, names[2]),
	}, remaining)
}

func TestNewLogger_WritesToLogDir(t *testing.T) {
	dir := t.TempDir()
	logger, f, err := NewLogger(&Config{Environment: "test", LogDir: dir, LogMaxFiles: 5})
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	logger.Info("hello")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
