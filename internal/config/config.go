package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// History store configuration
	HistoryStore      string // "mongo", "postgres", "sqlite" or "redis"
	MongoDBURL        string
	MongoDBDatabase   string
	MongoDBCollection string
	DatabaseURL       string
	TablePrefix       string
	SQLitePath        string
	RedisURL          string
	// LLM Configuration
	Provider         string
	Model            string
	GroqAPIKey       string
	GroqBaseURL      string
	OpenRouterAPIKey string
	LoremDelay       time.Duration
	// Logging
	LogDir      string
	LogMaxFiles int
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8000"),
		Environment: env,
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		// History store
		HistoryStore:      getEnv("HISTORY_STORE", "mongo"),
		MongoDBURL:        getEnv("MONGODB_URL", ""),
		MongoDBDatabase:   getEnv("MONGODB_DATABASE", "chatbot_sa"),
		MongoDBCollection: getEnv("MONGODB_COLLECTION", "Student_Users"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		TablePrefix:       getTablePrefix(env),
		SQLitePath:        getEnv("SQLITE_PATH", "./data/studybot.db"),
		RedisURL:          getEnv("REDIS_URL", ""),
		// LLM Configuration
		Provider:         getEnv("LLM_PROVIDER", "groq"),
		Model:            getEnv("LLM_MODEL", "openai/gpt-oss-20b"),
		GroqAPIKey:       getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:      getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		LoremDelay:       getDuration("LOREM_DELAY", 0),
		// Logging
		LogDir:      getEnv("LOG_DIR", ""),
		LogMaxFiles: getInt("LOG_MAX_FILES", 10),
	}
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return d
}
