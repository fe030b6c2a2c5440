package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"studybot/internal/capabilities"
	"studybot/internal/config"
	"studybot/internal/domain/services/llm"
	"studybot/internal/handler"
	"studybot/internal/repository"
	serviceLLM "studybot/internal/service/llm"
	"studybot/internal/service/llm/chat"
	"studybot/internal/service/llm/conversation"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logger, logFile, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"history_store", cfg.HistoryStore,
		"provider", cfg.Provider,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// History store (mongo, postgres, sqlite or redis)
	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	store, err := repository.OpenHistoryStore(connectCtx, cfg, logger)
	cancel()
	if err != nil {
		log.Fatalf("Failed to open history store: %v", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Error("history store close failed", "error", err)
		}
	}()

	// Model catalog
	capabilityRegistry, err := capabilities.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize capability registry: %v", err)
	}
	logger.Info("capability registry initialized")

	// Completion provider, built once and shared by all requests
	provider, err := serviceLLM.SetupProvider(cfg, capabilityRegistry, logger)
	if err != nil {
		log.Fatalf("Failed to setup LLM provider: %v", err)
	}

	messageBuilder := conversation.NewMessageBuilderService(llm.StudyAssistantPrompt, logger)
	chatService := chat.NewService(store, store, provider, messageBuilder, cfg.Model, logger)

	router := newRouter(routes{
		chat:   handler.NewChatHandler(chatService, logger),
		models: handler.NewModelsHandler(cfg, logger, capabilityRegistry),
		health: handler.NewHealthHandler(store, logger),
	}, cfg.CORSOrigins, logger)

	logger.Info("services initialized")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Completions can take longer than any fixed budget
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
}
