package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"studybot/internal/config"
	"studybot/internal/repository"
	"studybot/internal/seed"
)

func main() {
	userID := flag.String("user", "demo-student", "User ID to seed the sample conversation for")
	schemaOnly := flag.Bool("schema-only", false, "Only set up the store schema and indexes, don't seed turns")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	logger, logFile, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (store: %s, environment: %s)", cfg.HistoryStore, cfg.Environment)
	} else {
		log.Printf("🌱 Seeding history (store: %s, environment: %s, user: %s)", cfg.HistoryStore, cfg.Environment, *userID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Opening the store creates tables and indexes when missing
	store, err := repository.OpenHistoryStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open history store: %v", err)
	}
	defer store.Close(context.Background())

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	n, err := seed.NewHistorySeeder(store, logger).SeedConversation(ctx, *userID, seed.SampleConversation, seed.StartBefore(time.Now(), seed.SampleConversation))
	if err != nil {
		log.Fatalf("Failed to seed conversation after %d turns: %v", n, err)
	}

	log.Printf("🎉 Seeding complete! %d turns written for %s", n, *userID)
}
