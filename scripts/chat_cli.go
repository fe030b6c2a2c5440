//go:build ignore

// Interactive terminal client for the study assistant.
// Usage: go run scripts/chat_cli.go [-user alice]
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"studybot/internal/capabilities"
	"studybot/internal/config"
	llmDomain "studybot/internal/domain/services/llm"
	"studybot/internal/repository"
	llmService "studybot/internal/service/llm"
	"studybot/internal/service/llm/chat"
	"studybot/internal/service/llm/conversation"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

type CLI struct {
	ctx     context.Context
	chatSvc llmDomain.ChatService
	scanner *bufio.Scanner
	userID  string
	logger  *slog.Logger
}

// setupLogger writes debug logs to a timestamped file so the terminal stays readable
func setupLogger() (*slog.Logger, *os.File, error) {
	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFile, err := os.Create(filepath.Join(logsDir, fmt.Sprintf("chat_cli_%s.log", timestamp)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	return logger, logFile, nil
}

func fail(format string, args ...any) {
	fmt.Printf("%s❌ "+format+"%s\n", append(append([]any{colorRed}, args...), colorReset)...)
	os.Exit(1)
}

func main() {
	userID := flag.String("user", "cli-student", "User ID whose history the session reads and extends")
	flag.Parse()

	_ = godotenv.Load()

	logger, logFile, err := setupLogger()
	if err != nil {
		fmt.Printf("Failed to setup logger: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger.Info("session started", "log_file", logFile.Name(), "user_id", *userID)

	cfg := config.Load()
	ctx := context.Background()

	store, err := repository.OpenHistoryStore(ctx, cfg, logger)
	if err != nil {
		fail("Failed to open history store: %v", err)
	}
	defer store.Close(ctx)

	catalog, err := capabilities.NewRegistry()
	if err != nil {
		fail("Failed to load model catalog: %v", err)
	}

	provider, err := llmService.SetupProvider(cfg, catalog, logger)
	if err != nil {
		fail("Failed to setup provider: %v", err)
	}

	builder := conversation.NewMessageBuilderService(llmDomain.StudyAssistantPrompt, logger)

	cli := &CLI{
		ctx:     ctx,
		chatSvc: chat.NewService(store, store, provider, builder, cfg.Model, logger),
		scanner: bufio.NewScanner(os.Stdin),
		userID:  *userID,
		logger:  logger,
	}

	fmt.Printf("\n%s╔══════════════════════════════════════╗%s\n", colorCyan, colorReset)
	fmt.Printf("%s║       Study Assistant Chat CLI       ║%s\n", colorCyan, colorReset)
	fmt.Printf("%s╚══════════════════════════════════════╝%s\n", colorCyan, colorReset)
	fmt.Printf("%sUser: %s | Store: %s | Provider: %s (%s)%s\n", colorBlue, cli.userID, cfg.HistoryStore, provider.Name(), cfg.Model, colorReset)
	fmt.Println("Commands: /history [n], /user <id>, /quit")

	cli.run()
}

func (cli *CLI) run() {
	for {
		fmt.Printf("\n%s%s>%s ", colorGreen, cli.userID, colorReset)
		if !cli.scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(cli.scanner.Text())

		switch {
		case line == "":
			continue
		case line == "/quit" || line == "/exit":
			cli.logger.Info("CLI exiting")
			fmt.Printf("%s✓ Goodbye!%s\n", colorGreen, colorReset)
			return
		case strings.HasPrefix(line, "/history"):
			cli.showHistory(strings.TrimSpace(strings.TrimPrefix(line, "/history")))
		case strings.HasPrefix(line, "/user "):
			cli.userID = strings.TrimSpace(strings.TrimPrefix(line, "/user "))
			fmt.Printf("%s✓ Switched to user %s%s\n", colorGreen, cli.userID, colorReset)
		default:
			cli.ask(line)
		}
	}
}

func (cli *CLI) ask(question string) {
	fmt.Printf("%s⏳ Thinking...%s\n", colorBlue, colorReset)
	start := time.Now()

	resp, err := cli.chatSvc.HandleChat(cli.ctx, &llmDomain.ChatRequest{
		UserID:   cli.userID,
		Question: &question,
	})
	if err != nil {
		cli.logger.Error("chat failed", "error", err)
		fmt.Printf("%s❌ Error: %v%s\n", colorRed, err, colorReset)
		return
	}

	fmt.Printf("\n%s%s%s\n", colorCyan, resp.Response, colorReset)
	fmt.Printf("%s(%s)%s\n", colorYellow, time.Since(start).Round(time.Millisecond), colorReset)
}

func (cli *CLI) showHistory(arg string) {
	limit := config.DefaultHistoryLimit
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Printf("%s⚠ Invalid limit %q%s\n", colorYellow, arg, colorReset)
			return
		}
		limit = n
	}

	turns, err := cli.chatSvc.GetHistory(cli.ctx, cli.userID, limit)
	if err != nil {
		fmt.Printf("%s❌ Error: %v%s\n", colorRed, err, colorReset)
		return
	}
	if len(turns) == 0 {
		fmt.Printf("%sNo history yet for %s%s\n", colorYellow, cli.userID, colorReset)
		return
	}

	fmt.Println(strings.Repeat("─", 40))
	for _, t := range turns {
		color := colorGreen
		if t.Role != "user" {
			color = colorCyan
		}
		fmt.Printf("%s[%s] %s:%s %s\n", color, t.Timestamp.Local().Format("15:04:05"), t.Role, colorReset, t.Message)
	}
	fmt.Println(strings.Repeat("─", 40))
}
