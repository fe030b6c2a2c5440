package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"studybot/internal/handler"
	"studybot/internal/middleware"
)

// routes groups the handlers served by the API
type routes struct {
	chat   *handler.ChatHandler
	models *handler.ModelsHandler
	health *handler.HealthHandler
}

// newRouter registers all routes and wraps them in the middleware chain.
// Order: CORS → RequestID → Logging → Recovery → Metrics → Routes
func newRouter(rt routes, corsOrigins string, logger *slog.Logger) http.Handler {
	// Go 1.22+ enhanced patterns
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", rt.chat.Home)
	mux.HandleFunc("POST /chat", rt.chat.Chat)
	mux.HandleFunc("GET /chat/{user_id}/history", rt.chat.History)
	mux.HandleFunc("GET /models", rt.models.GetModels)
	mux.HandleFunc("GET /health", rt.health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	h := middleware.Chain(mux,
		middleware.RequestID,
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.Metrics,
	)

	return newCORS(corsOrigins).Handler(h)
}

// newCORS allows every origin, method and header with credentials.
// A bare "*" cannot be combined with credentials, so the origin is reflected instead.
func newCORS(origins string) *cors.Cors {
	opts := cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}

	if strings.TrimSpace(origins) == "*" {
		opts.AllowOriginFunc = func(string) bool { return true }
	} else {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				opts.AllowedOrigins = append(opts.AllowedOrigins, o)
			}
		}
	}

	return cors.New(opts)
}
