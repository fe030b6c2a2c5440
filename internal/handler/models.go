package handler

import (
	"log/slog"
	"net/http"

	"studybot/internal/capabilities"
	"studybot/internal/config"
	"studybot/internal/httputil"
)

// ModelsHandler handles HTTP requests for the model catalog
type ModelsHandler struct {
	config   *config.Config
	logger   *slog.Logger
	registry *capabilities.Registry
}

// NewModelsHandler creates a new models handler
func NewModelsHandler(cfg *config.Config, logger *slog.Logger, registry *capabilities.Registry) *ModelsHandler {
	return &ModelsHandler{
		config:   cfg,
		logger:   logger,
		registry: registry,
	}
}

// ModelsResponse is the body of GET /models
type ModelsResponse struct {
	Provider     string                           `json:"provider"`
	ActiveModel  string                           `json:"active_model"`
	DefaultModel string                           `json:"default_model"`
	Models       []capabilities.ModelCapabilities `json:"models"`
}

// GetModels returns the catalog of the configured provider
// GET /models
func (h *ModelsHandler) GetModels(w http.ResponseWriter, r *http.Request) {
	provider, err := h.registry.GetProvider(h.config.Provider)
	if err != nil {
		h.logger.Error("model catalog lookup failed", "provider", h.config.Provider, "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	models := provider.Models
	if models == nil {
		models = []capabilities.ModelCapabilities{}
	}

	httputil.RespondJSON(w, http.StatusOK, ModelsResponse{
		Provider:     h.config.Provider,
		ActiveModel:  h.config.Model,
		DefaultModel: provider.DefaultModel,
		Models:       models,
	})
}
