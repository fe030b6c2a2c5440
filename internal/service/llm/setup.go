package llm

import (
	"fmt"
	"log/slog"

	"studybot/internal/capabilities"
	"studybot/internal/config"
	domainllm "studybot/internal/domain/services/llm"
)

// SetupProvider builds the configured completion provider once at startup.
// The model is checked against the capability catalog; unknown models only
// produce a warning so newly released provider models stay usable. A model the
// provider rejects outright is replaced by the catalog default and cfg.Model updated.
func SetupProvider(cfg *config.Config, catalog *capabilities.Registry, logger *slog.Logger) (domainllm.LLMProvider, error) {
	provider, err := NewProviderFactory(cfg).GetProvider(cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("create provider %q: %w", cfg.Provider, err)
	}

	if !provider.SupportsModel(cfg.Model) {
		// Fall back to the catalog default, e.g. LLM_PROVIDER=lorem with the stock model name
		entry, err := catalog.GetProvider(cfg.Provider)
		if err != nil || !provider.SupportsModel(entry.DefaultModel) {
			return nil, fmt.Errorf("model %q is not supported by provider %s", cfg.Model, provider.Name())
		}
		logger.Warn("model not supported by provider, using catalog default",
			"provider", cfg.Provider,
			"requested", cfg.Model,
			"model", entry.DefaultModel,
		)
		cfg.Model = entry.DefaultModel
	}

	if _, err := catalog.GetModelCapabilities(cfg.Provider, cfg.Model); err != nil {
		logger.Warn("model not in capability catalog", "provider", cfg.Provider, "model", cfg.Model)
	}

	logger.Info("provider available", "name", provider.Name(), "model", cfg.Model)

	return provider, nil
}
