package capabilities

import "gopkg.in/yaml.v3"

// ModelCapabilities represents catalog metadata for a specific model
type ModelCapabilities struct {
	// Model identifier (set during YAML unmarshaling)
	ID string `yaml:"-" json:"id"`

	// Display information
	DisplayName string `yaml:"display_name" json:"display_name"`
	Description string `yaml:"description" json:"description"`

	// Limits
	ContextWindow int `yaml:"context_window" json:"context_window"`
	MaxOutput     int `yaml:"max_output" json:"max_output"`
}

// ProviderCapabilities represents all models for a provider
type ProviderCapabilities struct {
	Provider     string              `yaml:"provider" json:"provider"`
	DefaultModel string              `yaml:"default_model" json:"default_model"`
	Models       []ModelCapabilities `yaml:"-" json:"models"` // Ordered slice, populated by custom unmarshaler
}

// UnmarshalYAML implements custom YAML unmarshaling to preserve model order from YAML file
func (p *ProviderCapabilities) UnmarshalYAML(node *yaml.Node) error {
	// Decode scalar fields and the models map in one pass
	type rawProvider struct {
		Provider     string                       `yaml:"provider"`
		DefaultModel string                       `yaml:"default_model"`
		Models       map[string]ModelCapabilities `yaml:"models"`
	}
	var raw rawProvider
	if err := node.Decode(&raw); err != nil {
		return err
	}
	p.Provider = raw.Provider
	p.DefaultModel = raw.DefaultModel

	// Now extract model keys in YAML order and build the slice
	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].Value == "models" {
			modelsNode := node.Content[i+1]
			// modelsNode.Content alternates: key, value, key, value...
			for j := 0; j < len(modelsNode.Content); j += 2 {
				modelID := modelsNode.Content[j].Value
				if model, ok := raw.Models[modelID]; ok {
					model.ID = modelID
					p.Models = append(p.Models, model)
				}
			}
			break
		}
	}

	return nil
}
