package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const (
	DefaultProvider = "vertex"
	DefaultOutput   = "diagram.mmd"
)

// Default model per provider, used when neither flag nor config names one.
var defaultModels = map[string]string{
	"vertex":    "gemini-2.5-flash",
	"openai":    "gpt-4o-mini",
	"anthropic": "claude-sonnet-4-0",
}

// Config holds provider selection and credentials for one run.
type Config struct {
	Provider   string `json:"provider,omitempty"`
	Model      string `json:"model,omitempty"`
	APIKey     string `json:"api_key,omitempty"`
	BaseURL    string `json:"base_url,omitempty"`
	Output     string `json:"output,omitempty"`
	ServerAddr string `json:"server_addr,omitempty"`
}

// Load reads an optional JSON config file and overlays LLM_PROVIDER from
// the environment. A missing file is not an error; a malformed one is.
// Callers apply flag overrides and then Finalize.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, err
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	return cfg, nil
}

// Finalize fills defaults and resolves the credential for the selected
// provider from its environment variable when the config carries none.
func (c *Config) Finalize() {
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
	if c.Model == "" {
		c.Model = defaultModels[c.Provider]
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv(KeyEnv(c.Provider))
	}
}

// KeyEnv maps a provider name to its credential variable.
func KeyEnv(provider string) string {
	switch provider {
	case "openai":
		return "OPENAI_API_KEY"
	case "anthropic":
		return "ANTHROPIC_API_KEY"
	default:
		return "VERTEX_API_KEY"
	}
}
