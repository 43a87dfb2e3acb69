package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML config file, applies defaults, and pulls API keys
// from the environment (a .env file is honored when present).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.Keys = loadKeys()
	return &cfg, nil
}

func loadKeys() Keys {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	keys := Keys{
		NvidiaAPIKey:     os.Getenv("NVIDIA_API_KEY"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
	}

	if raw := os.Getenv("GEMINI_API_KEYS"); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys.GeminiAPIKeys = append(keys.GeminiAPIKeys, k)
			}
		}
	}

	return keys
}
