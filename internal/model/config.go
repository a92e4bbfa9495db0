package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server" json:"server"`
	Upload      UploadConfig      `yaml:"upload" json:"upload"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Rules       RulesConfig       `yaml:"rules" json:"rules"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// UploadConfig holds file upload and retention settings
type UploadConfig struct {
	Dir           string        `yaml:"dir" json:"dir"`
	MaxFileBytes  int64         `yaml:"max_file_bytes" json:"max_file_bytes"`
	TTL           time.Duration `yaml:"ttl" json:"ttl"`
	SweepSchedule string        `yaml:"sweep_schedule" json:"sweep_schedule"`
}

// LLMConfig holds inference provider settings
type LLMConfig struct {
	// Provider name: "openai" or "" (disabled)
	Provider string `yaml:"provider" json:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" json:"model"`

	// APIKey for the provider
	APIKey string `yaml:"api_key" json:"-"`

	// BaseURL for OpenAI-compatible endpoints
	BaseURL string `yaml:"base_url" json:"base_url"`

	// Timeout for API requests, in seconds
	Timeout int `yaml:"timeout" json:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`

	// RequestsPerSecond paces outbound inference calls
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`

	// Burst for the rate limiter
	Burst int `yaml:"burst" json:"burst"`
}

// ConcurrencyConfig bounds the per-article classification fan-out
type ConcurrencyConfig struct {
	ClassifyWorkers int `yaml:"classify_workers" json:"classify_workers"`
}

// RulesConfig points at an optional YAML file with extra escalation patterns
type RulesConfig struct {
	File string `yaml:"file" json:"file"`
}

// DefaultConfig returns sensible defaults. The API key is read from the
// environment, never from the config file.
func DefaultConfig() *Config {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("AI_API_KEY")
	}
	modelName := os.Getenv("OPENAI_MODEL")
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}

	return &Config{
		Server: ServerConfig{
			Addr: ":8000",
		},
		Upload: UploadConfig{
			Dir:           filepath.Join(os.TempDir(), "checky-uploads"),
			MaxFileBytes:  10 * 1024 * 1024,
			TTL:           24 * time.Hour,
			SweepSchedule: "@hourly",
		},
		LLM: LLMConfig{
			Provider:          "openai",
			Model:             modelName,
			APIKey:            apiKey,
			BaseURL:           os.Getenv("OPENAI_BASE_URL"),
			Timeout:           60,
			MaxTokens:         2000,
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Concurrency: ConcurrencyConfig{
			ClassifyWorkers: 4,
		},
		Rules: RulesConfig{},
	}
}
