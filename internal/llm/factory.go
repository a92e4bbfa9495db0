package llm

import (
	"fmt"
	"strings"

	"github.com/clear-checky/checky-BE/internal/model"
)

// NewProvider creates an inference provider based on configuration.
// An empty provider name disables inference: the caller gets (nil, nil)
// and every clause degrades to fallback classification.
func NewProvider(config model.LLMConfig) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}
