// Package llm abstracts the text-inference backend behind a small
// chat-completion interface.
package llm

import (
	"context"
)

// Message is one turn of a chat-completion request
type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CompletionRequest is the input to a provider call
type CompletionRequest struct {
	Messages    []Message
	Temperature float32
	MaxTokens   int

	// Model overrides the configured model when non-empty
	Model string
}

// CompletionResponse is the provider's reply
type CompletionResponse struct {
	Content    string
	Model      string
	TokensUsed int
}

// Provider defines the interface for inference providers. Any
// chat-completion backend satisfying this shape is substitutable.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete performs one chat completion. Failures are returned as
	// *CallError so callers can branch on the error kind.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
