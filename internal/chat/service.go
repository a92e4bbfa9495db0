// Package chat is a conversational façade over the same inference
// provider the classification engine uses.
package chat

import (
	"context"
	"log"
	"time"

	"github.com/clear-checky/checky-BE/internal/llm"
	"github.com/clear-checky/checky-BE/internal/model"
)

const (
	chatTemperature = 0.7

	// historyWindow bounds the history sent to the provider to keep
	// token usage predictable
	historyWindow = 10

	systemPrompt = "You are a friendly, helpful assistant for questions about " +
		"employment contracts and their risk analysis. Answer accurately and " +
		"keep a natural, approachable tone."

	apologyMessage = "Sorry, something went wrong while generating a response. Please try again."
)

// Service generates chat replies. A nil provider always answers with
// the apology message.
type Service struct {
	provider llm.Provider
}

// NewService creates a chat service
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Respond generates a reply to the user message given prior history.
// Provider failures are absorbed into an apology reply, not surfaced as
// errors.
func (s *Service) Respond(ctx context.Context, userMessage string, history []model.ChatMessage) string {
	if s.provider == nil {
		return apologyMessage
	}

	messages := []llm.Message{{Role: llm.RoleSystem, Content: systemPrompt}}

	start := 0
	if len(history) > historyWindow {
		start = len(history) - historyWindow
	}
	for _, m := range history[start:] {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMessage})

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Messages:    messages,
		Temperature: chatTemperature,
	})
	if err != nil {
		log.Printf("chat completion failed: %v", err)
		return apologyMessage
	}

	return resp.Content
}

// AppendHistory returns the history extended with the latest exchange
func AppendHistory(history []model.ChatMessage, userMessage, reply string) []model.ChatMessage {
	now := time.Now()
	updated := make([]model.ChatMessage, 0, len(history)+2)
	updated = append(updated, history...)
	updated = append(updated,
		model.ChatMessage{Role: llm.RoleUser, Content: userMessage, Timestamp: &now},
		model.ChatMessage{Role: llm.RoleAssistant, Content: reply, Timestamp: &now},
	)
	return updated
}
