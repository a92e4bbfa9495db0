package model

import "time"

// ChatMessage is a single turn in a conversation
type ChatMessage struct {
	Role      string     `json:"role"` // "user" or "assistant"
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// ChatRequest carries a user message plus prior conversation history
type ChatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatMessage `json:"conversation_history,omitempty"`
}

// ChatResponse carries the assistant reply and the updated history
type ChatResponse struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
	Timestamp           time.Time     `json:"timestamp"`
}
