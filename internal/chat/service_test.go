package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/clear-checky/checky-BE/internal/llm"
	"github.com/clear-checky/checky-BE/internal/model"
)

type mockProvider struct {
	content string
	err     error
	last    llm.CompletionRequest
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.CompletionResponse{Content: m.content, Model: "mock"}, nil
}

func TestRespond(t *testing.T) {
	provider := &mockProvider{content: "A non-compete clause limits where you can work next."}
	s := NewService(provider)

	reply := s.Respond(context.Background(), "What is a non-compete clause?", nil)
	if reply != provider.content {
		t.Errorf("unexpected reply %q", reply)
	}

	msgs := provider.last.Messages
	if len(msgs) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(msgs))
	}
	if msgs[0].Role != llm.RoleSystem {
		t.Errorf("expected system message first, got %s", msgs[0].Role)
	}
	if msgs[1].Role != llm.RoleUser || msgs[1].Content != "What is a non-compete clause?" {
		t.Errorf("unexpected user message %+v", msgs[1])
	}
}

func TestRespond_NilProvider(t *testing.T) {
	s := NewService(nil)

	reply := s.Respond(context.Background(), "hello", nil)
	if reply != apologyMessage {
		t.Errorf("expected apology, got %q", reply)
	}
}

func TestRespond_ProviderErrorApologizes(t *testing.T) {
	provider := &mockProvider{
		err: &llm.CallError{Kind: llm.ErrUnreachable, Err: errors.New("connection refused")},
	}
	s := NewService(provider)

	reply := s.Respond(context.Background(), "hello", nil)
	if reply != apologyMessage {
		t.Errorf("expected apology, got %q", reply)
	}
}

func TestRespond_HistoryWindow(t *testing.T) {
	provider := &mockProvider{content: "ok"}
	s := NewService(provider)

	history := make([]model.ChatMessage, 0, 24)
	for i := 0; i < 12; i++ {
		history = append(history,
			model.ChatMessage{Role: llm.RoleUser, Content: "q"},
			model.ChatMessage{Role: llm.RoleAssistant, Content: "a"},
		)
	}

	s.Respond(context.Background(), "latest question", history)

	// system prompt + last 10 history turns + current user message
	if got := len(provider.last.Messages); got != 1+historyWindow+1 {
		t.Errorf("expected %d messages, got %d", 1+historyWindow+1, got)
	}
	last := provider.last.Messages[len(provider.last.Messages)-1]
	if last.Role != llm.RoleUser || last.Content != "latest question" {
		t.Errorf("expected current message last, got %+v", last)
	}
}

func TestRespond_ShortHistoryKeptWhole(t *testing.T) {
	provider := &mockProvider{content: "ok"}
	s := NewService(provider)

	history := []model.ChatMessage{
		{Role: llm.RoleUser, Content: "first"},
		{Role: llm.RoleAssistant, Content: "reply"},
	}

	s.Respond(context.Background(), "second", history)

	if got := len(provider.last.Messages); got != 4 {
		t.Errorf("expected 4 messages, got %d", got)
	}
	if provider.last.Messages[1].Content != "first" {
		t.Errorf("expected history preserved, got %+v", provider.last.Messages[1])
	}
}

func TestAppendHistory(t *testing.T) {
	history := []model.ChatMessage{
		{Role: llm.RoleUser, Content: "first"},
	}

	updated := AppendHistory(history, "question", "answer")
	if len(updated) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(updated))
	}
	if updated[1].Role != llm.RoleUser || updated[1].Content != "question" {
		t.Errorf("unexpected user entry %+v", updated[1])
	}
	if updated[2].Role != llm.RoleAssistant || updated[2].Content != "answer" {
		t.Errorf("unexpected assistant entry %+v", updated[2])
	}
	if updated[1].Timestamp == nil || updated[2].Timestamp == nil {
		t.Error("expected timestamps on appended messages")
	}
	if len(history) != 1 {
		t.Errorf("expected input history untouched, got %d", len(history))
	}
}
