package chat

import (
	"context"
	"fmt"

	"github.com/jvkuechen/secguard/internal/llm"
)

const systemPrompt = "You are a friendly personal-security advisor. " +
	"The user runs a self-assessment tool covering password hygiene, two-factor " +
	"authentication, device locks, software updates, backups, and phishing awareness. " +
	"Give practical, non-alarmist advice. Keep responses concise (2-3 sentences). " +
	"Point the user at `secguard assess`, `secguard status`, or `secguard tasks` " +
	"when a command answers their question better than prose."

// Service runs a conversation against the chat backend, keeping a bounded
// history so follow-up questions have context.
type Service struct {
	client  llm.ChatClient
	history []llm.Message
	maxHist int
}

// NewService creates a chat Service over the given client.
func NewService(client llm.ChatClient, cfg llm.ChatConfig) *Service {
	maxHist := cfg.MaxHistory
	if maxHist <= 0 {
		maxHist = llm.DefaultConfig().MaxHistory
	}
	return &Service{client: client, maxHist: maxHist}
}

// Ask sends the user message with the system prompt and recent history,
// records both turns, and returns the assistant reply.
func (s *Service) Ask(ctx context.Context, message string) (string, error) {
	messages := make([]llm.Message, 0, len(s.history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	messages = append(messages, s.recentHistory()...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := s.client.Chat(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}

	s.history = append(s.history,
		llm.Message{Role: llm.RoleUser, Content: message},
		llm.Message{Role: llm.RoleAssistant, Content: resp.Text},
	)
	return resp.Text, nil
}

// Available reports whether the backend can take questions.
func (s *Service) Available(ctx context.Context) bool {
	return s.client.Available(ctx)
}

// History returns the recorded conversation turns, oldest first.
func (s *Service) History() []llm.Message {
	out := make([]llm.Message, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Service) recentHistory() []llm.Message {
	if len(s.history) <= s.maxHist {
		return s.history
	}
	return s.history[len(s.history)-s.maxHist:]
}
