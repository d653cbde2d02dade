package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvkuechen/secguard/internal/llm"
)

type fakeChatClient struct {
	lastMessages []llm.Message
	reply        string
	err          error
}

func (f *fakeChatClient) Chat(_ context.Context, messages []llm.Message) (*llm.ChatResponse, error) {
	f.lastMessages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llm.ChatResponse{Text: f.reply}, nil
}

func (f *fakeChatClient) Available(context.Context) bool { return f.err == nil }

func TestService_Ask_BuildsSystemPlusHistory(t *testing.T) {
	client := &fakeChatClient{reply: "answer one"}
	svc := NewService(client, llm.DefaultConfig())

	out, err := svc.Ask(context.Background(), "question one")
	require.NoError(t, err)
	assert.Equal(t, "answer one", out)

	require.Len(t, client.lastMessages, 2)
	assert.Equal(t, llm.RoleSystem, client.lastMessages[0].Role)
	assert.Equal(t, "question one", client.lastMessages[1].Content)

	client.reply = "answer two"
	_, err = svc.Ask(context.Background(), "question two")
	require.NoError(t, err)

	// system + first exchange + new question
	require.Len(t, client.lastMessages, 4)
	assert.Equal(t, "question one", client.lastMessages[1].Content)
	assert.Equal(t, "answer one", client.lastMessages[2].Content)
	assert.Equal(t, "question two", client.lastMessages[3].Content)
}

func TestService_Ask_TrimsHistory(t *testing.T) {
	client := &fakeChatClient{reply: "ok"}
	cfg := llm.DefaultConfig()
	cfg.MaxHistory = 2
	svc := NewService(client, cfg)

	for _, q := range []string{"a", "b", "c"} {
		_, err := svc.Ask(context.Background(), q)
		require.NoError(t, err)
	}

	// system + last exchange + current question
	require.Len(t, client.lastMessages, 4)
	assert.Equal(t, "b", client.lastMessages[1].Content)
	assert.Equal(t, "ok", client.lastMessages[2].Content)
	assert.Equal(t, "c", client.lastMessages[3].Content)

	// full history still recorded
	assert.Len(t, svc.History(), 6)
}

func TestService_Ask_ErrorKeepsHistoryClean(t *testing.T) {
	client := &fakeChatClient{err: llm.ErrUnavailable}
	svc := NewService(client, llm.DefaultConfig())

	_, err := svc.Ask(context.Background(), "hello")
	assert.ErrorIs(t, err, llm.ErrUnavailable)
	assert.Empty(t, svc.History())
	assert.False(t, svc.Available(context.Background()))
}
