package llm

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// maxHistory bounds how much of a transcript is replayed to stateless providers.
const maxHistory = 20

// ChatAssistant turns a stateless LLMProvider into an Assistant. Thread ids are
// minted locally and the transcript is replayed behind a system prompt.
type ChatAssistant struct {
	provider     LLMProvider
	systemPrompt string
	options      []Option
}

var _ Assistant = (*ChatAssistant)(nil)

func NewChatAssistant(provider LLMProvider, systemPrompt string, options ...Option) *ChatAssistant {
	return &ChatAssistant{
		provider:     provider,
		systemPrompt: systemPrompt,
		options:      options,
	}
}

func (a *ChatAssistant) NewThread(_ context.Context) (string, error) {
	return "thread_" + strings.ReplaceAll(uuid.NewString(), "-", ""), nil
}

func (a *ChatAssistant) Reply(ctx context.Context, _ string, history []Message, text string) (string, error) {
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}

	messages := make([]Message, 0, len(history)+2)
	if a.systemPrompt != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: a.systemPrompt})
	}
	messages = append(messages, history...)
	messages = append(messages, Message{Role: RoleUser, Content: text})

	reply, err := a.provider.Chat(ctx, messages, a.options...)
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}
