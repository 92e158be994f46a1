package llm

import (
	"context"
	"errors"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var ErrEmptyReply = errors.New("assistant returned an empty reply")

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func ApplyOptions(opts ...Option) *Options {
	options := &Options{Temperature: 0.7}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// LLMProvider is a stateless chat-completions backend.
type LLMProvider interface {
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)
}

// Assistant keeps conversational context under a thread id. Hosted assistants
// store the context themselves and may ignore history; stateless backends
// rebuild it from history on every call.
type Assistant interface {
	NewThread(ctx context.Context) (string, error)
	Reply(ctx context.Context, threadID string, history []Message, text string) (string, error)
}
