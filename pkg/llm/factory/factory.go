package factory

import (
	"context"
	"fmt"
	"time"

	"roofing-site-be/pkg/llm"
	"roofing-site-be/pkg/llm/eino"
	"roofing-site-be/pkg/llm/ollama"
	"roofing-site-be/pkg/llm/openai"
)

type Options struct {
	Provider     string
	BaseURL      string
	APIKey       string
	AssistantID  string
	Model        string
	SystemPrompt string
	PollInterval time.Duration
	Timeout      time.Duration
}

// NewAssistant builds the assistant selected by Provider:
// "openai" uses the hosted threads API, "eino" and "ollama" replay the
// stored transcript against a chat model.
func NewAssistant(ctx context.Context, opts Options) (llm.Assistant, error) {
	switch opts.Provider {
	case "openai", "":
		if opts.AssistantID == "" {
			return nil, fmt.Errorf("openai assistant provider requires ASSISTANT_ID")
		}
		return openai.NewThreadAssistant(opts.BaseURL, opts.APIKey, opts.AssistantID, opts.PollInterval, opts.Timeout), nil
	case "eino":
		provider, err := eino.NewOpenAIProvider(ctx, opts.BaseURL, opts.APIKey, opts.Model, opts.Timeout)
		if err != nil {
			return nil, err
		}
		return llm.NewChatAssistant(provider, opts.SystemPrompt), nil
	case "ollama":
		baseURL := opts.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		provider, err := ollama.NewOllamaProvider(baseURL, opts.Model, opts.Timeout)
		if err != nil {
			return nil, err
		}
		return llm.NewChatAssistant(provider, opts.SystemPrompt), nil
	default:
		return nil, fmt.Errorf("unsupported assistant provider: %s", opts.Provider)
	}
}
