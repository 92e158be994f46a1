package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"roofing-site-be/pkg/llm"

	"github.com/ollama/ollama/api"
)

// OllamaProvider talks to a self-hosted Ollama server, used for local development.
type OllamaProvider struct {
	ModelName string
	client    *api.Client
}

var _ llm.LLMProvider = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string, timeout time.Duration) (*OllamaProvider, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse ollama url: %w", err)
	}
	return &OllamaProvider{
		ModelName: modelName,
		client:    api.NewClient(base, &http.Client{Timeout: timeout}),
	}, nil
}

func (o *OllamaProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(opts...)

	messages := make([]api.Message, len(history))
	for i, msg := range history {
		messages[i] = api.Message{Role: msg.Role, Content: msg.Content}
	}

	model := o.ModelName
	if options.Model != "" {
		model = options.Model
	}

	modelOptions := map[string]any{"temperature": options.Temperature}
	if options.MaxTokens > 0 {
		modelOptions["num_predict"] = options.MaxTokens
	}

	stream := false
	req := &api.ChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   &stream,
		Options:  modelOptions,
	}

	var reply strings.Builder
	err := o.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		var statusErr api.StatusError
		if errors.As(err, &statusErr) {
			return "", fmt.Errorf("ollama error: status %d: %s", statusErr.StatusCode, statusErr.ErrorMessage)
		}
		return "", fmt.Errorf("ollama request failed: %w", err)
	}

	return reply.String(), nil
}
