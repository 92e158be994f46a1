package eino

import (
	"context"
	"fmt"
	"time"

	"roofing-site-be/pkg/llm"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Provider runs chat completions through an eino chat model.
type Provider struct {
	chatModel model.BaseChatModel
}

var _ llm.LLMProvider = (*Provider)(nil)

func NewProvider(chatModel model.BaseChatModel) *Provider {
	return &Provider{chatModel: chatModel}
}

// NewOpenAIProvider targets any OpenAI-compatible chat completions endpoint.
func NewOpenAIProvider(ctx context.Context, baseURL, apiKey, modelName string, timeout time.Duration) (*Provider, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   modelName,
		Timeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init eino openai model: %w", err)
	}
	return NewProvider(chatModel), nil
}

func toSchemaMessages(history []llm.Message) []*schema.Message {
	messages := make([]*schema.Message, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case llm.RoleSystem:
			messages = append(messages, schema.SystemMessage(msg.Content))
		case llm.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(msg.Content, nil))
		default:
			messages = append(messages, schema.UserMessage(msg.Content))
		}
	}
	return messages
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(opts...)

	modelOpts := []model.Option{model.WithTemperature(float32(options.Temperature))}
	if options.MaxTokens > 0 {
		modelOpts = append(modelOpts, model.WithMaxTokens(options.MaxTokens))
	}
	if options.Model != "" {
		modelOpts = append(modelOpts, model.WithModel(options.Model))
	}

	out, err := p.chatModel.Generate(ctx, toSchemaMessages(history), modelOpts...)
	if err != nil {
		return "", fmt.Errorf("eino generate: %w", err)
	}
	if out == nil {
		return "", llm.ErrEmptyReply
	}
	return out.Content, nil
}
