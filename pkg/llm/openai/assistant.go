package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"roofing-site-be/pkg/llm"

	goopenai "github.com/sashabaranov/go-openai"
)

var ErrRunFailed = errors.New("assistant run did not complete")

// ThreadAssistant drives a hosted OpenAI assistant through the threads API.
// The conversation state lives on the provider side under the thread id, so
// the transcript passed to Reply is not resent.
type ThreadAssistant struct {
	client       *goopenai.Client
	assistantID  string
	pollInterval time.Duration
}

var _ llm.Assistant = (*ThreadAssistant)(nil)

// NewThreadAssistant talks to baseURL when set, otherwise to api.openai.com.
func NewThreadAssistant(baseURL, apiKey, assistantID string, pollInterval, timeout time.Duration) *ThreadAssistant {
	if pollInterval <= 0 {
		pollInterval = 750 * time.Millisecond
	}

	config := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
	config.HTTPClient = &http.Client{Timeout: timeout}

	return &ThreadAssistant{
		client:       goopenai.NewClientWithConfig(config),
		assistantID:  assistantID,
		pollInterval: pollInterval,
	}
}

func (a *ThreadAssistant) NewThread(ctx context.Context) (string, error) {
	thread, err := a.client.CreateThread(ctx, goopenai.ThreadRequest{})
	if err != nil {
		return "", fmt.Errorf("create thread: %w", err)
	}
	if thread.ID == "" {
		return "", fmt.Errorf("assistant returned no thread id")
	}
	return thread.ID, nil
}

func (a *ThreadAssistant) Reply(ctx context.Context, threadID string, _ []llm.Message, text string) (string, error) {
	_, err := a.client.CreateMessage(ctx, threadID, goopenai.MessageRequest{
		Role:    string(goopenai.ThreadMessageRoleUser),
		Content: text,
	})
	if err != nil {
		return "", fmt.Errorf("add message: %w", err)
	}

	run, err := a.client.CreateRun(ctx, threadID, goopenai.RunRequest{AssistantID: a.assistantID})
	if err != nil {
		return "", fmt.Errorf("start run: %w", err)
	}

	run, err = a.waitForRun(ctx, threadID, run)
	if err != nil {
		return "", err
	}

	limit := 1
	order := "desc"
	list, err := a.client.ListMessage(ctx, threadID, &limit, &order, nil, nil, &run.ID)
	if err != nil {
		return "", fmt.Errorf("read reply: %w", err)
	}

	for _, msg := range list.Messages {
		if msg.Role != llm.RoleAssistant {
			continue
		}
		var parts []string
		for _, c := range msg.Content {
			if c.Type == "text" && c.Text != nil && c.Text.Value != "" {
				parts = append(parts, c.Text.Value)
			}
		}
		if reply := strings.TrimSpace(strings.Join(parts, "\n")); reply != "" {
			return reply, nil
		}
	}
	return "", llm.ErrEmptyReply
}

func (a *ThreadAssistant) waitForRun(ctx context.Context, threadID string, run goopenai.Run) (goopenai.Run, error) {
	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		switch run.Status {
		case goopenai.RunStatusCompleted:
			return run, nil
		case goopenai.RunStatusFailed, goopenai.RunStatusCancelled, goopenai.RunStatusExpired,
			goopenai.RunStatusRequiresAction, goopenai.RunStatus("incomplete"):
			if run.LastError != nil && run.LastError.Message != "" {
				return run, fmt.Errorf("%w: %s: %s", ErrRunFailed, run.Status, run.LastError.Message)
			}
			return run, fmt.Errorf("%w: %s", ErrRunFailed, run.Status)
		}

		select {
		case <-ctx.Done():
			return run, ctx.Err()
		case <-ticker.C:
		}

		next, err := a.client.RetrieveRun(ctx, threadID, run.ID)
		if err != nil {
			return run, fmt.Errorf("poll run: %w", err)
		}
		run = next
	}
}
