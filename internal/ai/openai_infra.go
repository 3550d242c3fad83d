package ai

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient - OpenAI-совместимый клиент, по умолчанию смотрит в Groq
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

type ClientConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

func NewOpenAIClient(c ClientConfig) *OpenAIClient {
	cfg := openai.DefaultConfig(c.APIKey)
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: c.Timeout}

	return &OpenAIClient{
		client:    openai.NewClientWithConfig(cfg),
		model:     c.Model,
		maxTokens: c.MaxTokens,
	}
}

var ErrEmptyCompletion = errors.New("empty completion")

func (c *OpenAIClient) GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
