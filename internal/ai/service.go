package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vovarama1992/super_bot/internal/notify"
	"github.com/Vovarama1992/super_bot/internal/user"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	promptKhmer   = "Always reply in Khmer language using clear Khmer."
	promptEnglish = "Always reply in English."
)

type AiService struct {
	client   CompletionClient
	notifier notify.Notificator
	log      *zap.SugaredLogger
}

func NewAiService(client CompletionClient, notifier notify.Notificator, log *zap.SugaredLogger) *AiService {
	return &AiService{
		client:   client,
		notifier: notifier,
		log:      log,
	}
}

func SystemPrompt(lang user.Language) string {
	if lang == user.LangEnglish {
		return promptEnglish
	}
	return promptKhmer
}

// диагностика ошибок LLM, только для логов и админа
func analyzeOpenAIError(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 401:
			return "invalid API key"
		case 404:
			return "model not found"
		case 429:
			return "rate limit exceeded"
		case 400:
			return "bad request"
		}
		if apiErr.HTTPStatusCode >= 500 {
			return "upstream internal error"
		}
	}
	if errors.Is(err, ErrEmptyCompletion) {
		return "no choices in response"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "unknown error: " + err.Error()
}

func (s *AiService) GetReply(ctx context.Context, lang user.Language, userText string) (string, error) {
	start := time.Now()

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt(lang)},
		{Role: openai.ChatMessageRoleUser, Content: userText},
	}

	reply, err := s.client.GetCompletion(ctx, messages)
	s.log.Infof("[ai][%.1fs] completion done lang=%s err=%v", time.Since(start).Seconds(), lang, err)

	if err != nil {
		diag := analyzeOpenAIError(err)
		s.notifier.Notify(ctx, err, fmt.Sprintf("LLM error (%s)", diag))
		return "", fmt.Errorf("chat completion: %w", err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		s.notifier.Notify(ctx, ErrEmptyCompletion, "LLM returned blank reply")
		return "", ErrEmptyCompletion
	}
	return reply, nil
}
