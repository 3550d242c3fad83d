package ai

import (
	"context"

	"github.com/Vovarama1992/super_bot/internal/user"
	openai "github.com/sashabaranov/go-openai"
)

type CompletionClient interface {
	GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
}

type Service interface {
	// GetReply - ответ LLM на текст пользователя на выбранном языке
	GetReply(ctx context.Context, lang user.Language, userText string) (string, error)
}
