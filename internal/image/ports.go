package image

import "context"

type Generator interface {
	Generate(ctx context.Context, prompt string) (data []byte, contentType string, err error)
}

type Service interface {
	Generate(ctx context.Context, chatID int64, prompt string) ([]byte, error)
}
