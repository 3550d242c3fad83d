package speech

import (
	"context"

	"github.com/Vovarama1992/super_bot/internal/user"
)

type Transcriber interface {
	Transcribe(ctx context.Context, wav []byte) (string, error) // голос → текст
}

type Synthesizer interface {
	Synthesize(ctx context.Context, lang user.Language, text string) ([]byte, error) // текст → mp3
}

type Converter interface {
	ToWAV(ctx context.Context, ogg []byte) ([]byte, error)
}
