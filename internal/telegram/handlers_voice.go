package telegram

import (
	"context"
	"errors"

	"github.com/Vovarama1992/super_bot/internal/speech"
	"github.com/Vovarama1992/super_bot/internal/user"
)

func (r *Router) handleVoice(ctx context.Context, ev Event, st user.UserState) Action {
	t := TextsFor(st.Language)
	chatID := ev.ChatID

	r.log.Infof("[voice] start chat=%d fileID=%s duration=%ds", chatID, ev.Voice.FileID, ev.Voice.Duration)

	ogg, err := r.audio.Download(ctx, ev.Voice.FileID)
	if err != nil {
		r.log.Warnf("[voice] download fail chat=%d: %v", chatID, err)
		return textAction(t.DownloadFailed)
	}

	text, err := r.speech.Transcribe(ctx, ogg)
	switch {
	case err == nil:
	case errors.Is(err, speech.ErrEmptyTranscript):
		return textAction(t.EmptyTranscript)
	case errors.Is(err, speech.ErrMalformedResponse):
		return textAction(t.WhisperError)
	case errors.Is(err, speech.ErrConversionFailed):
		r.log.Warnf("[voice] convert fail chat=%d: %v", chatID, err)
		return textAction(t.ConvertFailed)
	default:
		r.log.Warnf("[voice] transcribe fail chat=%d: %v", chatID, err)
		return textAction(t.RecognitionFailed)
	}

	r.log.Infof("[voice] transcribed chat=%d len=%d", chatID, len(text))

	return r.handleText(ctx, chatID, st, text)
}
