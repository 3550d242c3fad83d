package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vovarama1992/super_bot/internal/user"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

var (
	ErrConversionFailed = errors.New("audio conversion failed")
	ErrEmptyTranscript  = errors.New("empty transcript")
)

// Service - единый сервис и для stt, и для tts
type Service struct {
	stt  Transcriber
	tts  Synthesizer
	conv Converter
	log  *zap.SugaredLogger
}

func NewService(stt Transcriber, tts Synthesizer, conv Converter, log *zap.SugaredLogger) *Service {
	return &Service{
		stt:  stt,
		tts:  tts,
		conv: conv,
		log:  log,
	}
}

// Transcribe - ogg из телеграма → текст; пустой результат считается ошибкой
func (s *Service) Transcribe(ctx context.Context, ogg []byte) (string, error) {
	start := time.Now()

	wav, err := s.conv.ToWAV(ctx, ogg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}
	s.log.Infof("[speech] converted ogg=%s wav=%s",
		humanize.Bytes(uint64(len(ogg))), humanize.Bytes(uint64(len(wav))))

	text, err := s.stt.Transcribe(ctx, wav)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	s.log.Infof("[speech][%.1fs] transcribed len=%d", time.Since(start).Seconds(), len(text))
	if text == "" {
		return "", ErrEmptyTranscript
	}
	return text, nil
}

func (s *Service) Synthesize(ctx context.Context, lang user.Language, text string) ([]byte, error) {
	clean := CleanForTTS(text)
	if clean == "" {
		return nil, fmt.Errorf("tts: nothing to say after cleanup")
	}

	audio, err := s.tts.Synthesize(ctx, lang, clean)
	if err != nil {
		return nil, err
	}
	s.log.Infof("[speech] synthesized lang=%s size=%s", lang, humanize.Bytes(uint64(len(audio))))
	return audio, nil
}
