package image

import (
	"context"
	"fmt"
	"time"

	"github.com/Vovarama1992/super_bot/internal/notify"
	"github.com/Vovarama1992/super_bot/internal/storage"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

type service struct {
	gen      Generator
	archive  storage.Archive
	notifier notify.Notificator
	log      *zap.SugaredLogger
}

// NewService - archive может быть nil, тогда картинки никуда не сохраняются
func NewService(gen Generator, archive storage.Archive, notifier notify.Notificator, log *zap.SugaredLogger) Service {
	return &service{
		gen:      gen,
		archive:  archive,
		notifier: notifier,
		log:      log,
	}
}

func (s *service) Generate(ctx context.Context, chatID int64, prompt string) ([]byte, error) {
	start := time.Now()

	data, contentType, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.notifier.Notify(ctx, err, fmt.Sprintf("image generation chat=%d", chatID))
		return nil, err
	}

	s.log.Infof("[image][%.1fs] generated chat=%d size=%s type=%s",
		time.Since(start).Seconds(), chatID, humanize.Bytes(uint64(len(data))), contentType)

	if s.archive != nil {
		go s.save(context.WithoutCancel(ctx), chatID, data, contentType)
	}

	return data, nil
}

func (s *service) save(ctx context.Context, chatID int64, data []byte, contentType string) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	url, err := s.archive.SaveImage(ctx, chatID, data, contentType)
	if err != nil {
		s.log.Warnf("[image] archive fail chat=%d: %v", chatID, err)
		return
	}
	s.log.Infof("[image] archived chat=%d url=%s", chatID, url)
}
