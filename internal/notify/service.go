package notify

import (
	"context"

	"go.uber.org/zap"
)

type Service struct {
	infra Notificator
	log   *zap.SugaredLogger
}

// NewService - infra == nil значит админ-чат не настроен, ошибки только в лог
func NewService(infra Notificator, log *zap.SugaredLogger) *Service {
	return &Service{infra: infra, log: log}
}

func (s *Service) Notify(ctx context.Context, err error, details string) error {
	s.log.Errorw("[notify] external call failed", "error", err, "details", details)
	if s.infra == nil {
		return nil
	}
	return s.infra.Notify(ctx, err, details)
}
