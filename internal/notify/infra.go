package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

var ErrNoSender = errors.New("notify: bot is not set")

type Infra struct {
	mu          sync.RWMutex
	bot         Sender
	adminChatID int64
	log         *zap.SugaredLogger
}

func NewInfra(adminChatID int64, log *zap.SugaredLogger) *Infra {
	return &Infra{adminChatID: adminChatID, log: log}
}

// SetBot - бот появляется позже, чем сервисы
func (i *Infra) SetBot(bot Sender) {
	i.mu.Lock()
	i.bot = bot
	i.mu.Unlock()
}

func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	i.mu.RLock()
	bot := i.bot
	i.mu.RUnlock()

	if bot == nil {
		i.log.Warnf("[notify] bot not set, dropped: %v (%s)", err, details)
		return ErrNoSender
	}

	text := fmt.Sprintf("❗ Bot error\n\nError: %v\n\nDetails: %s", err, details)

	if _, sendErr := bot.Send(tgbotapi.NewMessage(i.adminChatID, text)); sendErr != nil {
		i.log.Errorf("[notify] send fail: %v", sendErr)
		return sendErr
	}
	return nil
}
