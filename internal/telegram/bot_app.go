package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// BotAPI - часть *tgbotapi.BotAPI, которой пользуется приложение
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type BotApp struct {
	bot    BotAPI
	router *Router
	log    *zap.SugaredLogger

	// очереди апдейтов по чатам; ключ есть, пока жив воркер чата
	mu     sync.Mutex
	queues map[int64][]tgbotapi.Update
}

func NewBotAPI(token string, debug bool) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram init: %w", err)
	}
	bot.Debug = debug
	return bot, nil
}

func NewBotApp(bot BotAPI, router *Router, log *zap.SugaredLogger) *BotApp {
	return &BotApp{
		bot:    bot,
		router: router,
		log:    log,
		queues: make(map[int64][]tgbotapi.Update),
	}
}

// FileDownloader - скачивает файлы телеграма по FileID
type FileDownloader struct {
	bot    *tgbotapi.BotAPI
	client *http.Client
}

func NewFileDownloader(bot *tgbotapi.BotAPI, timeout time.Duration) *FileDownloader {
	return &FileDownloader{
		bot:    bot,
		client: &http.Client{Timeout: timeout},
	}
}

func (d *FileDownloader) Download(ctx context.Context, fileID string) ([]byte, error) {
	file, err := d.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(d.bot.Token), nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download: status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
