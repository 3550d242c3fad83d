package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/super_bot/internal/ai"
	"github.com/Vovarama1992/super_bot/internal/config"
	"github.com/Vovarama1992/super_bot/internal/delivery"
	"github.com/Vovarama1992/super_bot/internal/image"
	"github.com/Vovarama1992/super_bot/internal/notify"
	"github.com/Vovarama1992/super_bot/internal/speech"
	"github.com/Vovarama1992/super_bot/internal/storage"
	"github.com/Vovarama1992/super_bot/internal/telegram"
	"github.com/Vovarama1992/super_bot/internal/user"

	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	sl := baseLogger.Sugar()
	zl := logger.NewZapLogger(sl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	var notifyInfra *notify.Infra
	var notifier *notify.Service
	if cfg.Telegram.AdminChatID != 0 {
		notifyInfra = notify.NewInfra(cfg.Telegram.AdminChatID, sl)
		notifier = notify.NewService(notifyInfra, sl)
	} else {
		notifier = notify.NewService(nil, sl)
	}

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	var archive storage.Archive
	if cfg.S3.Enabled() {
		s3Client, err := storage.NewS3Client(ctx, storage.S3Options{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
		})
		if err != nil {
			log.Fatalf("failed to init s3: %v", err)
		}
		archive = storage.NewArchive(s3Client)
	}

	// =========================================================================
	// CLIENTS (LLM / IMAGE / STT / TTS)
	// =========================================================================

	llmClient := ai.NewOpenAIClient(ai.ClientConfig{
		APIKey:    cfg.Groq.APIKey,
		BaseURL:   cfg.Groq.BaseURL,
		Model:     cfg.Groq.Model,
		MaxTokens: cfg.Groq.MaxTokens,
		Timeout:   cfg.HTTP.Timeout,
	})
	imageClient := image.NewHuggingFaceClient(cfg.HF.Token, cfg.HF.ImageURL, cfg.HTTP.Timeout)
	whisperClient := speech.NewWhisperClient(cfg.HF.Token, cfg.HF.WhisperURL, cfg.HTTP.Timeout)
	ttsClient := speech.NewGoogleTTS(cfg.TTS.URL, cfg.HTTP.Timeout)
	converter := speech.NewFFmpegConverter(cfg.TTS.FFmpegPath)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	userService := user.NewService(user.NewMemoryStore())
	aiService := ai.NewAiService(llmClient, notifier, sl)
	imageService := image.NewService(imageClient, archive, notifier, sl)
	speechService := speech.NewService(whisperClient, ttsClient, converter, sl)

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	bot, err := telegram.NewBotAPI(cfg.Telegram.Token, cfg.Telegram.Debug)
	if err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}
	sl.Infof("[bot_app] ready: @%s", bot.Self.UserName)

	if notifyInfra != nil {
		notifyInfra.SetBot(bot)
	}

	router := telegram.NewRouter(
		userService,
		aiService,
		imageService,
		speechService,
		telegram.NewFileDownloader(bot, cfg.HTTP.Timeout),
		sl,
	)
	botApp := telegram.NewBotApp(bot, router, sl)

	go botApp.Run(ctx)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	userHandler := delivery.NewUserHandler(userService, zl)
	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           delivery.NewRouter(userHandler, cfg.HTTP.AdminToken),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	// =========================================================================
	// START SERVER
	// =========================================================================

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + srv.Addr,
		Service: "super_bot",
	})

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
