package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/xid"
)

// Run - главный цикл получения апдейтов. Чаты обрабатываются параллельно,
// апдейты одного чата - строго по очереди
func (app *BotApp) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	app.log.Info("[bot_loop] polling started")

	for {
		select {
		case <-ctx.Done():
			app.log.Info("[bot_loop] context cancelled, stopping")
			app.bot.StopReceivingUpdates()
			return

		case upd, ok := <-updates:
			if !ok {
				return
			}
			app.dispatch(ctx, upd)
		}
	}
}

// dispatch - ставит апдейт в очередь его чата, при необходимости поднимает воркер
func (app *BotApp) dispatch(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil || msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID

	app.mu.Lock()
	if q, busy := app.queues[chatID]; busy {
		app.queues[chatID] = append(q, upd)
		app.mu.Unlock()
		return
	}
	app.queues[chatID] = nil
	app.mu.Unlock()

	go app.drain(ctx, chatID, upd)
}

// drain - воркер чата: обрабатывает апдейты, пока очередь не опустеет
func (app *BotApp) drain(ctx context.Context, chatID int64, upd tgbotapi.Update) {
	for {
		app.HandleUpdate(ctx, upd)

		app.mu.Lock()
		q := app.queues[chatID]
		if len(q) == 0 {
			delete(app.queues, chatID)
			app.mu.Unlock()
			return
		}
		upd = q[0]
		app.queues[chatID] = q[1:]
		app.mu.Unlock()
	}
}

func (app *BotApp) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	ev, ok := ToEvent(upd)
	if !ok {
		return
	}

	log := app.log.With("req", xid.New().String(), "chat", ev.ChatID, "update", ev.UpdateID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("[bot_loop] panic: %v", rec)
		}
	}()

	start := time.Now()
	app.sendChatAction(ev)

	action := app.router.Route(ctx, ev)
	if action.Kind == ActionNone {
		return
	}

	if _, err := app.bot.Send(ToChattable(ev.ChatID, action)); err != nil {
		log.Warnf("[bot_loop] send fail: %v", err)
		return
	}
	log.Infof("[bot_loop] done kind=%d in %.1fs", action.Kind, time.Since(start).Seconds())
}

// sendChatAction - «печатает…», пока ждём внешние API
func (app *BotApp) sendChatAction(ev Event) {
	if ev.Start || (ev.Voice == nil && ev.Text == "") {
		return
	}
	_, _ = app.bot.Request(tgbotapi.NewChatAction(ev.ChatID, tgbotapi.ChatTyping))
}

// ToEvent - из апдейта в событие роутера; всё, кроме текста и голоса, пропускаем
func ToEvent(upd tgbotapi.Update) (Event, bool) {
	msg := upd.Message
	if msg == nil || msg.Chat == nil {
		return Event{}, false
	}

	ev := Event{
		UpdateID: upd.UpdateID,
		ChatID:   msg.Chat.ID,
	}

	switch {
	case msg.IsCommand():
		if msg.Command() != "start" {
			return Event{}, false
		}
		ev.Start = true
	case msg.Voice != nil:
		ev.Voice = &VoiceInput{FileID: msg.Voice.FileID, Duration: msg.Voice.Duration}
	case msg.Text != "":
		ev.Text = msg.Text
	default:
		return Event{}, false
	}
	return ev, true
}

func ToChattable(chatID int64, a Action) tgbotapi.Chattable {
	switch a.Kind {
	case ActionVoice:
		return tgbotapi.NewVoice(chatID, tgbotapi.FileBytes{Name: "reply.mp3", Bytes: a.Data})

	case ActionImage:
		return tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "image.png", Bytes: a.Data})

	default:
		m := tgbotapi.NewMessage(chatID, a.Text)
		if a.Keyboard != "" {
			m.ReplyMarkup = BuildMainKeyboard(a.Keyboard)
		}
		return m
	}
}
