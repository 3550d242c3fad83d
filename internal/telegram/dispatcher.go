package telegram

import (
	"context"
	"strings"

	"github.com/Vovarama1992/super_bot/internal/user"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

type ChatService interface {
	GetReply(ctx context.Context, lang user.Language, userText string) (string, error)
}

type ImageService interface {
	Generate(ctx context.Context, chatID int64, prompt string) ([]byte, error)
}

type SpeechService interface {
	Transcribe(ctx context.Context, ogg []byte) (string, error)
	Synthesize(ctx context.Context, lang user.Language, text string) ([]byte, error)
}

type AudioSource interface {
	Download(ctx context.Context, fileID string) ([]byte, error)
}

// Event - входящее сообщение, уже без телеграмных типов
type Event struct {
	UpdateID int
	ChatID   int64
	Text     string
	Start    bool
	Voice    *VoiceInput
}

type VoiceInput struct {
	FileID   string
	Duration int
}

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionText
	ActionVoice
	ActionImage
)

// Action - ровно один исходящий ответ на событие
type Action struct {
	Kind ActionKind
	Text string
	Data []byte
	// Keyboard - язык клавиатуры, которую надо показать; пусто - не трогаем
	Keyboard user.Language
}

func textAction(text string) Action {
	return Action{Kind: ActionText, Text: text}
}

type controlKind int

const (
	ctlLanguage controlKind = iota
	ctlVoice
	ctlImage
	ctlChat
	ctlTalk
	ctlClear
)

// Router - вся логика бота: событие + состояние чата → действие
type Router struct {
	users    user.Service
	chat     ChatService
	images   ImageService
	speech   SpeechService
	audio    AudioSource
	log      *zap.SugaredLogger
	controls map[string]controlKind
}

func NewRouter(
	users user.Service,
	chat ChatService,
	images ImageService,
	speech SpeechService,
	audio AudioSource,
	log *zap.SugaredLogger,
) *Router {
	r := &Router{
		users:    users,
		chat:     chat,
		images:   images,
		speech:   speech,
		audio:    audio,
		log:      log,
		controls: make(map[string]controlKind),
	}

	for _, l := range []Labels{labelsKH, labelsEN} {
		r.controls[normalize(l.Language)] = ctlLanguage
		r.controls[normalize(l.Voice)] = ctlVoice
		r.controls[normalize(l.Image)] = ctlImage
		r.controls[normalize(l.Chat)] = ctlChat
		r.controls[normalize(l.Talk)] = ctlTalk
		r.controls[normalize(l.Clear)] = ctlClear
	}
	return r
}

func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func (r *Router) Route(ctx context.Context, ev Event) Action {
	if ev.Start {
		st := r.users.ResetUserSettings(ev.ChatID)
		return Action{
			Kind:     ActionText,
			Text:     TextsFor(st.Language).Welcome,
			Keyboard: st.Language,
		}
	}

	st := r.users.Get(ev.ChatID)

	if ev.Voice != nil {
		return r.handleVoice(ctx, ev, st)
	}

	text := normalize(ev.Text)
	if text == "" {
		return Action{Kind: ActionNone}
	}

	if ctl, ok := r.controls[text]; ok {
		return r.handleControl(ev.ChatID, ctl)
	}

	if st.Mode == user.ModeImage {
		return r.handleImage(ctx, ev.ChatID, st, text)
	}

	return r.handleText(ctx, ev.ChatID, st, text)
}

func (r *Router) handleControl(chatID int64, ctl controlKind) Action {
	switch ctl {
	case ctlLanguage:
		st := r.users.ToggleLanguage(chatID)
		return Action{
			Kind:     ActionText,
			Text:     TextsFor(st.Language).LanguageSwitched,
			Keyboard: st.Language,
		}

	case ctlVoice:
		st := r.users.ToggleVoice(chatID)
		t := TextsFor(st.Language)
		if st.VoiceReply {
			return textAction(t.VoiceOn)
		}
		return textAction(t.VoiceOff)

	case ctlImage:
		st := r.users.SetMode(chatID, user.ModeImage)
		return textAction(TextsFor(st.Language).ImagePrompt)

	case ctlChat:
		st := r.users.SetMode(chatID, user.ModeChat)
		return textAction(TextsFor(st.Language).ChatMode)

	case ctlTalk:
		st := r.users.SetMode(chatID, user.ModeChat)
		return textAction(TextsFor(st.Language).TalkHint)

	default:
		st := r.users.ClearKeepLanguage(chatID)
		return Action{
			Kind:     ActionText,
			Text:     TextsFor(st.Language).Cleared,
			Keyboard: st.Language,
		}
	}
}
