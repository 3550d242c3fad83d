package telegram

import (
	"github.com/Vovarama1992/super_bot/internal/user"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Подписи кнопок. Распознаются обе раскладки независимо от текущего языка.
type Labels struct {
	Chat     string
	Image    string
	Talk     string
	Voice    string
	Language string
	Clear    string
}

var labelsKH = Labels{
	Chat:     "💬 ជជែក AI",
	Image:    "🎨 បង្កើតរូបភាព",
	Talk:     "🎤 និយាយជាមួយ AI",
	Voice:    "🔊 សំឡេង បិទ/បើក",
	Language: "🌐 ប្ដូរភាសា",
	Clear:    "🧹 លុប",
}

var labelsEN = Labels{
	Chat:     "💬 Chat AI",
	Image:    "🎨 Create Image",
	Talk:     "🎤 Talk to AI",
	Voice:    "🔊 Voice ON/OFF",
	Language: "🌐 Language",
	Clear:    "🧹 Clear",
}

func LabelsFor(lang user.Language) Labels {
	if lang == user.LangEnglish {
		return labelsEN
	}
	return labelsKH
}

func BuildMainKeyboard(lang user.Language) tgbotapi.ReplyKeyboardMarkup {
	l := LabelsFor(lang)

	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(l.Chat),
			tgbotapi.NewKeyboardButton(l.Image),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(l.Talk),
			tgbotapi.NewKeyboardButton(l.Voice),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(l.Language),
			tgbotapi.NewKeyboardButton(l.Clear),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}
