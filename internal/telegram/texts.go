package telegram

import "github.com/Vovarama1992/super_bot/internal/user"

// Texts - все фиксированные ответы пользователю на одном языке
type Texts struct {
	Welcome           string
	LanguageSwitched  string
	VoiceOn           string
	VoiceOff          string
	ImagePrompt       string
	ChatMode          string
	TalkHint          string
	Cleared           string
	ImageFailed       string
	RecognitionFailed string
	WhisperError      string
	EmptyTranscript   string
	ChatFailed        string
	DownloadFailed    string
	ConvertFailed     string
}

var textsKH = Texts{
	Welcome:           "🚀 AI SUPER BOT (FREE)\nសូមជ្រើសរើសមុខងារ 👇",
	LanguageSwitched:  "Language switched",
	VoiceOn:           "🔊 Voice reply: ON",
	VoiceOff:          "🔊 Voice reply: OFF",
	ImagePrompt:       "✍️ វាយ prompt សម្រាប់រូបភាព",
	ChatMode:          "💬 Chat mode",
	TalkHint:          "🎤 ផ្ញើសារជាសំឡេងមកខ្ញុំ",
	Cleared:           "🧹 បានលុបការកំណត់",
	ImageFailed:       "❌ បង្កើតរូបភាពមិនបាន",
	RecognitionFailed: "❌ Voice recognition failed",
	WhisperError:      "❌ Whisper response error",
	EmptyTranscript:   "❌ មិនស្គាល់សំឡេង",
	ChatFailed:        "⚠️ AI មិនអាចឆ្លើយតបបានទេ",
	DownloadFailed:    "⚠️ មិនអាចទាញយកសំឡេងបានទេ",
	ConvertFailed:     "⚠️ មិនអាចបម្លែងសំឡេងបានទេ",
}

var textsEN = Texts{
	Welcome:           "🚀 AI SUPER BOT (FREE)\nChoose a function 👇",
	LanguageSwitched:  "Language switched",
	VoiceOn:           "🔊 Voice reply: ON",
	VoiceOff:          "🔊 Voice reply: OFF",
	ImagePrompt:       "✍️ Type a prompt for the image",
	ChatMode:          "💬 Chat mode",
	TalkHint:          "🎤 Send me a voice message",
	Cleared:           "🧹 Settings cleared",
	ImageFailed:       "❌ Image generation failed",
	RecognitionFailed: "❌ Voice recognition failed",
	WhisperError:      "❌ Whisper response error",
	EmptyTranscript:   "❌ Voice not recognized",
	ChatFailed:        "⚠️ AI failed to reply",
	DownloadFailed:    "⚠️ Could not download the voice message",
	ConvertFailed:     "⚠️ Could not process the voice message",
}

func TextsFor(lang user.Language) Texts {
	if lang == user.LangEnglish {
		return textsEN
	}
	return textsKH
}
