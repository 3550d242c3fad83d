package telegram

import (
	"context"

	"github.com/Vovarama1992/super_bot/internal/speech"
	"github.com/Vovarama1992/super_bot/internal/user"
)

// handleText - текст (или расшифровка голоса) → LLM → текст либо голос
func (r *Router) handleText(ctx context.Context, chatID int64, st user.UserState, text string) Action {
	t := TextsFor(st.Language)

	r.log.Infof("[text] start chat=%d lang=%s voice=%v", chatID, st.Language, st.VoiceReply)

	reply, err := r.chat.GetReply(ctx, st.Language, text)
	if err != nil {
		r.log.Warnf("[text] ai reply fail chat=%d: %v", chatID, err)
		return textAction(t.ChatFailed)
	}

	if !st.VoiceReply {
		return textAction(reply)
	}

	audio, err := r.speech.Synthesize(ctx, st.Language, reply)
	if err != nil {
		// голос не получился - отдаём тот же очищенный текст
		r.log.Warnf("[text] tts fail chat=%d, falling back to text: %v", chatID, err)
		if cleaned := speech.CleanForTTS(reply); cleaned != "" {
			return textAction(cleaned)
		}
		return textAction(reply)
	}

	return Action{Kind: ActionVoice, Data: audio}
}
