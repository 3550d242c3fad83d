package telegram

import (
	"context"

	"github.com/Vovarama1992/super_bot/internal/user"
)

// handleImage - в режиме картинок любой текст считается промптом
func (r *Router) handleImage(ctx context.Context, chatID int64, st user.UserState, prompt string) Action {
	r.log.Infof("[image] start chat=%d", chatID)

	data, err := r.images.Generate(ctx, chatID, prompt)
	if err != nil {
		r.log.Warnf("[image] generate fail chat=%d: %v", chatID, err)
		return textAction(TextsFor(st.Language).ImageFailed)
	}

	return Action{Kind: ActionImage, Data: data}
}
