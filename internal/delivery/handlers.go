package delivery

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/super_bot/internal/user"
	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

type UserHandler struct {
	users user.Service
	log   *logger.ZapLogger
}

func NewUserHandler(users user.Service, log *logger.ZapLogger) *UserHandler {
	return &UserHandler{
		users: users,
		log:   log,
	}
}

type userView struct {
	ChatID int64 `json:"chat_id"`
	user.UserState
}

type statsView struct {
	Users      int                   `json:"users"`
	ByLanguage map[user.Language]int `json:"by_language"`
	ByMode     map[user.Mode]int     `json:"by_mode"`
	VoiceOn    int                   `json:"voice_on"`
}

// GET /stats
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	all := h.users.List()

	out := statsView{
		Users:      len(all),
		ByLanguage: map[user.Language]int{},
		ByMode:     map[user.Mode]int{},
	}
	for _, st := range all {
		out.ByLanguage[st.Language]++
		out.ByMode[st.Mode]++
		if st.VoiceReply {
			out.VoiceOn++
		}
	}

	h.writeJSON(w, out)
}

// GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.users.List()

	out := make([]userView, 0, len(all))
	for id, st := range all {
		out = append(out, userView{ChatID: id, UserState: st})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChatID < out[j].ChatID })

	h.writeJSON(w, out)
}

// GET /users/{chat_id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	chatID, ok := parseChatID(w, r)
	if !ok {
		return
	}

	st, found := h.users.Lookup(chatID)
	if !found {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, userView{ChatID: chatID, UserState: st})
}

// DELETE /users/{chat_id}
func (h *UserHandler) Reset(w http.ResponseWriter, r *http.Request) {
	chatID, ok := parseChatID(w, r)
	if !ok {
		return
	}

	if _, found := h.users.Lookup(chatID); !found {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	h.users.ResetUserSettings(chatID)
	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "user state reset chat_id=" + strconv.FormatInt(chatID, 10),
		Service: "super_bot",
	})

	w.WriteHeader(http.StatusNoContent)
}

func parseChatID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "chat_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid chat_id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *UserHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "encode response", Error: err})
	}
}
