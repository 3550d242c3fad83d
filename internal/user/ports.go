package user

import "time"

type Language string

const (
	LangKhmer   Language = "kh"
	LangEnglish Language = "en"
)

type Mode string

const (
	ModeChat  Mode = "chat"
	ModeImage Mode = "image"
)

// UserState - настройки одного чата, живут пока жив процесс
type UserState struct {
	Language   Language  `json:"language"`
	Mode       Mode      `json:"mode"`
	VoiceReply bool      `json:"voice_reply"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func DefaultState() UserState {
	return UserState{
		Language:   LangKhmer,
		Mode:       ModeChat,
		VoiceReply: true,
	}
}

func (s *UserState) ToggleLanguage() {
	if s.Language == LangEnglish {
		s.Language = LangKhmer
		return
	}
	s.Language = LangEnglish
}

func (s *UserState) ToggleVoice() {
	s.VoiceReply = !s.VoiceReply
}

func (s *UserState) SetMode(m Mode) {
	s.Mode = m
}

// Store - хранилище состояний по chatID
type Store interface {
	Get(chatID int64) UserState
	Update(chatID int64, fn func(*UserState)) UserState
	Reset(chatID int64) UserState
	Lookup(chatID int64) (UserState, bool)
	List() map[int64]UserState
	Len() int
}

// Service - бизнес-операции над состоянием
type Service interface {
	Get(chatID int64) UserState
	Lookup(chatID int64) (UserState, bool)
	List() map[int64]UserState
	ToggleLanguage(chatID int64) UserState
	ToggleVoice(chatID int64) UserState
	SetMode(chatID int64, m Mode) UserState
	ResetUserSettings(chatID int64) UserState
	ClearKeepLanguage(chatID int64) UserState
}
