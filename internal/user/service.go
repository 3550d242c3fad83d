package user

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) Get(chatID int64) UserState {
	return s.store.Get(chatID)
}

func (s *service) Lookup(chatID int64) (UserState, bool) {
	return s.store.Lookup(chatID)
}

func (s *service) List() map[int64]UserState {
	return s.store.List()
}

func (s *service) ToggleLanguage(chatID int64) UserState {
	return s.store.Update(chatID, func(st *UserState) { st.ToggleLanguage() })
}

func (s *service) ToggleVoice(chatID int64) UserState {
	return s.store.Update(chatID, func(st *UserState) { st.ToggleVoice() })
}

func (s *service) SetMode(chatID int64, m Mode) UserState {
	return s.store.Update(chatID, func(st *UserState) { st.SetMode(m) })
}

// ResetUserSettings - /start: всё в дефолт
func (s *service) ResetUserSettings(chatID int64) UserState {
	return s.store.Reset(chatID)
}

// ClearKeepLanguage - кнопка «очистить»: дефолт, но язык остаётся
func (s *service) ClearKeepLanguage(chatID int64) UserState {
	return s.store.Update(chatID, func(st *UserState) {
		lang := st.Language
		*st = DefaultState()
		st.Language = lang
	})
}
