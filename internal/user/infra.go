package user

import (
	"sync"
	"time"
)

type memoryStore struct {
	mu     sync.RWMutex
	states map[int64]*UserState
	now    func() time.Time
}

func NewMemoryStore() Store {
	return &memoryStore{
		states: make(map[int64]*UserState),
		now:    time.Now,
	}
}

// Get - копия состояния, при первом обращении создаёт дефолт
func (s *memoryStore) Get(chatID int64) UserState {
	s.mu.RLock()
	st, ok := s.states[chatID]
	if ok {
		out := *st
		s.mu.RUnlock()
		return out
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.ensure(chatID)
}

func (s *memoryStore) Lookup(chatID int64) (UserState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.states[chatID]
	if !ok {
		return UserState{}, false
	}
	return *st, true
}

func (s *memoryStore) Update(chatID int64, fn func(*UserState)) UserState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.ensure(chatID)
	fn(st)
	st.UpdatedAt = s.now()
	return *st
}

func (s *memoryStore) Reset(chatID int64) UserState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := DefaultState()
	st.UpdatedAt = s.now()
	s.states[chatID] = &st
	return st
}

func (s *memoryStore) List() map[int64]UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]UserState, len(s.states))
	for id, st := range s.states {
		out[id] = *st
	}
	return out
}

func (s *memoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// ensure вызывать только под write-локом
func (s *memoryStore) ensure(chatID int64) *UserState {
	st, ok := s.states[chatID]
	if !ok {
		d := DefaultState()
		d.UpdatedAt = s.now()
		st = &d
		s.states[chatID] = st
	}
	return st
}
