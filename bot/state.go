package bot

import (
	"sync"

	"github.com/notaneet/rasp43/query"
)

// chatState что пользователь выбрал в меню
type chatState struct {
	page     int //Страница списка групп
	userPage int //Страница /list_users
	group    string
	teacher  *query.TeacherDays //Последний поиск преподавателя
}

type states struct {
	mu sync.Mutex
	m  map[int64]*chatState
}

func newStates() *states {
	return &states{m: make(map[int64]*chatState)}
}

// with изменить состояние чата под блокировкой
func (s *states) with(chatID int64, fn func(st *chatState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.m[chatID]
	if !ok {
		st = &chatState{}
		s.m[chatID] = st
	}
	fn(st)
}

// get копия состояния чата
func (s *states) get(chatID int64) chatState {
	var ret chatState
	s.with(chatID, func(st *chatState) { ret = *st })
	return ret
}
