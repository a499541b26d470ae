package model

import (
	"bytes"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// GroupPrefix слово, с которого в шапке начинается название группы
const GroupPrefix = "Группа"

// Timetable расписание всех групп одного файла. После публикации не меняется
type Timetable struct {
	Institution string
	groups      *orderedmap.OrderedMap[string, *GroupSchedule]
}

func NewTimetable(institution string) *Timetable {
	return &Timetable{
		Institution: institution,
		groups:      orderedmap.NewOrderedMap[string, *GroupSchedule](),
	}
}

// SetGroup добавить группу; повтор имени заменяет расписание, позиция сохраняется
func (t *Timetable) SetGroup(g *GroupSchedule) {
	t.groups.Set(g.Name, g)
}

// Group расписание группы по имени из шапки (с "Группа")
func (t *Timetable) Group(name string) (*GroupSchedule, bool) {
	if t == nil {
		return nil, false
	}
	return t.groups.Get(name)
}

// GroupNames имена групп в порядке столбцов
func (t *Timetable) GroupNames() []string {
	if t == nil {
		return nil
	}
	return t.groups.Keys()
}

// Groups расписания групп в порядке столбцов
func (t *Timetable) Groups() []*GroupSchedule {
	if t == nil {
		return nil
	}
	ret := make([]*GroupSchedule, 0, t.groups.Len())
	for el := t.groups.Front(); el != nil; el = el.Next() {
		ret = append(ret, el.Value)
	}
	return ret
}

// DaysFor названия дней группы, nil если группы нет
func (t *Timetable) DaysFor(name string) []string {
	g, ok := t.Group(name)
	if !ok {
		return nil
	}
	return g.Labels()
}

func (t *Timetable) Len() int {
	if t == nil {
		return 0
	}
	return t.groups.Len()
}

// Empty нечего показывать
func (t *Timetable) Empty() bool {
	return t.Len() == 0
}

// MarshalJSON {"Группа ...": {"Понедельник, 02.09": [...]}}
func (t *Timetable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for el := t.groups.Front(); el != nil; el = el.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, el.Key); err != nil {
			return nil, err
		}
		b, err := el.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DisplayName название группы без слова "Группа"
func DisplayName(group string) string {
	return strings.TrimSpace(strings.ReplaceAll(group, GroupPrefix, ""))
}
