package model

import (
	"bytes"
	"encoding/json"

	"github.com/elliotchance/orderedmap/v2"
)

// Day один учебный день группы
type Day struct {
	Label    string         //"Понедельник, 02.09"
	Weekday  string         //День недели
	Date     string         //Дата как в файле, не разбирается
	Sessions []ClassSession //Пары в порядке сетки звонков
}

// HasClasses есть ли в дне хоть одна пара
func (d Day) HasClasses() bool {
	for _, s := range d.Sessions {
		if s.HasClass() {
			return true
		}
	}
	return false
}

// GroupSchedule дни группы в порядке недели
type GroupSchedule struct {
	Name string
	days *orderedmap.OrderedMap[string, Day]
}

func NewGroupSchedule(name string) *GroupSchedule {
	return &GroupSchedule{Name: name, days: orderedmap.NewOrderedMap[string, Day]()}
}

// AddDay добавить день; день с тем же Label заменяется, но остаётся на своём месте
func (g *GroupSchedule) AddDay(day Day) {
	g.days.Set(day.Label, day)
}

func (g *GroupSchedule) Len() int {
	if g == nil {
		return 0
	}
	return g.days.Len()
}

// Labels названия дней по порядку
func (g *GroupSchedule) Labels() []string {
	if g == nil {
		return nil
	}
	return g.days.Keys()
}

// Days дни по порядку
func (g *GroupSchedule) Days() []Day {
	if g == nil {
		return nil
	}
	ret := make([]Day, 0, g.days.Len())
	for el := g.days.Front(); el != nil; el = el.Next() {
		ret = append(ret, el.Value)
	}
	return ret
}

// Day i-тый день
func (g *GroupSchedule) Day(i int) (Day, bool) {
	days := g.Days()
	if i < 0 || i >= len(days) {
		return Day{}, false
	}
	return days[i], true
}

// DayByLabel день по названию
func (g *GroupSchedule) DayByLabel(label string) (Day, bool) {
	if g == nil {
		return Day{}, false
	}
	return g.days.Get(label)
}

// MarshalJSON {"Понедельник, 02.09": [...], ...} с сохранением порядка
func (g *GroupSchedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for el := g.days.Front(); el != nil; el = el.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, el.Key); err != nil {
			return nil, err
		}
		sessions := el.Value.Sessions
		if sessions == nil {
			sessions = []ClassSession{}
		}
		if err := writeValue(&buf, sessions); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	if err := writeValue(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	return nil
}

// writeValue без экранирования <, > и & (в названиях бывает "Ин.яз <англ>")
func writeValue(buf *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode дописывает перевод строки
	buf.Truncate(buf.Len() - 1)
	return nil
}
