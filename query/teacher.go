package query

import (
	"html"
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/notaneet/rasp43/model"
	"github.com/notaneet/rasp43/utils"
)

// TeacherEntry пара преподавателя в одной из групп
type TeacherEntry struct {
	Group string
	Time  string
	Text  string //Строка пары как в расписании группы
}

// TeacherDays пары преподавателя по дням, дни в порядке обнаружения
type TeacherDays struct {
	days *orderedmap.OrderedMap[string, []TeacherEntry]
}

// FindTeacherDays найти пары, где среди преподавателей есть lastName (подстрока без учёта регистра).
// Имя должно попасть и в выводимую строку: у самоподготовки преподаватель не показывается
func FindTeacherDays(tt *model.Timetable, lastName string) *TeacherDays {
	ret := &TeacherDays{days: orderedmap.NewOrderedMap[string, []TeacherEntry]()}

	needle := strings.ToLower(strings.TrimSpace(lastName))
	if needle == "" {
		return ret
	}

	for _, g := range tt.Groups() {
		for _, day := range g.Days() {
			for _, s := range day.Sessions {
				if !teachesIn(s, needle) {
					continue
				}
				text, ok := FormatSession(s)
				if !ok || !strings.Contains(strings.ToLower(html.UnescapeString(text)), needle) {
					continue
				}
				entries, _ := ret.days.Get(day.Label)
				ret.days.Set(day.Label, append(entries, TeacherEntry{Group: g.Name, Time: s.Time, Text: text}))
			}
		}
	}
	return ret
}

func teachesIn(s model.ClassSession, needle string) bool {
	for _, teacher := range s.Teachers {
		if strings.Contains(strings.ToLower(teacher), needle) {
			return true
		}
	}
	return false
}

// Labels дни с парами, по порядку недели
func (t *TeacherDays) Labels() []string {
	if t == nil {
		return nil
	}
	return SortDayLabels(t.days.Keys())
}

// Len кол-во дней с парами
func (t *TeacherDays) Len() int {
	if t == nil {
		return 0
	}
	return t.days.Len()
}

// Entries пары дня в порядке обнаружения
func (t *TeacherDays) Entries(label string) []TeacherEntry {
	if t == nil {
		return nil
	}
	entries, _ := t.days.Get(label)
	return entries
}

// TeacherDaySchedule пары преподавателя за день по времени начала, с группой в скобках
func TeacherDaySchedule(t *TeacherDays, label string) string {
	entries := append([]TeacherEntry(nil), t.Entries(label)...)
	if len(entries) == 0 {
		return NoTeacherClassesText
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, aok := utils.SlotStart(entries[i].Time)
		b, bok := utils.SlotStart(entries[j].Time)
		if aok != bok {
			return aok
		}
		return a < b
	})

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Text+" ("+html.EscapeString(model.DisplayName(e.Group))+")")
	}
	return strings.Join(lines, "\n")
}
