package query

import (
	"sort"
	"strings"

	"github.com/notaneet/rasp43/utils"
)

var weekdayRank = map[string]int{
	"понедельник": 1,
	"вторник":     2,
	"среда":       3,
	"четверг":     4,
	"пятница":     5,
	"суббота":     6,
	"воскресенье": 7,
}

// Учебный год начинается в августе: сентябрь раньше января
const academicYearStart = 8

// SortDayLabels упорядочить метки "День, дд.мм" по дате, при равенстве по дню недели.
// Если дату не разобрать, порядок по дню недели, затем по тексту метки
func SortDayLabels(labels []string) []string {
	ret := append([]string(nil), labels...)
	sort.SliceStable(ret, func(i, j int) bool {
		return dayKey(ret[i]).less(dayKey(ret[j]))
	})
	return ret
}

type labelKey struct {
	dated bool
	date  int
	rank  int
	label string
}

func dayKey(label string) labelKey {
	weekday, date, _ := strings.Cut(label, ",")
	key := labelKey{label: label, rank: len(weekdayRank) + 1}
	if r, ok := weekdayRank[strings.ToLower(strings.TrimSpace(weekday))]; ok {
		key.rank = r
	}
	if day, month, ok := utils.DayMonth(date); ok {
		if month < academicYearStart {
			month += 12
		}
		key.dated = true
		key.date = month*100 + day
	}
	return key
}

func (k labelKey) less(o labelKey) bool {
	if k.dated != o.dated {
		return k.dated
	}
	if k.date != o.date {
		return k.date < o.date
	}
	if k.rank != o.rank {
		return k.rank < o.rank
	}
	return k.label < o.label
}
