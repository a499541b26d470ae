package query

import (
	"reflect"
	"testing"

	"github.com/notaneet/rasp43/model"
)

func discipline(s string) *string { return &s }

func session(time, disc, typ, teacher, room string) model.ClassSession {
	s := model.ClassSession{Time: time, TypeOfClass: typ}
	if disc != "" {
		s.Discipline = discipline(disc)
	}
	if teacher != "" {
		s.Teachers = []string{teacher}
	}
	if room != "" {
		s.Auditoriums = []string{room}
	}
	return s
}

func testTimetable() *model.Timetable {
	tt := model.NewTimetable("test")

	isp := model.NewGroupSchedule("Группа ИСП-21")
	isp.AddDay(model.Day{Label: "Понедельник, 02.09", Date: "02.09", Sessions: []model.ClassSession{
		session("8.20-9.50", "Математика", "лк", "Иванов И.И.", "101"),
		session("10.00-11.30", "", "", "", ""),
		session("11.45-13.15", "Физика", "пр", "Петров П.П.", "202"),
	}})
	isp.AddDay(model.Day{Label: "Вторник, 03.09", Date: "03.09", Sessions: []model.ClassSession{
		session("8.20-9.50", "", "", "", ""),
	}})
	tt.SetGroup(isp)

	sa := model.NewGroupSchedule("Группа СА-22")
	sa.AddDay(model.Day{Label: "Понедельник, 02.09", Date: "02.09", Sessions: []model.ClassSession{
		session("8.20-9.50", "Информатика", "", "Петров П.П.", "303"),
		session("10.00-11.30", "Час самостоятельной подготовки", "", "Петров П.П.", "303"),
	}})
	tt.SetGroup(sa)

	return tt
}

func TestFormatSession(t *testing.T) {
	tests := []struct {
		name    string
		session model.ClassSession
		want    string
		ok      bool
	}{
		{"no class", session("8.20-9.50", "", "лк", "Иванов", "101"), "", false},
		{"nan text", session("8.20-9.50", "NaN ", "", "", ""), "", false},
		{"full", session("8.20-9.50", "Математика", "лк", "Иванов И.И.", "101"), "<u>8.20-9.50</u> - Математика [лк], Преп: Иванов И.И., Ауд: 101", true},
		{"no details", session("8.20-9.50", "Математика", "", "", ""), "<u>8.20-9.50</u> - Математика", true},
		{"no time", session("", "Математика", "", "", "101"), "Математика Ауд: 101", true},
		{"escaped", session("8.20-9.50", "Физика <лаб>", "", "", ""), "<u>8.20-9.50</u> - Физика &lt;лаб&gt;", true},
		{"independent study", session("8.20-9.50", "Час самостоятельной подготовки", "", "Иванов", "101"), "Час самостоятельной подготовки", true},
		{"subgroups", model.ClassSession{
			Time:        "10.00-11.30",
			Discipline:  discipline("Английский\nНемецкий"),
			TypeOfClass: "пр",
			Teachers:    []string{"Смирнова", "Кузнецова"},
			Auditoriums: []string{"301"},
		}, "<u>10.00-11.30</u> - Английский [пр], Преп: Смирнова, Ауд: 301\n    Немецкий [пр], Преп: Кузнецова", true},
		{"subgroup nan", model.ClassSession{
			Time:       "10.00-11.30",
			Discipline: discipline("Английский\nnan"),
		}, "<u>10.00-11.30</u> - Английский", true},
		{"subgroup blank", model.ClassSession{
			Time:        "10.00-11.30",
			Discipline:  discipline("Английский\n\nНемецкий"),
			Teachers:    []string{"Смирнова", "Кузнецова", "Орлова"},
			Auditoriums: []string{"301", "302", "303"},
		}, "<u>10.00-11.30</u> - Английский Преп: Смирнова, Ауд: 301\n    Немецкий Преп: Орлова, Ауд: 303", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatSession(tt.session)
			if ok != tt.ok || got != tt.want {
				t.Errorf("FormatSession() = %q, %v, want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDayView(t *testing.T) {
	tt := testTimetable()

	tests := []struct {
		name   string
		group  string
		offset int
		want   string
	}{
		{"monday", "Группа ИСП-21", 0, "<b>Понедельник, 02.09:</b>\n" +
			"<u>8.20-9.50</u> - Математика [лк], Преп: Иванов И.И., Ауд: 101\n" +
			"<u>11.45-13.15</u> - Физика [пр], Преп: Петров П.П., Ауд: 202\n"},
		{"empty day", "Группа ИСП-21", 1, "<b>Вторник, 03.09:</b>\nЗанятий нет.\n"},
		{"negative offset", "Группа ИСП-21", -1, DayUnavailableText},
		{"past the end", "Группа ИСП-21", 2, DayUnavailableText},
		{"unknown group", "Группа XX", 0, GroupNotFoundText},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DayView(tt, tc.group, tc.offset); got != tc.want {
				t.Errorf("DayView() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDayNoTimetable(t *testing.T) {
	if got := DayView(nil, "Группа ИСП-21", 0); got != NoTimetableText {
		t.Errorf("DayView(nil) = %q", got)
	}
	if got := WeekView(model.NewTimetable("x"), "Группа ИСП-21"); got != NoTimetableText {
		t.Errorf("WeekView(empty) = %q", got)
	}
}

func TestWeekView(t *testing.T) {
	want := "<b>Понедельник, 02.09:</b>\n" +
		"<u>8.20-9.50</u> - Математика [лк], Преп: Иванов И.И., Ауд: 101\n" +
		"<u>11.45-13.15</u> - Физика [пр], Преп: Петров П.П., Ауд: 202\n" +
		"\n" +
		"<b>Вторник, 03.09:</b>\n" +
		"Занятий нет.\n" +
		"\n"

	if got := WeekView(testTimetable(), "Группа ИСП-21"); got != want {
		t.Errorf("WeekView() = %q, want %q", got, want)
	}
}

func TestWeekRange(t *testing.T) {
	start, end := WeekRange(testTimetable(), "Группа ИСП-21", "Н/Д")
	if start != "02.09" || end != "03.09" {
		t.Errorf("WeekRange() = %s, %s", start, end)
	}
	start, end = WeekRange(testTimetable(), "Группа XX", "Н/Д")
	if start != "Н/Д" || end != "Н/Д" {
		t.Errorf("WeekRange(unknown) = %s, %s", start, end)
	}
}

func TestFindTeacherDays(t *testing.T) {
	days := FindTeacherDays(testTimetable(), "петров")

	if got := days.Labels(); !reflect.DeepEqual(got, []string{"Понедельник, 02.09"}) {
		t.Fatalf("Labels() = %v", got)
	}

	// самоподготовка не считается: преподаватель в ней не выводится
	entries := days.Entries("Понедельник, 02.09")
	if len(entries) != 2 {
		t.Fatalf("Entries() = %+v", entries)
	}
	if entries[0].Group != "Группа ИСП-21" || entries[1].Group != "Группа СА-22" {
		t.Errorf("groups = %s, %s", entries[0].Group, entries[1].Group)
	}

	if FindTeacherDays(testTimetable(), "  ").Len() != 0 {
		t.Error("blank query must find nothing")
	}
	if FindTeacherDays(testTimetable(), "Сидоров").Len() != 0 {
		t.Error("unknown teacher must find nothing")
	}
}

func TestFindTeacherDaysEscapedName(t *testing.T) {
	tt := model.NewTimetable("test")
	g := model.NewGroupSchedule("Группа ИСП-21")
	g.AddDay(model.Day{Label: "Среда, 04.09", Date: "04.09", Sessions: []model.ClassSession{
		session("8.20-9.50", "История", "лк", "Д'Артаньян Ш.", "101"),
		session("10.00-11.30", "Право", "", "Smith & Co", "102"),
	}})
	tt.SetGroup(g)

	tests := []struct {
		name string
		want int
	}{
		{"Д'Артаньян", 1},
		{"smith & co", 1},
		{"Атос", 0},
	}
	for _, tc := range tests {
		if got := FindTeacherDays(tt, tc.name).Len(); got != tc.want {
			t.Errorf("FindTeacherDays(%q).Len() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestTeacherDaySchedule(t *testing.T) {
	days := FindTeacherDays(testTimetable(), "Петров")

	want := "<u>8.20-9.50</u> - Информатика Преп: Петров П.П., Ауд: 303 (СА-22)\n" +
		"<u>11.45-13.15</u> - Физика [пр], Преп: Петров П.П., Ауд: 202 (ИСП-21)"
	if got := TeacherDaySchedule(days, "Понедельник, 02.09"); got != want {
		t.Errorf("TeacherDaySchedule() = %q, want %q", got, want)
	}
	if got := TeacherDaySchedule(days, "Вторник, 03.09"); got != NoTeacherClassesText {
		t.Errorf("TeacherDaySchedule(no classes) = %q", got)
	}
}

func TestSortDayLabels(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   []string
	}{
		{
			"by date",
			[]string{"Среда, 04.09", "Понедельник, 02.09", "Вторник, 03.09"},
			[]string{"Понедельник, 02.09", "Вторник, 03.09", "Среда, 04.09"},
		},
		{
			"across new year",
			[]string{"Четверг, 09.01", "Понедельник, 30.12"},
			[]string{"Понедельник, 30.12", "Четверг, 09.01"},
		},
		{
			"next week before later weekday",
			[]string{"Суббота, 07.09", "Понедельник, 09.09", "Пятница, 06.09"},
			[]string{"Пятница, 06.09", "Суббота, 07.09", "Понедельник, 09.09"},
		},
		{
			"date before weekday",
			[]string{"Понедельник, 09.09", "Вторник, 03.09"},
			[]string{"Вторник, 03.09", "Понедельник, 09.09"},
		},
		{
			"placeholder dates by weekday",
			[]string{"Суббота, Н/Д", "Понедельник, 02.09", "Вторник, Н/Д"},
			[]string{"Понедельник, 02.09", "Вторник, Н/Д", "Суббота, Н/Д"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SortDayLabels(tt.labels); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortDayLabels() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterGroups(t *testing.T) {
	groups := []string{"Группа ИСП-21", "Группа ИСП-22", "Группа СА-21", "Группа ИСПк-21"}

	tests := []struct {
		query string
		want  []string
	}{
		{"исп 21", []string{"Группа ИСП-21", "Группа ИСПк-21"}},
		{"ИСП-22", []string{"Группа ИСП-22"}},
		{"са21", []string{"Группа СА-21"}},
		{"ПИ", nil},
		{"", groups},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := FilterGroups(tt.query, groups); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterGroups(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
