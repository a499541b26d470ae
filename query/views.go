package query

import (
	"errors"
	"html"
	"strings"

	"github.com/notaneet/rasp43/model"
)

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrDayOutOfRange = errors.New("day out of range")
	ErrNoTimetable   = errors.New("timetable not loaded")
)

// Тексты ответов
const (
	GroupNotFoundText    = "Группа не найдена."
	DayUnavailableText   = "Информация для этого дня недоступна."
	NoTimetableText      = "Расписание отсутствует. Пожалуйста, загрузите файл с расписанием."
	NoClassesText        = "Занятий нет."
	NoTeacherClassesText = "В этот день занятий у указанного учителя нет."
)

// Message текст для пользователя вместо ошибки запроса
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNoTimetable):
		return NoTimetableText
	case errors.Is(err, ErrGroupNotFound):
		return GroupNotFoundText
	case errors.Is(err, ErrDayOutOfRange):
		return DayUnavailableText
	default:
		return "Что-то пошло не так, попробуйте позже."
	}
}

// Day день группы по номеру с нуля
func Day(tt *model.Timetable, group string, offset int) (model.Day, error) {
	g, err := lookup(tt, group)
	if err != nil {
		return model.Day{}, err
	}
	day, ok := g.Day(offset)
	if !ok {
		return model.Day{}, ErrDayOutOfRange
	}
	return day, nil
}

// DayView расписание группы на один день
func DayView(tt *model.Timetable, group string, offset int) string {
	day, err := Day(tt, group, offset)
	if err != nil {
		return Message(err)
	}
	return renderDay(day)
}

// WeekView расписание группы на все дни подряд, пустые дни тоже показываются
func WeekView(tt *model.Timetable, group string) string {
	g, err := lookup(tt, group)
	if err != nil {
		return Message(err)
	}

	var b strings.Builder
	for _, day := range g.Days() {
		b.WriteString(renderDay(day))
		b.WriteString("\n")
	}
	return b.String()
}

// WeekRange первая и последняя дата недели группы для подписи кнопки
func WeekRange(tt *model.Timetable, group string, noDate string) (string, string) {
	g, err := lookup(tt, group)
	if err != nil || g.Len() == 0 {
		return noDate, noDate
	}
	days := g.Days()
	return orNoDate(days[0].Date, noDate), orNoDate(days[len(days)-1].Date, noDate)
}

func orNoDate(date, noDate string) string {
	if date == "" {
		return noDate
	}
	return date
}

func lookup(tt *model.Timetable, group string) (*model.GroupSchedule, error) {
	if tt.Empty() {
		return nil, ErrNoTimetable
	}
	g, ok := tt.Group(group)
	if !ok {
		return nil, ErrGroupNotFound
	}
	return g, nil
}

func renderDay(day model.Day) string {
	var b strings.Builder
	b.WriteString("<b>" + html.EscapeString(day.Label) + ":</b>\n")

	empty := true
	for _, s := range day.Sessions {
		line, ok := FormatSession(s)
		if !ok {
			continue
		}
		empty = false
		b.WriteString(line + "\n")
	}
	if empty {
		b.WriteString(NoClassesText + "\n")
	}
	return b.String()
}
