// Package query отвечает на запросы бота по загруженному расписанию: день, неделя,
// поиск преподавателя и групп. Ошибки запроса не выходят наружу, а превращаются в текст.
// Разметка ответа - HTML-режим Telegram.
package query

import (
	"html"
	"strings"

	"github.com/notaneet/rasp43/model"
)

// Занятия самоподготовки показываются без времени, преподавателя и аудитории
const independentStudy = "самостоятельной подготовки"

const subgroupIndent = "    "

// FormatSession строка пары для сообщения, текст из таблицы экранируется.
// false - пары нет, строку не выводить
func FormatSession(s model.ClassSession) (string, bool) {
	if !s.HasClass() {
		return "", false
	}

	independent := strings.Contains(strings.ToLower(s.DisciplineName()), independentStudy)

	var b strings.Builder
	first := true
	for _, sub := range s.Subgroups() {
		if d := strings.TrimSpace(sub.Discipline); d == "" || strings.EqualFold(d, model.NoDiscipline) {
			continue
		}

		var details []string
		if s.TypeOfClass != "" {
			details = append(details, "["+html.EscapeString(s.TypeOfClass)+"]")
		}
		if !independent && sub.Teacher != "" {
			details = append(details, "Преп: "+html.EscapeString(sub.Teacher))
		}
		if !independent && sub.Auditorium != "" {
			details = append(details, "Ауд: "+html.EscapeString(sub.Auditorium))
		}

		if first {
			if s.Time != "" && !independent {
				b.WriteString("<u>" + html.EscapeString(s.Time) + "</u> - ")
			}
			first = false
		} else {
			b.WriteString("\n" + subgroupIndent)
		}
		b.WriteString(html.EscapeString(sub.Discipline))
		if len(details) > 0 {
			b.WriteString(" " + strings.Join(details, ", "))
		}
	}

	if first {
		return "", false
	}
	return b.String(), true
}
