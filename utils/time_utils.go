package utils

import (
	"regexp"
	"strings"
)

var clockRE = regexp.MustCompile(`^(\d{1,2})[.:](\d{2})$`)

// SlotStart минуты от начала суток для времени начала пары ("8.20-9.50" -> 500)
func SlotStart(timeRange string) (int, bool) {
	start := strings.TrimSpace(strings.Split(timeRange, "-")[0])
	m := clockRE.FindStringSubmatch(start)
	if m == nil {
		return 0, false
	}
	return twoDigits(m[1])*60 + twoDigits(m[2]), true
}

var dayMonthRE = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})(?:\.\d{2,4})?$`)

// DayMonth разобрать дату вида дд.мм (год, если есть, игнорируется)
func DayMonth(date string) (day, month int, ok bool) {
	m := dayMonthRE.FindStringSubmatch(strings.TrimSpace(date))
	if m == nil {
		return 0, 0, false
	}
	day, month = twoDigits(m[1]), twoDigits(m[2])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, 0, false
	}
	return day, month, true
}
