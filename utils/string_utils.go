package utils

import (
	"regexp"
	"strconv"
)

var spaceRE = regexp.MustCompile(`\s+`)

// StripSpaces удалить вообще все пробельные символы, для поиска без учёта пробелов
func StripSpaces(s string) string {
	return spaceRE.ReplaceAllString(s, "")
}

// twoDigits число из подстроки, которую уже проверила регулярка
func twoDigits(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
