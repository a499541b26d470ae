package utils

import "strings"

// GetOrString получить i-тый элемент в slice, если нет, то вернуть or
func GetOrString(slice []string, i int, or string) string {
	if i >= 0 && len(slice)-1 >= i {
		return slice[i]
	}
	return or
}

// SplitLines разбить многострочную клетку на строки (по одной на подгруппу).
// Пустая клетка - nil, а не слайс с одной пустой строкой.
func SplitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}

// AnyNotEmpty есть ли в slice хоть одна непустая строка
func AnyNotEmpty(slice []string) bool {
	for _, s := range slice {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}
