package query

import (
	"regexp"
	"strings"

	"github.com/notaneet/rasp43/utils"
)

var tokenRE = regexp.MustCompile(`\p{L}+|\d+`)

func normalize(s string) string {
	return strings.ToLower(utils.StripSpaces(s))
}

// FilterGroups группы, в названии которых есть каждый кусок запроса (буквы и цифры отдельно).
// "исп 21" найдёт "Группа ИСП-21". Порядок как в groups
func FilterGroups(queryText string, groups []string) []string {
	tokens := tokenRE.FindAllString(normalize(queryText), -1)

	var ret []string
	for _, group := range groups {
		name := normalize(group)
		ok := true
		for _, token := range tokens {
			if !strings.Contains(name, token) {
				ok = false
				break
			}
		}
		if ok {
			ret = append(ret, group)
		}
	}
	return ret
}
