package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/notaneet/rasp43/utils"
)

// Matcher фильтр по названию: точное совпадение, подстрока без учёта регистра
// или регулярка, если значение начинается с ~
type Matcher struct {
	MatchRaw utils.StringEnum
	regexps  []*regexp.Regexp
}

// Compile проверить и скомпилировать регулярки, вызывать до Match
func (m *Matcher) Compile() error {
	m.regexps = m.regexps[:0]
	for _, s := range m.MatchRaw {
		if !strings.HasPrefix(s, "~") {
			continue
		}
		re, err := regexp.Compile(s[1:])
		if err != nil {
			return fmt.Errorf("неверная регулярка %q: %w", s, err)
		}
		m.regexps = append(m.regexps, re)
	}
	return nil
}

func (m *Matcher) Match(text string) bool {
	if len(m.MatchRaw) == 0 {
		return true
	}

	for _, s := range m.MatchRaw {
		if strings.HasPrefix(s, "~") {
			continue
		}
		if s == text || strings.Contains(strings.ToLower(text), strings.ToLower(s)) {
			return true
		}
	}

	for _, re := range m.regexps {
		if re.MatchString(text) {
			return true
		}
	}

	return false
}
