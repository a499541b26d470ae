package vyatsu

import (
	"strings"

	"go.uber.org/zap"
)

// Столбцы блока группы
const (
	disciplineColumn = iota
	typeColumn
	teacherColumn
	auditoriumColumn
)

// groupSpan столбцы [start, end) одной группы
type groupSpan struct {
	name       string
	start, end int
}

// Найти группы в строке-шапке, название берётся как есть, без пробелов по краям. Повтор имени: берётся последний блок, порядок - по первому
func (p *collegePlugin) segmentGroups(header []string) []groupSpan {
	layout := p.config.Layout

	var spans []groupSpan
	index := make(map[string]int)

	for col, cell := range header {
		if cell == "" {
			continue
		}
		for _, name := range strings.Split(cell, "\n") {
			name = strings.TrimSpace(name)
			if !strings.Contains(name, layout.GroupMarker) {
				continue
			}
			if !p.config.GroupMatcher.Match(name) {
				continue
			}

			span := groupSpan{name: name, start: col, end: col + layout.GroupWidth}
			if span.end > len(header) {
				span.end = len(header)
			}

			if i, ok := index[name]; ok {
				spans[i] = span
				continue
			}
			// Наложение блоков шаблон не допускает, но если случилось - данные у каждой группы свои
			if n := len(spans); n > 0 && spans[n-1].end > span.start && spans[n-1].start != span.start {
				p.logger.Debug("блоки групп перекрываются",
					zap.String("group", name),
					zap.String("previous", spans[n-1].name))
			}
			index[name] = len(spans)
			spans = append(spans, span)
		}
	}
	return spans
}
