package vyatsu

import (
	"errors"

	"github.com/notaneet/rasp43/grid"
	"github.com/notaneet/rasp43/model"
	"github.com/notaneet/rasp43/utils"
	"go.uber.org/zap"
)

// ErrDateListExhausted дней больше, чем дат. Не фатально: ставим заглушку
var ErrDateListExhausted = errors.New("date list exhausted")

// Разбить блок группы на дни.
// Строка-маркер начинает день заново, день закрывается, когда кончилась сетка звонков
// или кончилась область. Номер дня сквозной, по нему берутся день недели и дата
func (p *collegePlugin) buildGroup(g grid.Grid, span groupSpan, dates []string) *model.GroupSchedule {
	layout := p.config.Layout
	schedule := model.NewGroupSchedule(span.name)

	last := len(g) - 1
	dayCounter, slot := 0, 0
	var sessions []model.ClassSession
	warned := false

	for row := 1; row <= last; row++ {
		if g.Cell(row, span.start) == layout.Sentinel {
			slot = 0
			sessions = nil
			continue
		}

		times := layout.SlotsFor(dayCounter)
		sessions = append(sessions, readSession(g, row, span, utils.GetOrString(times, slot, "")))
		slot++

		if slot == len(times) || row == last {
			date := layout.NoDate
			if dayCounter < len(dates) {
				date = dates[dayCounter]
			} else if !warned {
				warned = true
				p.logger.Warn("даты закончились, ставим заглушку",
					zap.String("group", span.name),
					zap.Int("day", dayCounter),
					zap.Error(ErrDateListExhausted))
			}

			weekday := layout.WeekdayName(dayCounter)
			schedule.AddDay(model.Day{
				Label:    weekday + ", " + date,
				Weekday:  weekday,
				Date:     date,
				Sessions: resolveContinuations(sessions),
			})

			sessions = nil
			slot = 0
			dayCounter++
		}
	}
	return schedule
}

// Одна строка блока группы
func readSession(g grid.Grid, row int, span groupSpan, time string) model.ClassSession {
	cell := func(offset int) string {
		if span.start+offset >= span.end {
			return ""
		}
		return g.Cell(row, span.start+offset)
	}

	return model.ClassSession{
		Time:        time,
		Discipline:  model.NewDiscipline(cell(disciplineColumn)),
		TypeOfClass: cell(typeColumn),
		Teachers:    utils.SplitLines(cell(teacherColumn)),
		Auditoriums: utils.SplitLines(cell(auditoriumColumn)),
	}
}
