package vyatsu

// Шаблон колледжа: в строке-шапке названия групп ("Группа ИСП-21", иногда несколько в одной клетке
// через перенос), под каждой группой 4 столбца - дисциплина, вид, преподаватель, аудитория.
// Каждый день начинается строкой "Дисциплина,модуль", дальше пары по сетке звонков.
// Даты лежат отдельно, в столбце G, одна на каждые 7 строк.

import (
	"errors"
	"fmt"

	"github.com/notaneet/rasp43/grid"
	"github.com/notaneet/rasp43/model"
	"go.uber.org/zap"
)

// ErrNoGroups в шапке не нашлось ни одной группы
var ErrNoGroups = errors.New("no groups in header row")

// Спарсить файл с диска
func (p *collegePlugin) parseFile(path string) (*model.Timetable, error) {
	layout := p.config.Layout

	grids, err := grid.ReadRegions(path, layout.SheetName, layout.Region, layout.Dates.Region)
	if err != nil {
		return nil, err
	}
	return p.parseGrid(grids[0], extractDates(grids[1], layout.Dates))
}

// Спарсить скачанный файл
func (p *collegePlugin) parseBytes(name string, data []byte) (*model.Timetable, error) {
	layout := p.config.Layout

	grids, err := grid.ReadRegionsBytes(name, data, layout.SheetName, layout.Region, layout.Dates.Region)
	if err != nil {
		return nil, err
	}
	return p.parseGrid(grids[0], extractDates(grids[1], layout.Dates))
}

// Собрать расписание всех групп из области листа
func (p *collegePlugin) parseGrid(g grid.Grid, dates []string) (*model.Timetable, error) {
	if len(g) == 0 {
		return nil, fmt.Errorf("%w: empty region", grid.ErrMalformedRegion)
	}

	spans := p.segmentGroups(g[0])
	if len(spans) == 0 {
		return nil, ErrNoGroups
	}

	tt := model.NewTimetable(p.GetInstitution())
	for _, span := range spans {
		tt.SetGroup(p.buildGroup(g, span, dates))
	}

	p.logger.Info("расписание собрано",
		zap.Int("groups", tt.Len()),
		zap.Int("dates", len(dates)))
	return tt, nil
}
