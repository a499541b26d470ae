package vyatsu

import (
	"strings"

	"github.com/notaneet/rasp43/config"
	"github.com/notaneet/rasp43/grid"
)

// Даты из отдельной области: первый столбец, каждые Step строк, пустые пропускаем.
// "Понедельник 02.09" -> "02.09"
func extractDates(g grid.Grid, dr config.DateRegion) []string {
	var dates []string
	for row := 0; row < len(g); row += dr.Step {
		v := g.Cell(row, 0)
		if v == "" {
			continue
		}
		if fields := strings.Fields(v); dr.Token >= 0 && dr.Token < len(fields) {
			v = fields[dr.Token]
		}
		dates = append(dates, v)
	}
	return dates
}
