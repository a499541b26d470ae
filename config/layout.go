package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Region прямоугольник на листе, строки и столбцы с нуля
type Region struct {
	StartRow int `yaml:"start_row"`
	Rows     int `yaml:"rows"`
	StartCol int `yaml:"start_col"`
	Cols     int `yaml:"cols"`
}

// DateRegion область с датами: одна дата на каждые Step строк первого столбца
type DateRegion struct {
	Region `yaml:",inline"`
	Step   int `yaml:"step"`
	// Номер слова в клетке ("Понедельник 02.09" -> 1)
	Token int `yaml:"token"`
}

// SlotTable время пар, действует начиная с дня недели FromDay (0 - понедельник)
type SlotTable struct {
	FromDay int      `yaml:"from_day"`
	Times   []string `yaml:"times"`
}

// Layout всё, что завязано на шаблон расписания учебного заведения
type Layout struct {
	SheetName   string      `yaml:"sheet_name"`
	Region      Region      `yaml:"region"`
	Dates       DateRegion  `yaml:"dates"`
	GroupMarker string      `yaml:"group_marker"`
	GroupWidth  int         `yaml:"group_width"`
	Sentinel    string      `yaml:"sentinel"`
	Weekdays    []string    `yaml:"weekdays"`
	Slots       []SlotTable `yaml:"slots"`
	// Подставляется, если дат в области меньше, чем дней
	NoDate string `yaml:"no_date"`
}

// DefaultLayout шаблон колледжа ВятГУ
func DefaultLayout() Layout {
	return Layout{
		SheetName: "Колледж ВятГУ",
		// Строка с группами - 24-я, дальше 42 строки пар. Столбцы A:HN
		Region: Region{StartRow: 23, Rows: 43, StartCol: 0, Cols: 222},
		// Столбцы G:H, строки 26-66
		Dates:       DateRegion{Region: Region{StartRow: 25, Rows: 41, StartCol: 6, Cols: 2}, Step: 7, Token: 1},
		GroupMarker: "Группа",
		GroupWidth:  4,
		Sentinel:    "Дисциплина,модуль",
		Weekdays:    []string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота"},
		Slots: []SlotTable{
			{FromDay: 0, Times: []string{"8.20-9.50", "10.00-11.30", "11.45-13.15", "14.00-15.30", "15.45-17.15", "17.20-18.50", "18.55 - 20.25"}},
			{FromDay: 5, Times: []string{"8.20-9.50", "10.00-11.30", "11.45-13.15", "13.20-14.50", "14.55-16.25", "16.30-18.00"}},
		},
		NoDate: "Н/Д",
	}
}

// LoadLayout прочитать шаблон из yaml поверх шаблона по умолчанию
func LoadLayout(path string) (Layout, error) {
	layout := DefaultLayout()
	if path == "" {
		return layout, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("не удалось прочитать шаблон: %w", err)
	}
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("не удалось распарсить YAML: %w", err)
	}
	return layout, layout.Validate()
}

var ErrInvalidLayout = errors.New("invalid layout")

func (l Layout) Validate() error {
	switch {
	case l.SheetName == "":
		return fmt.Errorf("%w: empty sheet name", ErrInvalidLayout)
	case l.Region.Rows < 2 || l.Region.Cols < 1:
		return fmt.Errorf("%w: region needs a header row and at least one data row", ErrInvalidLayout)
	case l.GroupWidth < 1:
		return fmt.Errorf("%w: group width must be positive", ErrInvalidLayout)
	case len(l.Weekdays) == 0:
		return fmt.Errorf("%w: no weekday names", ErrInvalidLayout)
	case len(l.Slots) == 0:
		return fmt.Errorf("%w: no slot tables", ErrInvalidLayout)
	case l.Dates.Step < 1:
		return fmt.Errorf("%w: date step must be positive", ErrInvalidLayout)
	}
	for i, table := range l.Slots {
		if len(table.Times) == 0 {
			return fmt.Errorf("%w: slot table %d is empty", ErrInvalidLayout, i)
		}
		if i > 0 && table.FromDay <= l.Slots[i-1].FromDay {
			return fmt.Errorf("%w: slot tables must be ordered by from_day", ErrInvalidLayout)
		}
	}
	return nil
}

// SlotsFor таблица времени для дня с порядковым номером day
func (l Layout) SlotsFor(day int) []string {
	times := l.Slots[0].Times
	for _, table := range l.Slots {
		if table.FromDay <= day {
			times = table.Times
		}
	}
	return times
}

// WeekdayName название дня недели по номеру дня (по кругу)
func (l Layout) WeekdayName(day int) string {
	return l.Weekdays[day%len(l.Weekdays)]
}
