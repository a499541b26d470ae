package converter

import (
	"errors"

	"github.com/notaneet/rasp43/model"
)

var (
	ErrEmptyOutput      = errors.New("output can not be empty")
	ErrUnknownConverter = errors.New("unknown converter")
)

type IConverter interface {
	Write(tt *model.Timetable, out string) error
}

// Row одна подгруппа одной пары в плоском виде
type Row struct {
	Group      string `csv:"group"`
	Day        string `csv:"day"`
	Weekday    string `csv:"weekday"`
	Date       string `csv:"date"`
	Slot       int    `csv:"slot"` //Номер пары в дне с 1
	Time       string `csv:"time"`
	Discipline string `csv:"discipline"`
	Type       string `csv:"type"`
	Teacher    string `csv:"teacher"`
	Auditorium string `csv:"auditorium"`
}

var header = []string{"group", "day", "weekday", "date", "slot", "time", "discipline", "type", "teacher", "auditorium"}

func (r Row) values() []interface{} {
	return []interface{}{r.Group, r.Day, r.Weekday, r.Date, r.Slot, r.Time, r.Discipline, r.Type, r.Teacher, r.Auditorium}
}

// Flatten все пары расписания построчно, пустые слоты пропускаются
func Flatten(tt *model.Timetable) []Row {
	var ret []Row
	for _, g := range tt.Groups() {
		for _, day := range g.Days() {
			for i, s := range day.Sessions {
				if !s.HasClass() {
					continue
				}
				for _, sub := range s.Subgroups() {
					ret = append(ret, Row{
						Group:      g.Name,
						Day:        day.Label,
						Weekday:    day.Weekday,
						Date:       day.Date,
						Slot:       i + 1,
						Time:       s.Time,
						Discipline: sub.Discipline,
						Type:       s.TypeOfClass,
						Teacher:    sub.Teacher,
						Auditorium: sub.Auditorium,
					})
				}
			}
		}
	}
	return ret
}
