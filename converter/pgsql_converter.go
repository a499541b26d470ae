package converter

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/notaneet/rasp43/model"
)

// PGSQLConverter out - строка подключения к postgres. Таблицы очищаются и заполняются заново
type PGSQLConverter struct{}

const ResetSequence = "ALTER SEQUENCE timetables_id_seq RESTART;"
const DropClasses = "DELETE FROM classes;"
const DropTimetables = "DELETE FROM timetables;"
const InsertTimetableQuery = "INSERT INTO timetables (institution, \"group\", day, weekday, date) VALUES ($1, $2, $3, $4, $5) RETURNING id"
const InsertClassQuery = "INSERT INTO classes (timetable_id, slot, time, discipline, type, teacher, auditorium) VALUES ($1, $2, $3, $4, $5, $6, $7)"

func (p PGSQLConverter) Write(tt *model.Timetable, out string) error {
	if out == "" {
		return fmt.Errorf("credentials: %w", ErrEmptyOutput)
	}

	conn, err := sqlx.Connect("postgres", out)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range []string{ResetSequence, DropClasses, DropTimetables} {
		if _, err := tx.Exec(q); err != nil {
			return err
		}
	}

	insertTimetable, err := tx.Preparex(InsertTimetableQuery)
	if err != nil {
		return err
	}
	insertClass, err := tx.Preparex(InsertClassQuery)
	if err != nil {
		return err
	}

	for _, g := range tt.Groups() {
		for _, day := range g.Days() {
			var timetableID uint
			if err := insertTimetable.QueryRowx(tt.Institution, g.Name, day.Label, day.Weekday, day.Date).Scan(&timetableID); err != nil {
				return fmt.Errorf("%s %s: %w", g.Name, day.Label, err)
			}

			for i, s := range day.Sessions {
				if !s.HasClass() {
					continue
				}
				for _, sub := range s.Subgroups() {
					if _, err := insertClass.Exec(timetableID, i+1, s.Time, sub.Discipline, s.TypeOfClass, sub.Teacher, sub.Auditorium); err != nil {
						return err
					}
				}
			}
		}
	}

	return tx.Commit()
}
