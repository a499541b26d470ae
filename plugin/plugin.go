package plugin

import "github.com/notaneet/rasp43/model"

type Plugin interface {
	GetInstitution() string
	GetTimetable() (*model.Timetable, error)
}
