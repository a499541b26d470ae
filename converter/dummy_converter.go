package converter

import (
	"fmt"

	"github.com/notaneet/rasp43/model"
)

// DummyConverter на месте неизвестного конвертера, всегда ошибка
type DummyConverter struct {
	Name string
}

func (d DummyConverter) Write(_ *model.Timetable, _ string) error {
	return fmt.Errorf("%w: %q", ErrUnknownConverter, d.Name)
}
