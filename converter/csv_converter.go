package converter

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/notaneet/rasp43/model"
)

type CSVConverter struct{}

func (c CSVConverter) Write(tt *model.Timetable, out string) error {
	if out == "" {
		return fmt.Errorf("csv: %w", ErrEmptyOutput)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	rows := Flatten(tt)
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return err
	}
	return f.Close()
}
