package converter

import (
	"fmt"

	"github.com/notaneet/rasp43/model"
	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Расписание"

type XLSXConverter struct{}

func (x XLSXConverter) Write(tt *model.Timetable, out string) error {
	if out == "" {
		return fmt.Errorf("xlsx: %w", ErrEmptyOutput)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheet); err != nil {
		return err
	}

	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &head); err != nil {
		return err
	}

	for i, row := range Flatten(tt) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row.values()
		if err := f.SetSheetRow(xlsxSheet, cell, &values); err != nil {
			return err
		}
	}

	return f.SaveAs(out)
}
