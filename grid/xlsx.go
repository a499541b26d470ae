package grid

import (
	"fmt"

	"github.com/tealeg/xlsx/v3"
)

type xlsxSheet struct {
	sh *xlsx.Sheet
}

func openXLSX(path, sheetName string) (sheet, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}
	return pickXLSX(f, path, sheetName)
}

func openXLSXBytes(name string, data []byte, sheetName string) (sheet, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, name, err)
	}
	return pickXLSX(f, name, sheetName)
}

func pickXLSX(f *xlsx.File, name, sheetName string) (sheet, error) {
	sh, ok := f.Sheet[sheetName]
	if !ok {
		return nil, fmt.Errorf("%w: no sheet %q in %s", ErrSourceUnavailable, sheetName, name)
	}
	return xlsxSheet{sh: sh}, nil
}

func (s xlsxSheet) maxRow() int { return s.sh.MaxRow }
func (s xlsxSheet) maxCol() int { return s.sh.MaxCol }

func (s xlsxSheet) cell(row, col int) string {
	c, err := s.sh.Cell(row, col)
	if err != nil || c == nil {
		return ""
	}
	// Числа берём как есть, без форматирования в дробь ("101", а не "101.0")
	if v, err := c.FormattedValue(); err == nil {
		return v
	}
	return c.Value
}
