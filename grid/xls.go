package grid

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"
)

// Старые .xls от учебной части приходят в cp1251
const xlsCharset = "windows-1251"

type xlsSheet struct {
	ws *xls.WorkSheet
}

func openXLS(path, sheetName string) (sheet, error) {
	wb, err := xls.Open(path, xlsCharset)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}
	return pickXLS(wb, path, sheetName)
}

func openXLSBytes(name string, data []byte, sheetName string) (sheet, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), xlsCharset)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, name, err)
	}
	return pickXLS(wb, name, sheetName)
}

func pickXLS(wb *xls.WorkBook, name, sheetName string) (sheet, error) {
	for i := 0; i < wb.NumSheets(); i++ {
		if ws := wb.GetSheet(i); ws != nil && ws.Name == sheetName {
			return xlsSheet{ws: ws}, nil
		}
	}
	return nil, fmt.Errorf("%w: no sheet %q in %s", ErrSourceUnavailable, sheetName, name)
}

func (s xlsSheet) maxRow() int { return int(s.ws.MaxRow) + 1 }

func (s xlsSheet) maxCol() int {
	cols := 0
	for i := 0; i <= int(s.ws.MaxRow); i++ {
		if row := s.ws.Row(i); row != nil && row.LastCol() > cols {
			cols = row.LastCol()
		}
	}
	return cols
}

func (s xlsSheet) cell(row, col int) string {
	r := s.ws.Row(row)
	if r == nil {
		return ""
	}
	return r.Col(col)
}
