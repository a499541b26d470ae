// Package grid читает прямоугольную область листа таблицы как матрицу строк.
// Никакой интерпретации: числа и текст отдаются одинаково, как обрезанный текст.
package grid

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/notaneet/rasp43/config"
)

var (
	// ErrSourceUnavailable нет файла или листа
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMalformedRegion область выходит за границы листа
	ErrMalformedRegion = errors.New("malformed region")
)

// Grid строки x столбцы, пустая клетка - ""
type Grid [][]string

// Cell клетка или "", если её нет
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// Width кол-во столбцов
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// sheet то, что нужно от листа любого формата
type sheet interface {
	maxRow() int
	maxCol() int
	cell(row, col int) string
}

// Read прочитать область листа из файла (.xlsx или .xls)
func Read(path, sheetName string, region config.Region) (Grid, error) {
	grids, err := ReadRegions(path, sheetName, region)
	if err != nil {
		return nil, err
	}
	return grids[0], nil
}

// ReadBytes то же, что Read, но из скачанного файла; формат определяется по name
func ReadBytes(name string, data []byte, sheetName string, region config.Region) (Grid, error) {
	grids, err := ReadRegionsBytes(name, data, sheetName, region)
	if err != nil {
		return nil, err
	}
	return grids[0], nil
}

// ReadRegions несколько областей одного листа, файл открывается один раз.
// Области возвращаются в том же порядке
func ReadRegions(path, sheetName string, regions ...config.Region) ([]Grid, error) {
	sh, err := openSheet(path, sheetName)
	if err != nil {
		return nil, err
	}
	return cutAll(sh, regions)
}

// ReadRegionsBytes то же, что ReadRegions, но из скачанного файла
func ReadRegionsBytes(name string, data []byte, sheetName string, regions ...config.Region) ([]Grid, error) {
	sh, err := openSheetBytes(name, data, sheetName)
	if err != nil {
		return nil, err
	}
	return cutAll(sh, regions)
}

func cutAll(sh sheet, regions []config.Region) ([]Grid, error) {
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: no regions", ErrMalformedRegion)
	}
	ret := make([]Grid, 0, len(regions))
	for _, r := range regions {
		g, err := cut(sh, r)
		if err != nil {
			return nil, err
		}
		ret = append(ret, g)
	}
	return ret, nil
}

func openSheet(path, sheetName string) (sheet, error) {
	if isLegacy(path) {
		return openXLS(path, sheetName)
	}
	return openXLSX(path, sheetName)
}

func openSheetBytes(name string, data []byte, sheetName string) (sheet, error) {
	if isLegacy(name) {
		return openXLSBytes(name, data, sheetName)
	}
	return openXLSXBytes(name, data, sheetName)
}

func isLegacy(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".xls")
}

func cut(sh sheet, r config.Region) (Grid, error) {
	if r.StartRow < 0 || r.StartCol < 0 || r.Rows < 1 || r.Cols < 1 {
		return nil, fmt.Errorf("%w: %+v", ErrMalformedRegion, r)
	}
	if r.StartRow+r.Rows > sh.maxRow() || r.StartCol+r.Cols > sh.maxCol() {
		return nil, fmt.Errorf("%w: %+v exceeds sheet %dx%d", ErrMalformedRegion, r, sh.maxRow(), sh.maxCol())
	}

	g := make(Grid, r.Rows)
	for y := range g {
		g[y] = make([]string, r.Cols)
		for x := range g[y] {
			g[y][x] = strings.TrimSpace(sh.cell(r.StartRow+y, r.StartCol+x))
		}
	}
	return g, nil
}
