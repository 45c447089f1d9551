// Package xlsxdata extracts numeric data series from Excel workbooks for
// plotting.
package xlsxdata

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Column reads the values of one column (addressed by letter, e.g. "B")
// from a sheet. Blank cells and cells that do not parse as numbers, such
// as headers, are skipped.
func Column(f *excelize.File, sheetName, col string) ([]float64, error) {
	colIdx, err := excelize.ColumnNameToNumber(col)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []float64
	for _, row := range rows {
		if colIdx > len(row) {
			continue
		}
		cell := row[colIdx-1]
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			continue
		}
		result = append(result, v)
	}
	return result, nil
}

// Columns reads several columns from a sheet. Each column is filtered
// independently, so the returned series may differ in length; plot calls
// zip them to the shortest.
func Columns(f *excelize.File, sheetName string, cols []string) ([][]float64, error) {
	result := make([][]float64, 0, len(cols))
	for _, col := range cols {
		series, err := Column(f, sheetName, col)
		if err != nil {
			return nil, err
		}
		result = append(result, series)
	}
	return result, nil
}
