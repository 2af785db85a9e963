package cqio

import (
	"fmt"

	"github.com/extrame/xls"
	"github.com/kclab/qpcr"
	"github.com/kclab/qpcr/cq"
	"github.com/xuri/excelize/v2"
)

// readXLS loads a legacy BIFF workbook. Empty sheet means the first sheet.
func readXLS(path, sheet string, cols Columns) ([]cq.Measurement, FileInfo, error) {
	info := FileInfo{Path: path}

	wb, err := xls.Open(qpcr.ExpandHome(path), "utf-8")
	if err != nil {
		return nil, info, err
	}

	var ws *xls.WorkSheet
	if sheet == "" {
		ws = wb.GetSheet(0)
	} else {
		for sheetID := 0; sheetID < wb.NumSheets(); sheetID++ {
			if candidate := wb.GetSheet(sheetID); candidate != nil && candidate.Name == sheet {
				ws = candidate
				break
			}
		}
	}

	if ws == nil {
		if sheet == "" {
			return nil, info, fmt.Errorf("No sheets found in %s", path)
		}
		return nil, info, fmt.Errorf("Sheet %q not found in %s", sheet, path)
	}
	info.Sheet = ws.Name

	var records [][]string
	for rowID := 0; rowID <= int(ws.MaxRow); rowID++ {
		row := ws.Row(rowID)
		if row == nil {
			continue
		}

		cells := make([]string, 0, row.LastCol()+1)
		for colID := 0; colID <= row.LastCol(); colID++ {
			cells = append(cells, row.Col(colID))
		}
		records = append(records, cells)
	}

	rows, err := measurementsFromRecords(records, cols, &info)
	if err != nil {
		return nil, info, err
	}

	return rows, info, nil
}

// readXLSX loads an OOXML workbook. Empty sheet means the first sheet.
func readXLSX(path, sheet string, cols Columns) ([]cq.Measurement, FileInfo, error) {
	info := FileInfo{Path: path}

	f, err := excelize.OpenFile(qpcr.ExpandHome(path))
	if err != nil {
		return nil, info, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, info, fmt.Errorf("No sheets found in %s", path)
		}
		sheet = sheets[0]
	}
	info.Sheet = sheet

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, info, fmt.Errorf("Sheet %q not readable in %s: %w", sheet, path, err)
	}

	rows, err := measurementsFromRecords(records, cols, &info)
	if err != nil {
		return nil, info, err
	}

	return rows, info, nil
}
