package mealplan

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// preferredSheet is the worksheet name the cafeteria templates use.
// Workbooks without it fall back to the first sheet.
const preferredSheet = "식단표"

// oleMagic is the compound-file signature every legacy .xls workbook
// starts with. Everything else is treated as a zip container.
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// loadGrid sniffs the workbook container by signature and
// materializes the target worksheet as a rectangular grid of typed
// cells. Merged regions are left alone: only a merge's top-left cell
// carries the value, matching how the templates merge the date cell
// down a day's rows.
func loadGrid(data []byte) (string, rawGrid, error) {
	if bytes.HasPrefix(data, oleMagic) {
		return loadLegacyGrid(data)
	}
	return loadZipGrid(data)
}

func loadZipGrid(data []byte) (string, rawGrid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrContainerUnreadable, err)
	}
	defer f.Close()

	sheet := pickSheet(f.GetSheetList())
	if sheet == "" {
		return "", rawGrid{}, nil
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrContainerUnreadable, err)
	}

	maxCol := 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}

	dateStyles := make(map[int]bool)
	grid := make(rawGrid, len(rows))
	for i, row := range rows {
		cells := make([]cell, maxCol)
		for j, raw := range row {
			if raw == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				continue
			}
			cells[j] = classifyZipCell(f, sheet, axis, raw, dateStyles)
		}
		grid[i] = cells
	}
	return sheet, grid, nil
}

// classifyZipCell types one raw cell value. Values the sheet stored
// as strings stay text even when they look numeric; numbers carrying
// a date number format become date cells.
func classifyZipCell(f *excelize.File, sheet, axis, raw string, dateStyles map[int]bool) cell {
	ct, err := f.GetCellType(sheet, axis)
	if err != nil {
		return cell{kind: cellText, text: raw}
	}

	switch ct {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeBool:
		return cell{kind: cellText, text: raw}
	case excelize.CellTypeError:
		return cell{}
	case excelize.CellTypeDate:
		// t="d" cells store an ISO 8601 literal
		for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, strings.TrimSuffix(raw, "Z")); err == nil {
				return cell{kind: cellDate, date: t}
			}
		}
		return cell{kind: cellText, text: raw}
	}

	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return cell{kind: cellText, text: raw}
	}

	if cellHasDateStyle(f, sheet, axis, dateStyles) {
		if t, err := excelize.ExcelDateToTime(num, false); err == nil {
			return cell{kind: cellDate, date: t}
		}
	}
	return cell{kind: cellNumber, num: num}
}

// cellHasDateStyle reports whether the cell's number format renders
// as a date. Styles repeat across a sheet, so results are cached per
// style ID.
func cellHasDateStyle(f *excelize.File, sheet, axis string, cache map[int]bool) bool {
	styleID, err := f.GetCellStyle(sheet, axis)
	if err != nil {
		return false
	}
	if hit, ok := cache[styleID]; ok {
		return hit
	}

	isDate := false
	if style, err := f.GetStyle(styleID); err == nil && style != nil {
		isDate = isDateNumFmt(style.NumFmt)
		if !isDate && style.CustomNumFmt != nil {
			isDate = customFmtLooksLikeDate(*style.CustomNumFmt)
		}
	}
	cache[styleID] = isDate
	return isDate
}

// isDateNumFmt covers the builtin date and time format IDs from
// ECMA-376 part 1 §18.8.30, including the East Asian locale blocks
// the Korean templates use.
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// customFmtLooksLikeDate scans a custom number format for date
// tokens, skipping quoted literals and bracketed sections (colors,
// locale prefixes, elapsed-time markers).
func customFmtLooksLikeDate(code string) bool {
	inQuote, inBracket := false, false
	for _, r := range code {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
			}
		case inBracket:
			if r == ']' {
				inBracket = false
			}
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		case r == 'y' || r == 'Y' || r == 'm' || r == 'M',
			r == 'd' || r == 'D' || r == 'h' || r == 'H':
			return true
		}
	}
	return false
}

func pickSheet(sheets []string) string {
	if len(sheets) == 0 {
		return ""
	}
	for _, name := range sheets {
		if name == preferredSheet {
			return name
		}
	}
	return sheets[0]
}

// loadLegacyGrid reads a BIFF .xls workbook. The legacy reader only
// exposes formatted strings, so native date cells arrive as text and
// numeric-looking strings are reclassified by parsing; serial date
// handling still works through the number path.
func loadLegacyGrid(data []byte) (string, rawGrid, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrContainerUnreadable, err)
	}
	if wb == nil {
		// the reader reports neither a workbook nor an error for OLE
		// containers without a spreadsheet stream
		return "", nil, fmt.Errorf("%w: no workbook stream", ErrContainerUnreadable)
	}

	sheet := pickLegacySheet(wb)
	if sheet == nil {
		return "", rawGrid{}, nil
	}

	var grid rawGrid
	maxCol := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := legacyRow(sheet, i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		var cells []cell
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, classifyLegacyCell(row.Col(j)))
		}
		if len(cells) > maxCol {
			maxCol = len(cells)
		}
		grid = append(grid, cells)
	}

	for i, row := range grid {
		for len(row) < maxCol {
			row = append(row, cell{})
		}
		grid[i] = row
	}
	return sheet.Name, grid, nil
}

// legacyRow wraps the library's row accessor, which panics on row
// indexes that have no backing record.
func legacyRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		_ = recover()
	}()
	return sheet.Row(i)
}

func classifyLegacyCell(raw string) cell {
	if raw == "" {
		return cell{}
	}
	if num, err := strconv.ParseFloat(raw, 64); err == nil {
		return cell{kind: cellNumber, num: num}
	}
	return cell{kind: cellText, text: raw}
}

func pickLegacySheet(wb *xls.WorkBook) *xls.WorkSheet {
	n := wb.NumSheets()
	if n == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		if s := wb.GetSheet(i); s != nil && s.Name == preferredSheet {
			return s
		}
	}
	return wb.GetSheet(0)
}
