package mealplan

import (
	"errors"
	"path/filepath"
	"strings"
)

// Only spreadsheet containers the loader can actually open.
var allowedExt = map[string]bool{
	".xlsx": true,
	".xls":  true,
}

func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("workbook extension missing")
	}

	if !allowedExt[ext] {
		return errors.New("only .xlsx and .xls workbooks are accepted")
	}

	return nil
}
