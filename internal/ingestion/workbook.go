package ingestion

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound is returned when the requested tab does not exist in the
// workbook. Import runs treat it (and a missing file) as an empty run, not a
// crash.
var ErrSheetNotFound = errors.New("sheet not found in workbook")

// LoadWorkbookSheet opens an .xlsx file and returns the raw cell matrix of
// the named sheet plus the resolved sheet name. An empty sheet name selects
// the workbook's first sheet.
//
// Cells are read with RawCellValue so numeric cells arrive as plain
// dot-decimal numbers regardless of their display format; the value parsers
// rely on that distinction.
func LoadWorkbookSheet(path, sheet string) ([][]string, string, error) {
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("workbook %s: %w", path, os.ErrNotExist)
		}
		return nil, "", fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()
	return sheetRows(f, sheet)
}

// LoadWorkbookSheetFromReader is the upload-path variant of
// LoadWorkbookSheet, used by the HTTP import endpoint.
func LoadWorkbookSheetFromReader(r io.Reader, sheet string) ([][]string, string, error) {
	f, err := excelize.OpenReader(r, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return sheetRows(f, sheet)
}

func sheetRows(f *excelize.File, sheet string) ([][]string, string, error) {
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, "", ErrSheetNotFound
		}
		sheet = list[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		var sheetErr excelize.ErrSheetNotExist
		if errors.As(err, &sheetErr) {
			return nil, "", fmt.Errorf("%w: %q (available: %v)", ErrSheetNotFound, sheet, f.GetSheetList())
		}
		return nil, "", fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, sheet, nil
}
