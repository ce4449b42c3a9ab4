// Package xlsxio adapts the group workbooks to the engine's read-only
// Workbook interface using excelize. Nothing in here ever saves a file.
package xlsxio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
	"github.com/Wibias/Automatisiertes-Kopieren/internal/engine"
)

// Opener implements engine.WorkbookOpener for .xlsm/.xlsx files.
type Opener struct{}

// Open opens the workbook read-only. The os.Stat probe runs first so the
// engine can classify missing vs. locked files from the wrapped error.
func (Opener) Open(ctx context.Context, path string) (engine.Workbook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	slog.Debug("Workbook opened",
		config.LogKeyComponent, config.CompXlsx,
		config.LogKeyFile, path,
	)
	return &workbook{f: f}, nil
}

type workbook struct {
	f *excelize.File
}

// CellText returns the formatted cell value (1-based row/col).
func (w *workbook) CellText(sheet string, row, col int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return w.f.GetCellValue(sheet, cell)
}

// CellDate interprets a cell as a date. Date cells in the Monatsrechner are
// stored as Excel serial numbers, so the raw value is tried first and
// converted via the 1900 epoch; formatted text layouts are the fallback.
func (w *workbook) CellDate(sheet string, row, col int) (time.Time, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return time.Time{}, err
	}

	raw, err := w.f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return time.Time{}, err
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		return excelize.ExcelDateToTime(serial, false)
	}

	formatted, err := w.f.GetCellValue(sheet, cell)
	if err != nil {
		return time.Time{}, err
	}
	layouts := []string{
		config.DateFormatReport,
		config.DateFormatISO,
		config.DateFormatUSShort,
		config.DateFormatSlash,
		config.DateFormatDotShort,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, formatted); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%s: %q", config.ErrDateParse, formatted)
}

func (w *workbook) Close() error {
	return w.f.Close()
}
