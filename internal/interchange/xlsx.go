package interchange

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Andersonspita/tempo-pago-dash/internal/model"
	"github.com/Andersonspita/tempo-pago-dash/internal/timecalc"
)

// WriteXLSX renders the same columns as WriteCSV into a spreadsheet
// workbook. Numeric columns are written as numbers so spreadsheet
// applications can sum them directly.
func WriteXLSX(w io.Writer, entries []model.TimeEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for col, title := range tableHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("building export sheet: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("building export sheet: %w", err)
		}
	}

	for i, e := range entries {
		hours := timecalc.ComputeHours(e.StartTime, e.EndTime)
		values := []interface{}{
			timecalc.FormatDateBR(e.Date),
			e.StartTime,
			e.EndTime,
			hours,
			e.Description,
			e.HourlyRate,
			hours * e.HourlyRate,
			paymentLabel(e.IsPaid),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("building export sheet: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("building export sheet: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// XLSXFilename embeds the export date, e.g. "controle-horas-2024-01-31.xlsx".
func XLSXFilename(now time.Time) string {
	return "controle-horas-" + now.Format("2006-01-02") + ".xlsx"
}
