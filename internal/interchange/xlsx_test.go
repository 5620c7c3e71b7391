package interchange_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Andersonspita/tempo-pago-dash/internal/interchange"
	"github.com/Andersonspita/tempo-pago-dash/internal/model"
)

func TestWriteXLSX(t *testing.T) {
	entries := []model.TimeEntry{
		{ID: "e1", Date: "2024-01-15", StartTime: "09:00", EndTime: "17:00",
			Description: "Client work", IsPaid: true, HourlyRate: 50},
	}

	var buf bytes.Buffer
	if err := interchange.WriteXLSX(&buf, entries); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1 entry", len(rows))
	}

	if rows[0][0] != "Data" || rows[0][7] != "Status Pagamento" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "15/01/2024" {
		t.Errorf("date cell = %q", rows[1][0])
	}
	if rows[1][3] != "8" {
		t.Errorf("hours cell = %q", rows[1][3])
	}
	if rows[1][6] != "400" {
		t.Errorf("earnings cell = %q", rows[1][6])
	}
	if rows[1][7] != "Pago" {
		t.Errorf("status cell = %q", rows[1][7])
	}
}

func TestXLSXFilename(t *testing.T) {
	if got := interchange.XLSXFilename(exportTime); got != "controle-horas-2024-01-31.xlsx" {
		t.Errorf("XLSXFilename = %q", got)
	}
}
