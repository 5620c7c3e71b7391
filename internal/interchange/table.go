package interchange

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Andersonspita/tempo-pago-dash/internal/model"
	"github.com/Andersonspita/tempo-pago-dash/internal/timecalc"
)

// The flattened export is a pt-BR spreadsheet format: semicolon-delimited,
// decimal commas, UTF-8 with a leading BOM so Excel detects the encoding.
// It is export-only; the backup format is the restore channel.

var tableHeader = []string{
	"Data",
	"Hora Inicial",
	"Hora Final",
	"Horas Trabalhadas",
	"Descrição",
	"Valor/Hora",
	"Total Ganho",
	"Status Pagamento",
}

// WriteCSV renders one header row plus one row per entry, in the input
// collection's order.
func WriteCSV(w io.Writer, entries []model.TimeEntry) error {
	var b strings.Builder
	b.WriteString("\uFEFF")
	b.WriteString(strings.Join(tableHeader, ";"))
	for _, e := range entries {
		b.WriteByte('\n')
		b.WriteString(strings.Join(tableRow(e), ";"))
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

func tableRow(e model.TimeEntry) []string {
	hours := timecalc.ComputeHours(e.StartTime, e.EndTime)
	earnings := hours * e.HourlyRate

	return []string{
		timecalc.FormatDateBR(e.Date),
		e.StartTime,
		e.EndTime,
		timecalc.FormatHours(hours),
		quote(e.Description),
		timecalc.FormatCurrency(e.HourlyRate),
		timecalc.FormatCurrency(earnings),
		paymentLabel(e.IsPaid),
	}
}

func paymentLabel(isPaid bool) string {
	if isPaid {
		return "Pago"
	}
	return "Pendente"
}

// quote wraps the description in double quotes, doubling any embedded
// quote characters.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CSVFilename embeds the export date, e.g. "controle-horas-2024-01-31.csv".
func CSVFilename(now time.Time) string {
	return "controle-horas-" + now.Format("2006-01-02") + ".csv"
}
