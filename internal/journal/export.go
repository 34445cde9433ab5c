// internal/journal/export.go
package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{"Date", "Type", "R_Value", "Amount", "Image", "Notes"}

// WriteCSV streams the collection as CSV: one header row, one row per trade,
// dates as ISO-8601. The image column carries the archive key as a presence
// marker; blobs are never embedded. Export-only, no import path.
func WriteCSV(w io.Writer, trades []TradeRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, rec := range trades {
		rValue := ""
		if !rec.Type.IsCustom() {
			rValue = formatAmount(rec.RValue)
		}
		row := []string{
			rec.Date.Format(time.DateOnly),
			string(rec.Type),
			rValue,
			formatAmount(rec.Amount),
			rec.ImageKey,
			rec.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
