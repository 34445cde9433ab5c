// internal/journal/export_test.go
package journal

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestWriteCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
	if lines[0] != "Date,Type,R_Value,Amount,Image,Notes" {
		t.Errorf("unexpected header: %s", lines[0])
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	r50 := 50.0
	rec1, _ := NewTrade(mustDate(t, "2024-01-05"), TypeWin2R, &r50, nil, "gap fill")
	custom := -20.5
	rec2, _ := NewTrade(mustDate(t, "2024-01-06"), TypeCustom, nil, &custom, "news, spike")
	rec2.ImageKey = "trades/abc/chart.png"

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []TradeRecord{rec1, rec2}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parsing export: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	row := rows[1]
	if row[0] != "2024-01-05" || row[1] != "W2R" || row[2] != "50" || row[5] != "gap fill" {
		t.Errorf("unexpected row: %v", row)
	}
	if amt, _ := strconv.ParseFloat(row[3], 64); amt != 100 {
		t.Errorf("amount = %v, want 100", amt)
	}

	row = rows[2]
	if row[2] != "" {
		t.Errorf("custom trade should have empty R_Value, got %q", row[2])
	}
	if amt, _ := strconv.ParseFloat(row[3], 64); amt != -20.5 {
		t.Errorf("amount = %v, want -20.5", amt)
	}
	if row[4] != "trades/abc/chart.png" {
		t.Errorf("image column should carry the key, got %q", row[4])
	}
	if row[5] != "news, spike" {
		t.Errorf("notes with commas must survive quoting, got %q", row[5])
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
