package metrics

import (
	"testing"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	if reg == nil {
		t.Fatal("expected non-nil registry")
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if len(mfs) == 0 {
		t.Error("expected some metrics to be registered")
	}
}

func gathered(t *testing.T, reg *Registry, name string) bool {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() == name {
			return true
		}
	}
	return false
}

func TestRegistry_RecordRequest(t *testing.T) {
	reg := NewRegistry()

	reg.RecordRequest("GET", "/api/v1/stats", 200, 0.05)

	if !gathered(t, reg, "http_requests_total") {
		t.Error("expected http_requests_total metric")
	}
	if !gathered(t, reg, "http_request_duration_seconds") {
		t.Error("expected http_request_duration_seconds metric")
	}
}

func TestRegistry_BusinessMetrics(t *testing.T) {
	reg := NewRegistry()

	reg.TradeRecorded("W2R")
	reg.JournalCleared()
	reg.CSVExported()
	reg.ReportComputed()
	reg.SetJournalSize(7)

	for _, name := range []string{
		"tradelog_trades_recorded_total",
		"tradelog_journal_clears_total",
		"tradelog_csv_exports_total",
		"tradelog_reports_computed_total",
		"tradelog_journal_trades",
	} {
		if !gathered(t, reg, name) {
			t.Errorf("expected %s metric", name)
		}
	}
}
