// internal/api/handler/analytics.go
package handler

import (
	"net/http"

	"github.com/jstrand/tradelog/internal/api/response"
	"github.com/jstrand/tradelog/internal/journal"
	"github.com/jstrand/tradelog/internal/metrics"
	"github.com/jstrand/tradelog/internal/storage/trade"
)

// AnalyticsHandler serves derived statistics and chart series. Everything
// here is a pure recompute over the current snapshot; nothing is cached.
type AnalyticsHandler struct {
	store trade.Store
	reg   *metrics.Registry
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(store trade.Store, reg *metrics.Registry) *AnalyticsHandler {
	return &AnalyticsHandler{store: store, reg: reg}
}

func (h *AnalyticsHandler) filtered(r *http.Request) ([]journal.TradeRecord, error) {
	trades, err := h.store.List(r.Context())
	if err != nil {
		return nil, err
	}
	return journal.Filter(trades, filterSpecFromQuery(r.URL.Query())), nil
}

// Stats returns the performance report for the filtered window.
func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	filtered, err := h.filtered(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err)
		return
	}

	report := journal.ComputeStats(filtered)
	h.reg.ReportComputed()

	response.JSON(w, http.StatusOK, report)
}

// DailySeries returns per-day OHLC bars for the filtered window.
func (h *AnalyticsHandler) DailySeries(w http.ResponseWriter, r *http.Request) {
	filtered, err := h.filtered(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"bars": journal.BuildDailySeries(filtered),
	})
}

// CumulativeSeries returns the running P&L total for the filtered window.
func (h *AnalyticsHandler) CumulativeSeries(w http.ResponseWriter, r *http.Request) {
	filtered, err := h.filtered(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"points": journal.BuildCumulative(filtered),
	})
}

// Periods returns the selectable period tokens present in the data for the
// requested granularity, most recent first.
func (h *AnalyticsHandler) Periods(w http.ResponseWriter, r *http.Request) {
	trades, err := h.store.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err)
		return
	}

	g := journal.Granularity(r.URL.Query().Get("granularity"))
	switch g {
	case journal.GranWeekly, journal.GranMonthly, journal.GranQuarterly:
	default:
		g = journal.GranMonthly
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"granularity": g,
		"periods":     journal.Periods(trades, g),
	})
}
