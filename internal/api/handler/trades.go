// internal/api/handler/trades.go
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jstrand/tradelog/internal/api/response"
	"github.com/jstrand/tradelog/internal/core"
	"github.com/jstrand/tradelog/internal/journal"
	"github.com/jstrand/tradelog/internal/metrics"
	"github.com/jstrand/tradelog/internal/storage/trade"
)

// TradesHandler handles trade collection API requests.
type TradesHandler struct {
	store trade.Store
	reg   *metrics.Registry
}

// NewTradesHandler creates a new trades handler.
func NewTradesHandler(store trade.Store, reg *metrics.Registry) *TradesHandler {
	return &TradesHandler{store: store, reg: reg}
}

// CreateRequest is the request body for recording a trade.
type CreateRequest struct {
	Date   string   `json:"date"`
	Type   string   `json:"type"`
	RValue *float64 `json:"r_value,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Notes  string   `json:"notes,omitempty"`
}

// Create validates and appends a new trade. Nothing is committed when
// validation fails; the client keeps its form state and retries.
func (h *TradesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest,
			core.WrapError(core.ErrValidation, err))
		return
	}

	tradeType, err := journal.ParseTradeType(req.Type)
	if err != nil {
		response.Error(w, response.StatusFor(err), err)
		return
	}

	date, ok := parseDate(req.Date)
	if !ok {
		err := core.WrapError(core.ErrValidation, fmt.Errorf("invalid date %q", req.Date))
		response.Error(w, http.StatusBadRequest, err)
		return
	}

	rec, err := journal.NewTrade(date, tradeType, req.RValue, req.Amount, req.Notes)
	if err != nil {
		response.Error(w, response.StatusFor(err), err)
		return
	}

	rec, err = h.store.Append(r.Context(), rec)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err)
		return
	}

	h.reg.TradeRecorded(string(rec.Type))
	h.updateSizeGauge(r.Context())

	response.JSON(w, http.StatusCreated, rec)
}

// List returns the trades matching the filter query parameters.
func (h *TradesHandler) List(w http.ResponseWriter, r *http.Request) {
	trades, err := h.store.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err)
		return
	}

	filtered := journal.Filter(trades, filterSpecFromQuery(r.URL.Query()))

	response.JSON(w, http.StatusOK, map[string]any{
		"trades": filtered,
		"total":  len(filtered),
	})
}

// Clear removes every trade from the journal.
func (h *TradesHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context()); err != nil {
		response.Error(w, http.StatusInternalServerError, err)
		return
	}

	h.reg.JournalCleared()
	h.reg.SetJournalSize(0)

	response.JSON(w, http.StatusOK, map[string]any{
		"cleared": true,
	})
}

func (h *TradesHandler) updateSizeGauge(ctx context.Context) {
	if n, err := h.store.Count(ctx); err == nil {
		h.reg.SetJournalSize(n)
	}
}
