// internal/journal/types.go
package journal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jstrand/tradelog/internal/core"
)

// TradeType encodes how a trade's P&L is derived.
type TradeType string

const (
	TypeWin2R  TradeType = "W2R"
	TypeWin1R  TradeType = "W1R"
	TypeLoss1R TradeType = "L1R"
	TypeLoss2R TradeType = "L2R"
	TypeCustom TradeType = "Custom"
)

// ParseTradeType converts a string into a TradeType.
func ParseTradeType(s string) (TradeType, error) {
	switch TradeType(s) {
	case TypeWin2R, TypeWin1R, TypeLoss1R, TypeLoss2R, TypeCustom:
		return TradeType(s), nil
	}
	return "", core.WrapError(core.ErrValidation, fmt.Errorf("unknown trade type %q", s))
}

// IsCustom reports whether the type carries a caller-supplied amount.
func (t TradeType) IsCustom() bool {
	return t == TypeCustom
}

// multiplier returns the R multiplier encoded in the type code,
// the numeric portion between the W/L prefix and the R suffix.
func (t TradeType) multiplier() (float64, error) {
	s := string(t)
	if len(s) < 3 || !strings.HasSuffix(s, "R") {
		return 0, core.WrapError(core.ErrValidation, fmt.Errorf("trade type %q has no R multiplier", s))
	}
	m, err := strconv.ParseFloat(s[1:len(s)-1], 64)
	if err != nil {
		return 0, core.WrapError(core.ErrValidation, fmt.Errorf("trade type %q has no R multiplier", s))
	}
	return m, nil
}

// sign returns +1 for wins, -1 for losses.
func (t TradeType) sign() float64 {
	if strings.HasPrefix(string(t), "L") {
		return -1
	}
	return 1
}

// TradeRecord is a single journaled trade outcome. Records are immutable
// once appended; only the image key is attached after the fact.
type TradeRecord struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Type     TradeType `json:"type"`
	RValue   float64   `json:"r_value,omitempty"`
	Amount   float64   `json:"amount"`
	ImageKey string    `json:"image_key,omitempty"`
	Notes    string    `json:"notes,omitempty"`
}

// HasImage reports whether a screenshot is attached. The journal only
// tracks presence; the bytes live in the archive.
func (r TradeRecord) HasImage() bool {
	return r.ImageKey != ""
}

// ComputeAmount derives the monetary P&L from the trade type and R value.
// Custom trades take the supplied amount verbatim (zero allowed); all other
// types require a positive R value and compute sign * multiplier * rValue.
func ComputeAmount(t TradeType, rValue, customAmount *float64) (float64, error) {
	if t.IsCustom() {
		if customAmount == nil {
			return 0, core.WrapError(core.ErrValidation, fmt.Errorf("amount required for custom trades"))
		}
		return *customAmount, nil
	}

	if rValue == nil {
		return 0, core.WrapError(core.ErrValidation, fmt.Errorf("r_value required for %s trades", t))
	}
	if *rValue <= 0 {
		return 0, core.WrapError(core.ErrValidation, fmt.Errorf("r_value must be positive, got %v", *rValue))
	}

	m, err := t.multiplier()
	if err != nil {
		return 0, err
	}
	return t.sign() * m * *rValue, nil
}

// NewTrade validates the inputs and builds a record with its derived amount.
// The store assigns the ID on append.
func NewTrade(date time.Time, t TradeType, rValue, customAmount *float64, notes string) (TradeRecord, error) {
	if _, err := ParseTradeType(string(t)); err != nil {
		return TradeRecord{}, err
	}

	amount, err := ComputeAmount(t, rValue, customAmount)
	if err != nil {
		return TradeRecord{}, err
	}

	rec := TradeRecord{
		Date:   date,
		Type:   t,
		Amount: amount,
		Notes:  notes,
	}
	if !t.IsCustom() {
		rec.RValue = *rValue
	}
	return rec, nil
}

// dateOnly truncates a timestamp to its calendar day in UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sortByDate returns a copy sorted by date ascending. The sort is stable,
// so trades on the same day keep their insertion order.
func sortByDate(trades []TradeRecord) []TradeRecord {
	out := make([]TradeRecord, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
