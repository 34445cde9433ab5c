// internal/api/response/response_test.go
package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jstrand/tradelog/internal/core"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, map[string]any{"answer": 42})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %s", ct)
	}

	var resp SuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Meta.Timestamp.IsZero() {
		t.Error("meta timestamp should be set")
	}
}

func TestError_CoreError(t *testing.T) {
	w := httptest.NewRecorder()

	Error(w, http.StatusBadRequest, core.WrapError(core.ErrValidation, errors.New("r_value missing")))

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Error.Code != core.ErrValidation.Code {
		t.Errorf("code = %s", resp.Error.Code)
	}
	if resp.Error.Cause != "r_value missing" {
		t.Errorf("cause = %s", resp.Error.Cause)
	}
}

func TestError_PlainError(t *testing.T) {
	w := httptest.NewRecorder()

	Error(w, http.StatusInternalServerError, errors.New("boom"))

	var resp ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("plain errors should map to INTERNAL_ERROR, got %s", resp.Error.Code)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{core.ErrValidation, http.StatusBadRequest},
		{core.ErrFilterInvalid, http.StatusBadRequest},
		{core.ErrTradeNotFound, http.StatusNotFound},
		{core.ErrImageNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := StatusFor(tt.err); got != tt.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
