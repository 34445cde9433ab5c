// internal/api/server_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jstrand/tradelog/internal/api/response"
	"github.com/jstrand/tradelog/internal/metrics"
	"github.com/jstrand/tradelog/internal/storage/archive"
	"github.com/jstrand/tradelog/internal/storage/trade"
)

func newTestServer(t *testing.T, apiKey string) *Server {
	t.Helper()
	arch, err := archive.NewLocalFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewServer(Config{
		Host:        "127.0.0.1",
		Port:        8080,
		APIKey:      apiKey,
		MetricsPath: "/metrics",
	}, trade.NewMemoryStore(), arch, metrics.NewRegistry(), nil)
}

func do(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, "")

	w := do(s, "GET", "/api/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestServer_TradeLifecycle(t *testing.T) {
	s := newTestServer(t, "")

	// Record two trades.
	w := do(s, "POST", "/api/v1/trades", `{"date":"2024-01-05","type":"W2R","r_value":50}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	w = do(s, "POST", "/api/v1/trades", `{"date":"2024-01-06","type":"Custom","amount":-20}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}

	// List them.
	w = do(s, "GET", "/api/v1/trades", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var resp response.SuccessResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if total := resp.Data.(map[string]any)["total"].(float64); total != 2 {
		t.Errorf("total = %v, want 2", total)
	}

	// Stats over them.
	w = do(s, "GET", "/api/v1/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", w.Code)
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	data := resp.Data.(map[string]any)
	if data["net_pnl"].(float64) != 80 {
		t.Errorf("net_pnl = %v, want 80", data["net_pnl"])
	}

	// Export, then clear.
	w = do(s, "GET", "/api/v1/export", "")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Body.String(), "Date,Type,") {
		t.Errorf("export: code %d body %q", w.Code, w.Body.String())
	}

	w = do(s, "DELETE", "/api/v1/trades", "")
	if w.Code != http.StatusOK {
		t.Fatalf("clear: expected 200, got %d", w.Code)
	}

	w = do(s, "GET", "/api/v1/trades", "")
	json.Unmarshal(w.Body.Bytes(), &resp)
	if total := resp.Data.(map[string]any)["total"].(float64); total != 0 {
		t.Errorf("journal should be empty after clear, got %v", total)
	}
}

func TestServer_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t, "")

	w := do(s, "PATCH", "/api/v1/trades", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestServer_ImageRoute(t *testing.T) {
	s := newTestServer(t, "")

	w := do(s, "POST", "/api/v1/trades", `{"date":"2024-01-05","type":"W1R","r_value":10}`)
	var resp response.SuccessResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	id := resp.Data.(map[string]any)["id"].(string)

	w = do(s, "PUT", "/api/v1/trades/"+id+"/image", "fake-image-bytes")
	if w.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = do(s, "GET", "/api/v1/trades/"+id+"/image", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get image: expected 200, got %d", w.Code)
	}
	if w.Body.String() != "fake-image-bytes" {
		t.Error("image should round-trip untouched")
	}

	// Malformed subpaths 404.
	w = do(s, "GET", "/api/v1/trades/"+id+"/other", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown subresource, got %d", w.Code)
	}
}

func TestServer_APIKeyProtectsRoutes(t *testing.T) {
	s := newTestServer(t, "secret")

	w := do(s, "GET", "/api/v1/trades", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without key, got %d", w.Code)
	}

	req := httptest.NewRequest("GET", "/api/v1/trades", nil)
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with key, got %d", rec.Code)
	}

	// Health stays open.
	w = do(s, "GET", "/api/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("health should not require a key, got %d", w.Code)
	}
}

func TestServer_MetricsEndpoint(t *testing.T) {
	s := newTestServer(t, "")

	w := do(s, "GET", "/metrics", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 from /metrics, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Error("expected runtime metrics in exposition")
	}
}
