package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sbcohen2000/raggedblocks/pkg/cache"
	"github.com/sbcohen2000/raggedblocks/pkg/pipeline"
	"github.com/sbcohen2000/raggedblocks/pkg/store"
	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

func testServer() *Server {
	runner := pipeline.NewRunner(cache.NewMapCache(), nil, tree.NewMonospaceMeasurer(6, 12), nil)
	return NewServer(runner, store.NewNullStore())
}

const testTreeJSON = `{
	"kind": "node",
	"padding": 1,
	"children": [
		{"kind": "atom", "text": "hello"},
		{"kind": "spacer", "text": " "},
		{"kind": "atom", "text": "world"}
	]
}`

func TestHandleHealthz(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestHandleLayout(t *testing.T) {
	srv := testServer()
	body := `{"tree": ` + testTreeJSON + `, "algorithm": "l1p"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/layout", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp layoutResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TreeHash == "" {
		t.Error("expected non-empty TreeHash")
	}
	if len(resp.Layout) == 0 {
		t.Error("expected non-empty Layout JSON")
	}
}

func TestHandleRenderSVG(t *testing.T) {
	srv := testServer()
	body := `{"tree": ` + testTreeJSON + `, "formats": ["svg"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/render", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("expected non-empty SVG body")
	}
}

func TestHandleRenderRejectsMultipleFormats(t *testing.T) {
	srv := testServer()
	body := `{"tree": ` + testTreeJSON + `, "formats": ["svg", "png"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/render", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandleLayoutRejectsMissingTree(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodPost, "/v1/layout", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandleHistoryEmptyByDefault(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var records []historyRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty history, got %d records", len(records))
	}
}
