package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"inventory-tracker/internal/adapters/web"
	"inventory-tracker/internal/app"
	"inventory-tracker/internal/core"
	"inventory-tracker/internal/db"
)

// setupTestHandler wires the real router over a fresh temp-file database.
func setupTestHandler(t *testing.T) http.Handler {
	t.Helper()

	conn, err := db.OpenPath(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	svc := app.NewAppService(core.NewItemService(conn))
	return web.NewHandler(svc, "")
}

// doJSON issues a request with an optional JSON body and decodes the response
// into out (when out is non-nil).
func doJSON(t *testing.T, h http.Handler, method, path, body string, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: failed to decode response: %v", method, path, err)
		}
	}
	return rec
}

// itemPayload mirrors the wire shape of one item. Decimal fields arrive as
// JSON strings (shopspring default), so they are compared as strings here.
type itemPayload struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Unit          string `json:"unit"`
	AvgDailyUsage string `json:"avgDailyUsage"`
	MaxDailyUsage string `json:"maxDailyUsage"`
	LeadTime      string `json:"leadTime"`
	CurrentStock  string `json:"currentStock"`
}

type listEnvelope struct {
	Message string        `json:"message"`
	Data    []itemPayload `json:"data"`
}

type itemEnvelope struct {
	Message string      `json:"message"`
	Data    itemPayload `json:"data"`
	Changes *int64      `json:"changes"`
}

func TestItemsAPI_ListEmpty(t *testing.T) {
	h := setupTestHandler(t)

	var env listEnvelope
	rec := doJSON(t, h, http.MethodGet, "/api/items", "", &env)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if env.Message != "ok" {
		t.Errorf("Expected message %q, got %q", "ok", env.Message)
	}
	if env.Data == nil || len(env.Data) != 0 {
		t.Errorf("Expected empty data array, got %v", env.Data)
	}
}

func TestItemsAPI_CreateThenList(t *testing.T) {
	h := setupTestHandler(t)

	var created itemEnvelope
	rec := doJSON(t, h, http.MethodPost, "/api/items",
		`{"name":"Chicken breast","category":"Protein","unit":"kg",
		  "avgDailyUsage":5,"maxDailyUsage":10,"leadTime":2,"currentStock":15}`,
		&created)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body)
	}
	if created.Message != "created" {
		t.Errorf("Expected message %q, got %q", "created", created.Message)
	}
	if created.Data.ID == 0 {
		t.Errorf("Expected an assigned id, got 0")
	}

	var list listEnvelope
	doJSON(t, h, http.MethodGet, "/api/items", "", &list)
	if len(list.Data) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(list.Data))
	}
	got := list.Data[0]
	if got.ID != created.Data.ID || got.Name != "Chicken breast" || got.Unit != "kg" {
		t.Errorf("Unexpected listed item: %+v", got)
	}
}

func TestItemsAPI_CreateWithEmptyBody(t *testing.T) {
	h := setupTestHandler(t)

	// No required fields: an empty object creates a blank row.
	var created itemEnvelope
	rec := doJSON(t, h, http.MethodPost, "/api/items", `{}`, &created)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body)
	}
	if created.Data.ID == 0 {
		t.Errorf("Expected an assigned id, got 0")
	}
	if created.Data.Name != "" || created.Data.AvgDailyUsage != "0" {
		t.Errorf("Expected blank row, got %+v", created.Data)
	}
}

func TestItemsAPI_PartialUpdate(t *testing.T) {
	h := setupTestHandler(t)

	var created itemEnvelope
	doJSON(t, h, http.MethodPost, "/api/items",
		`{"name":"Flour","unit":"kg","avgDailyUsage":10,"maxDailyUsage":14,"leadTime":4,"currentStock":60}`,
		&created)

	var updated itemEnvelope
	rec := doJSON(t, h, http.MethodPut, "/api/items/1", `{"currentStock":42}`, &updated)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if updated.Message != "updated" {
		t.Errorf("Expected message %q, got %q", "updated", updated.Message)
	}
	if updated.Changes == nil || *updated.Changes != 1 {
		t.Errorf("Expected changes=1, got %v", updated.Changes)
	}

	var list listEnvelope
	doJSON(t, h, http.MethodGet, "/api/items", "", &list)
	got := list.Data[0]
	if got.CurrentStock != "42" {
		t.Errorf("Expected currentStock 42, got %s", got.CurrentStock)
	}
	if got.Name != "Flour" || got.AvgDailyUsage != "10" || got.LeadTime != "4" {
		t.Errorf("Partial update changed other fields: %+v", got)
	}
}

func TestItemsAPI_UpdateUnknownID(t *testing.T) {
	h := setupTestHandler(t)

	var updated itemEnvelope
	rec := doJSON(t, h, http.MethodPut, "/api/items/9999", `{"currentStock":1}`, &updated)
	if rec.Code != http.StatusOK {
		t.Fatalf("Unknown id must be a zero-changes success, got %d: %s", rec.Code, rec.Body)
	}
	if updated.Changes == nil || *updated.Changes != 0 {
		t.Errorf("Expected changes=0, got %v", updated.Changes)
	}
}

func TestItemsAPI_Delete(t *testing.T) {
	h := setupTestHandler(t)

	doJSON(t, h, http.MethodPost, "/api/items", `{"name":"Olive oil"}`, nil)

	var deleted itemEnvelope
	rec := doJSON(t, h, http.MethodDelete, "/api/items/1", "", &deleted)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if deleted.Message != "deleted" {
		t.Errorf("Expected message %q, got %q", "deleted", deleted.Message)
	}
	if deleted.Changes == nil || *deleted.Changes != 1 {
		t.Errorf("Expected changes=1, got %v", deleted.Changes)
	}

	var gone itemEnvelope
	doJSON(t, h, http.MethodDelete, "/api/items/1", "", &gone)
	if gone.Changes == nil || *gone.Changes != 0 {
		t.Errorf("Expected changes=0 on second delete, got %v", gone.Changes)
	}
}

func TestItemsAPI_BadRequests(t *testing.T) {
	h := setupTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/items", `{not json`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Malformed body: expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid JSON body") {
		t.Errorf("Expected underlying message in error body, got %s", rec.Body)
	}

	rec = doJSON(t, h, http.MethodPut, "/api/items/abc", `{"currentStock":1}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Bad id on update: expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/items/abc", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Bad id on delete: expected 400, got %d", rec.Code)
	}
}

func TestItemsAPI_Health(t *testing.T) {
	h := setupTestHandler(t)

	doJSON(t, h, http.MethodPost, "/api/items", `{"name":"Mozzarella"}`, nil)

	var health struct {
		Status string `json:"status"`
		Items  int    `json:"items"`
	}
	rec := doJSON(t, h, http.MethodGet, "/api/health", "", &health)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if health.Status != "ok" || health.Items != 1 {
		t.Errorf("Unexpected health payload: %+v", health)
	}
}

func TestItemsAPI_RequestIDHeader(t *testing.T) {
	h := setupTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/items", "", nil)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Errorf("Expected an X-Request-ID header on every response")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-1")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied-1" {
		t.Errorf("Expected caller-supplied request id to be echoed, got %q", got)
	}
}
