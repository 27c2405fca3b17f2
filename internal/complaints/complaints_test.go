package complaints

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adebayo-ak/carechat/internal/db"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func testComplaint(id, user string) Complaint {
	return Complaint{
		ID:          id,
		Title:       "Late salary payment",
		Description: "August salary has not been paid",
		Category:    "payroll",
		SubmittedBy: user,
	}
}

func TestStoreCreate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, testComplaint("c-1", "u-1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != StatusPending {
		t.Errorf("Status = %s, want %s", created.Status, StatusPending)
	}
	if created.Priority != PriorityMedium {
		t.Errorf("Priority = %s, want %s", created.Priority, PriorityMedium)
	}
	if !strings.HasPrefix(created.Number, "CMP-") {
		t.Errorf("Number = %q, want CMP- prefix", created.Number)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStoreCreateRequiresTitle(t *testing.T) {
	store := setupTestStore(t)

	c := testComplaint("c-1", "u-1")
	c.Title = ""
	if _, err := store.Create(context.Background(), c); err == nil {
		t.Fatal("expected error for missing title")
	}
}

func TestStoreGetByIDNotFound(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.GetByID(context.Background(), "nonexistent"); err == nil {
		t.Fatal("expected error for nonexistent ID")
	}
}

func TestStoreListFilters(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, c := range []Complaint{
		testComplaint("c-1", "u-1"),
		testComplaint("c-2", "u-1"),
		testComplaint("c-3", "u-2"),
	} {
		if _, err := store.Create(ctx, c); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := store.UpdateStatus(ctx, "c-2", StatusResolved); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err := store.List(ctx, ListFilter{SubmittedBy: "u-1"})
	if err != nil {
		t.Fatalf("List by submitter: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("filter by submitter: got %d results, want 2", len(got))
	}

	got, err = store.List(ctx, ListFilter{Status: StatusResolved})
	if err != nil {
		t.Fatalf("List by status: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c-2" {
		t.Errorf("filter by status: got %v", got)
	}

	got, err = store.List(ctx, ListFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List with limit: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("limit: got %d results, want 2", len(got))
	}
}

func TestStoreActiveExcludesResolved(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, c := range []Complaint{
		testComplaint("c-1", "u-1"),
		testComplaint("c-2", "u-1"),
	} {
		if _, err := store.Create(ctx, c); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := store.UpdateStatus(ctx, "c-1", StatusResolved); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	active, err := store.Active(ctx, "u-1")
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if len(active) != 1 || active[0].ID != "c-2" {
		t.Errorf("Active = %v, want only c-2", active)
	}
}

func TestStoreMostRecent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	got, err := store.MostRecent(ctx, "u-1")
	if err != nil {
		t.Fatalf("MostRecent: %v", err)
	}
	if got != nil {
		t.Errorf("MostRecent on empty store = %v, want nil", got)
	}

	if _, err := store.Create(ctx, testComplaint("c-1", "u-1")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err = store.MostRecent(ctx, "u-1")
	if err != nil {
		t.Fatalf("MostRecent: %v", err)
	}
	if got == nil || got.ID != "c-1" {
		t.Errorf("MostRecent = %v, want c-1", got)
	}
}

func TestStoreRecentWindow(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if _, err := store.Create(ctx, testComplaint("c-1", "u-1")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	recent, err := store.Recent(ctx, "u-1", 24*time.Hour)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("Recent = %d results, want 1", len(recent))
	}
}

func TestStoreUpdateStatusValidation(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if _, err := store.Create(ctx, testComplaint("c-1", "u-1")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.UpdateStatus(ctx, "c-1", Status("bogus")); err == nil {
		t.Error("expected error for invalid status")
	}
	if err := store.UpdateStatus(ctx, "missing", StatusClosed); err == nil {
		t.Error("expected error for missing complaint")
	}
}

// --- route tests ---

func setupTestRouter(t *testing.T) (chi.Router, *Store) {
	t.Helper()
	store := setupTestStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store)
	return r, store
}

func TestRoutesCreateAndGet(t *testing.T) {
	r, _ := setupTestRouter(t)

	body, _ := json.Marshal(testComplaint("", "u-1"))
	req := httptest.NewRequest(http.MethodPost, "/api/complaints", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, want 201", rec.Code)
	}

	var created Complaint
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated ID")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/complaints/"+created.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", rec.Code)
	}
}

func TestRoutesCreateValidation(t *testing.T) {
	r, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/complaints", strings.NewReader(`{"title":""}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("POST status = %d, want 400", rec.Code)
	}
}

func TestRoutesUpdateStatus(t *testing.T) {
	r, store := setupTestRouter(t)

	if _, err := store.Create(context.Background(), testComplaint("c-1", "u-1")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest(http.MethodPatch, "/api/complaints/c-1/status", strings.NewReader(`{"status":"in_progress"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("PATCH status = %d, want 200", rec.Code)
	}

	got, err := store.GetByID(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != StatusInProgress {
		t.Errorf("Status = %s, want %s", got.Status, StatusInProgress)
	}
}
