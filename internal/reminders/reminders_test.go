package reminders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adebayo-ak/carechat/internal/db"
)

func setupTest(t *testing.T) (*Store, *db.DB) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database), database
}

// insertComplaint satisfies the foreign key on reminders.complaint_id.
func insertComplaint(t *testing.T, database *db.DB, id string) {
	t.Helper()
	_, err := database.Exec(`
		INSERT INTO complaints (id, number, title, submitted_by)
		VALUES (?, ?, 'Test complaint', 'u-1')`, id, "CMP-"+id)
	if err != nil {
		t.Fatalf("inserting complaint: %v", err)
	}
}

func TestStoreCreateAndList(t *testing.T) {
	store, database := setupTest(t)
	ctx := context.Background()
	insertComplaint(t, database, "c-1")

	if err := store.Create(ctx, Reminder{ComplaintID: "c-1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.List(ctx, "c-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List = %d results, want 1", len(got))
	}
	if got[0].ID == "" {
		t.Error("expected generated ID")
	}
	if got[0].Channel != ChannelChat {
		t.Errorf("Channel = %s, want %s", got[0].Channel, ChannelChat)
	}
	if got[0].Delivered {
		t.Error("expected Delivered = false")
	}
}

func TestStoreMarkDelivered(t *testing.T) {
	store, database := setupTest(t)
	ctx := context.Background()
	insertComplaint(t, database, "c-1")

	if err := store.Create(ctx, Reminder{ID: "r-1", ComplaintID: "c-1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.MarkDelivered(ctx, "r-1"); err != nil {
		t.Fatalf("MarkDelivered: %v", err)
	}

	pending, err := store.GetPending(ctx)
	if err != nil {
		t.Fatalf("GetPending: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("GetPending = %d results, want 0", len(pending))
	}

	if err := store.MarkDelivered(ctx, "missing"); err == nil {
		t.Error("expected error for missing reminder")
	}
}

func TestDispatcherWithoutWebhook(t *testing.T) {
	store, database := setupTest(t)
	ctx := context.Background()
	insertComplaint(t, database, "c-1")

	d := NewDispatcher(store, "")
	if err := d.Send(ctx, "c-1"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	got, err := store.List(ctx, "c-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Delivered {
		t.Errorf("expected one undelivered reminder, got %v", got)
	}
}

func TestDispatcherWebhookDelivery(t *testing.T) {
	store, database := setupTest(t)
	ctx := context.Background()
	insertComplaint(t, database, "c-1")

	var received Reminder
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decoding webhook payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewDispatcher(store, srv.URL)
	if err := d.Send(ctx, "c-1"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if received.ComplaintID != "c-1" {
		t.Errorf("webhook payload ComplaintID = %q, want c-1", received.ComplaintID)
	}

	got, err := store.List(ctx, "c-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || !got[0].Delivered {
		t.Errorf("expected one delivered reminder, got %v", got)
	}
}

func TestDispatcherWebhookFailureKeepsReminder(t *testing.T) {
	store, database := setupTest(t)
	ctx := context.Background()
	insertComplaint(t, database, "c-1")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewDispatcher(store, srv.URL)
	if err := d.Send(ctx, "c-1"); err == nil {
		t.Fatal("expected webhook error")
	}

	// The reminder record survives the failed delivery.
	got, err := store.List(ctx, "c-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Delivered {
		t.Errorf("expected one undelivered reminder, got %v", got)
	}
}
