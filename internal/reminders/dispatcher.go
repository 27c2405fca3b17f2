package reminders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Dispatcher records reminders and optionally forwards them to a team webhook.
type Dispatcher struct {
	store      *Store
	webhookURL string
	client     *http.Client
}

// NewDispatcher creates a Dispatcher backed by the given store. webhookURL may
// be empty, in which case reminders are only persisted.
func NewDispatcher(store *Store, webhookURL string) *Dispatcher {
	return &Dispatcher{
		store:      store,
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send persists a reminder for the given complaint and forwards it to the
// configured webhook. Webhook failures mean the reminder stays undelivered;
// the persisted record itself is the source of truth.
func (d *Dispatcher) Send(ctx context.Context, complaintID string) error {
	r := Reminder{ID: uuid.New().String(), ComplaintID: complaintID, Channel: ChannelChat}
	if d.webhookURL != "" {
		r.Channel = ChannelWebhook
	}

	if err := d.store.Create(ctx, r); err != nil {
		return fmt.Errorf("creating reminder: %w", err)
	}

	if d.webhookURL == "" {
		return nil
	}

	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshalling reminder: %w", err)
	}
	if err := d.postWebhook(ctx, payload); err != nil {
		return err
	}

	return d.store.MarkDelivered(ctx, r.ID)
}

// postWebhook POSTs payload to the configured URL.
func (d *Dispatcher) postWebhook(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
