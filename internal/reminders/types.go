package reminders

import "time"

// Channel identifies how a reminder reaches the handling team.
type Channel string

const (
	ChannelChat    Channel = "chat"
	ChannelWebhook Channel = "webhook"
)

// Reminder is one nudge sent to the team handling a complaint, usually
// triggered by a user asking for a status update in chat.
type Reminder struct {
	ID          string    `json:"id"`
	ComplaintID string    `json:"complaint_id"`
	Channel     Channel   `json:"channel"`
	Delivered   bool      `json:"delivered"`
	CreatedAt   time.Time `json:"created_at"`
}
