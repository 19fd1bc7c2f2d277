package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationAssignment NotificationType = "assignment"
	NotificationComplaint  NotificationType = "complaint"
)

type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	RelatedID uuid.UUID        `json:"related_id"`
	CreatedAt time.Time        `json:"created_at"`
}

// DeliveryPayload is what the delivery worker pops off the queue and posts
// to the configured webhook.
type DeliveryPayload struct {
	UserID    uuid.UUID        `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	RelatedID uuid.UUID        `json:"related_id"`
	QueuedAt  time.Time        `json:"queued_at"`
}

// Event names published on the broadcast channel after the engine's caller
// receives a result. The engine itself never publishes.
const (
	EventNewComplaint       = "new_complaint"
	EventRefreshAssignments = "refresh_assignments"
	EventComplaintUpdated   = "complaint_updated"
)

type BroadcastEvent struct {
	Name        string    `json:"name"`
	ComplaintID uuid.UUID `json:"complaint_id"`
	At          time.Time `json:"at"`
}
