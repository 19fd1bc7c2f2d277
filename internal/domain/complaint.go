package domain

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryInfrastructure Category = "infrastructure"
	CategorySanitation     Category = "sanitation"
	CategorySafety         Category = "safety"
	CategoryEnvironment    Category = "environment"
	CategoryHealth         Category = "health"
	CategoryEducation      Category = "education"
	CategoryTransport      Category = "transport"
	CategoryOther          Category = "other"
)

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintAssigned   ComplaintStatus = "assigned"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintRejected   ComplaintStatus = "rejected"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type Location struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
	Address   string  `json:"address"`
}

type Complaint struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Location    Location        `json:"location"`
	Status      ComplaintStatus `json:"status"`
	Priority    Priority        `json:"priority"`

	// At most one responder reference per role slot.
	AssignedNGO       *uuid.UUID `json:"assigned_ngo,omitempty"`
	AssignedAuthority *uuid.UUID `json:"assigned_authority,omitempty"`

	ResolutionNotes string     `json:"resolution_notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
}
