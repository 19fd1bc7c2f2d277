package domain

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentStatus string

const (
	AssignmentActive     AssignmentStatus = "active"
	AssignmentCompleted  AssignmentStatus = "completed"
	AssignmentReassigned AssignmentStatus = "reassigned"
)

// Assignment records one routing decision. At most one active assignment
// exists per complaint; reassignment supersedes the old record instead of
// rewriting it, so history accumulates.
type Assignment struct {
	ID                   uuid.UUID        `json:"id"`
	ComplaintID          uuid.UUID        `json:"complaint_id"`
	AssignedTo           uuid.UUID        `json:"assigned_to"`
	AssignedRole         Role             `json:"assigned_role"`
	Score                float64          `json:"assignment_score"`
	CategoryMatch        bool             `json:"category_match"`
	DistanceKM           float64          `json:"distance_km"`
	WorkloadAtAssignment int              `json:"workload_at_assignment"`
	Status               AssignmentStatus `json:"status"`
	AssignedAt           time.Time        `json:"assigned_at"`
	CompletedAt          *time.Time       `json:"completed_at,omitempty"`
}

// Candidate is an eligible responder paired with its score for one complaint.
type Candidate struct {
	Responder     *Responder `json:"responder"`
	Role          Role       `json:"role"`
	CategoryMatch bool       `json:"category_match"`
	DistanceKM    float64    `json:"distance_km"`
	Workload      int        `json:"workload"`
	Capacity      int        `json:"capacity"`
	Score         float64    `json:"score"`
}

// AssigneeProfile is the public shape returned to reassignment callers.
// Distance and score are rounded to 2 decimals.
type AssigneeProfile struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Role          Role      `json:"role"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	CategoryMatch bool      `json:"category_match"`
	Distance      float64   `json:"distance"`
	Workload      int       `json:"workload"`
	Capacity      int       `json:"capacity"`
	Score         float64   `json:"score"`
}

// AssignResult is the outcome of one selection run. Assigned=false with a
// message means the run completed but nobody qualified; it is not an error.
type AssignResult struct {
	Assigned   bool             `json:"assigned"`
	Message    string           `json:"message,omitempty"`
	Assignment *Assignment      `json:"assignment,omitempty"`
	AssignedTo *AssigneeProfile `json:"assigned_to,omitempty"`
}

const NoCandidateMessage = "no available NGO or authority found for this complaint"
