package domain

import "github.com/google/uuid"

type Role string

const (
	RoleNGO       Role = "ngo"
	RoleAuthority Role = "authority"
)

// DefaultCapacity applies when a responder never set one.
const DefaultCapacity = 10

type CapabilityProfile struct {
	Categories []Category `json:"categories"`
	Capacity   int        `json:"capacity"`
}

func (p CapabilityProfile) EffectiveCapacity() int {
	if p.Capacity <= 0 {
		return DefaultCapacity
	}
	return p.Capacity
}

func (p CapabilityProfile) Handles(c Category) bool {
	for _, cat := range p.Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// Responder is an NGO or authority account eligible to receive assignments.
// Accounts are maintained externally; the engine only reads them.
type Responder struct {
	ID       uuid.UUID         `json:"id"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Phone    string            `json:"phone"`
	Role     Role              `json:"role"`
	Location *Location         `json:"location,omitempty"`
	Profile  CapabilityProfile `json:"profile"`
	IsActive bool              `json:"is_active"`
}

// HasCoordinates reports whether the responder can be evaluated at all.
// Responders without a location are skipped, never scored.
func (r *Responder) HasCoordinates() bool {
	return r.Location != nil
}
