package postgres

import (
	"context"
	"time"

	"civicAid/internal/domain"

	"github.com/google/uuid"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	List(ctx context.Context, page, limit int) ([]*domain.Complaint, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ComplaintStatus, notes string, resolvedAt *time.Time) error
}

type ResponderRepository interface {
	ListActiveByRole(ctx context.Context, role domain.Role) ([]*domain.Responder, error)
}

type AssignmentRepository interface {
	// Record inserts the assignment and updates the complaint's status and
	// role slot in one transaction.
	Record(ctx context.Context, assignment *domain.Assignment) error
	CountActive(ctx context.Context, responderID uuid.UUID) (int, error)
	MarkReassigned(ctx context.Context, complaintID uuid.UUID) (int64, error)
	GetActiveByComplaint(ctx context.Context, complaintID uuid.UUID) (*domain.Assignment, error)
	ListActiveByResponder(ctx context.Context, responderID uuid.UUID) ([]*domain.Assignment, error)
	CompleteActive(ctx context.Context, complaintID uuid.UUID, completedAt time.Time) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type StatsRepository interface {
	AssignmentStats(ctx context.Context) (*domain.AssignmentStats, error)
	FindOrphanedComplaints(ctx context.Context) ([]uuid.UUID, error)
	FindStaleActiveAssignments(ctx context.Context) ([]uuid.UUID, error)
}
