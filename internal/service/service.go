package service

import (
	"context"
	"time"

	"civicAid/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// AssignmentService routes complaints to responders and keeps the
// assignment ledger consistent.
type AssignmentService interface {
	AutoAssign(ctx context.Context, complaintID uuid.UUID) (domain.AssignResult, error)
	Reassign(ctx context.Context, complaintID uuid.UUID) (domain.AssignResult, error)
	GetByComplaint(ctx context.Context, complaintID uuid.UUID) (*domain.Assignment, error)
	ListForResponder(ctx context.Context, responderID uuid.UUID) ([]*domain.Assignment, error)
}

type ComplaintService interface {
	Create(ctx context.Context, req domain.CreateComplaintRequest) (*domain.Complaint, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	List(ctx context.Context, page, limit int) ([]*domain.Complaint, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateComplaintStatusRequest) error
}

type StatsService interface {
	GetStats(ctx context.Context) (*domain.AssignmentStats, error)
}

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

type NotificationQueue interface {
	Enqueue(ctx context.Context, payload domain.DeliveryPayload) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.BroadcastEvent) error
}

type StatsRepository interface {
	AssignmentStats(ctx context.Context) (*domain.AssignmentStats, error)
}

type Service struct {
	AssignmentService AssignmentService
	ComplaintService  ComplaintService
	StatsService      StatsService
}

func NewService(
	assignmentService AssignmentService,
	complaintService ComplaintService,
	statsService StatsService,
) *Service {
	return &Service{
		AssignmentService: assignmentService,
		ComplaintService:  complaintService,
		StatsService:      statsService,
	}
}
