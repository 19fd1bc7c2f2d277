package service

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"civicAid/internal/domain"
	"civicAid/pkg/e"

	"github.com/google/uuid"
)

type complaintService struct {
	complaints    ComplaintRepository
	assignments   AssignmentRepository
	notifications NotificationRepository
	assigner      AssignmentService
	queue         NotificationQueue
	events        EventPublisher
	logger        *slog.Logger
}

func NewComplaintService(
	complaints ComplaintRepository,
	assignments AssignmentRepository,
	notifications NotificationRepository,
	assigner AssignmentService,
	queue NotificationQueue,
	events EventPublisher,
	logger *slog.Logger,
) ComplaintService {
	return &complaintService{
		complaints:    complaints,
		assignments:   assignments,
		notifications: notifications,
		assigner:      assigner,
		queue:         queue,
		events:        events,
		logger:        logger,
	}
}

// Create files the complaint, then tries to route it. Assignment trouble is
// logged and never fails the filing; the complaint just stays pending.
func (s *complaintService) Create(ctx context.Context, req domain.CreateComplaintRequest) (*domain.Complaint, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse user_id: %w", e.ErrInvalidInput)
	}

	complaint := &domain.Complaint{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Status:      domain.ComplaintPending,
		Priority:    req.Priority,
	}
	if complaint.Priority == "" {
		complaint.Priority = domain.PriorityMedium
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	result, err := s.assigner.AutoAssign(ctx, complaint.ID)
	if err != nil {
		s.logger.Error("auto-assignment failed, complaint stays pending",
			slog.String("complaint_id", complaint.ID.String()),
			slog.Any("error", err),
		)
	} else {
		s.afterAssignment(ctx, complaint, result)
		if result.Assigned {
			complaint.Status = domain.ComplaintAssigned
			if result.Assignment.AssignedRole == domain.RoleNGO {
				complaint.AssignedNGO = &result.Assignment.AssignedTo
			} else {
				complaint.AssignedAuthority = &result.Assignment.AssignedTo
			}
		}
	}

	s.notify(ctx, complaint.UserID, "Complaint Submitted",
		fmt.Sprintf("Your complaint %q has been submitted successfully.", complaint.Title),
		domain.NotificationComplaint, complaint.ID)

	s.publish(ctx, domain.EventNewComplaint, complaint.ID)

	return complaint, nil
}

// afterAssignment fans out the side effects the engine itself must not own:
// assignee notification plus the refresh broadcast.
func (s *complaintService) afterAssignment(ctx context.Context, complaint *domain.Complaint, result domain.AssignResult) {
	if !result.Assigned {
		s.logger.Info("complaint left unassigned",
			slog.String("complaint_id", complaint.ID.String()),
			slog.String("reason", result.Message),
		)
		return
	}

	s.notify(ctx, result.AssignedTo.ID, "New Complaint Assigned",
		fmt.Sprintf("You have been assigned a new complaint: %s", complaint.Title),
		domain.NotificationAssignment, complaint.ID)

	s.publish(ctx, domain.EventRefreshAssignments, complaint.ID)
}

func (s *complaintService) Get(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	return s.complaints.Get(ctx, id)
}

func (s *complaintService) List(ctx context.Context, page, limit int) ([]*domain.Complaint, int64, error) {
	return s.complaints.List(ctx, page, limit)
}

// UpdateStatus drives the downstream complaint transitions. Resolving a
// complaint completes its active assignment.
func (s *complaintService) UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateComplaintStatusRequest) error {
	complaint, err := s.complaints.Get(ctx, id)
	if err != nil {
		return err
	}

	var resolvedAt *time.Time
	if req.Status == domain.ComplaintResolved {
		now := time.Now().UTC()
		resolvedAt = &now
	}

	if err := s.complaints.UpdateStatus(ctx, id, req.Status, req.ResolutionNotes, resolvedAt); err != nil {
		return err
	}

	if req.Status == domain.ComplaintResolved {
		if err := s.assignments.CompleteActive(ctx, id, *resolvedAt); err != nil {
			s.logger.Error("complete active assignment failed",
				slog.String("complaint_id", id.String()),
				slog.Any("error", err),
			)
			return err
		}
	}

	s.notify(ctx, complaint.UserID, "Complaint Updated",
		fmt.Sprintf("Your complaint %q is now %s.", complaint.Title, req.Status),
		domain.NotificationComplaint, id)

	s.publish(ctx, domain.EventComplaintUpdated, id)

	return nil
}

func (s *complaintService) notify(ctx context.Context, userID uuid.UUID, title, message string, typ domain.NotificationType, relatedID uuid.UUID) {
	n := &domain.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		RelatedID: relatedID,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Error("save notification failed", slog.Any("error", err))
		return
	}

	payload := domain.DeliveryPayload{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		RelatedID: relatedID,
		QueuedAt:  time.Now().UTC(),
	}
	if err := s.queue.Enqueue(ctx, payload); err != nil {
		s.logger.Error("enqueue notification failed", slog.Any("error", err))
	}
}

func (s *complaintService) publish(ctx context.Context, name string, complaintID uuid.UUID) {
	if err := s.events.Publish(ctx, domain.BroadcastEvent{Name: name, ComplaintID: complaintID}); err != nil {
		s.logger.Error("publish event failed", slog.String("event", name), slog.Any("error", err))
	}
}
