package service

import (
	"context"
	"math"
	"sort"

	"log/slog"

	"civicAid/internal/domain"
	"civicAid/pkg/geo"

	"github.com/google/uuid"
)

// Score weights. Category specialization dominates, then proximity, then
// spare capacity.
const (
	categoryMatchBonus = 50.0
	proximityBase      = 30.0 // full bonus at 0 km, nothing beyond 30 km
	workloadBase       = 20.0 // full bonus idle, nothing at capacity
)

type assignmentService struct {
	complaints  ComplaintRepository
	responders  ResponderRepository
	assignments AssignmentRepository
	logger      *slog.Logger
}

func NewAssignmentService(
	complaints ComplaintRepository,
	responders ResponderRepository,
	assignments AssignmentRepository,
	logger *slog.Logger,
) AssignmentService {
	return &assignmentService{
		complaints:  complaints,
		responders:  responders,
		assignments: assignments,
		logger:      logger,
	}
}

// AutoAssign selects the best responder for one complaint and records the
// decision. A run where nobody qualifies returns Assigned=false with a
// message and leaves the complaint untouched.
func (s *assignmentService) AutoAssign(ctx context.Context, complaintID uuid.UUID) (domain.AssignResult, error) {
	complaint, err := s.complaints.Get(ctx, complaintID)
	if err != nil {
		return domain.AssignResult{}, err
	}

	candidates, err := s.gatherCandidates(ctx, complaint)
	if err != nil {
		return domain.AssignResult{}, err
	}

	// Stable sort: true ties resolve by enumeration order, NGOs before
	// authorities, each pool in registration order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) == 0 {
		s.logger.Info("no candidate for complaint",
			slog.String("complaint_id", complaintID.String()),
			slog.String("category", string(complaint.Category)),
		)
		return domain.AssignResult{
			Assigned: false,
			Message:  domain.NoCandidateMessage,
		}, nil
	}

	best := candidates[0]
	assignment := &domain.Assignment{
		ComplaintID:          complaintID,
		AssignedTo:           best.Responder.ID,
		AssignedRole:         best.Role,
		Score:                best.Score,
		CategoryMatch:        best.CategoryMatch,
		DistanceKM:           best.DistanceKM,
		WorkloadAtAssignment: best.Workload,
		Status:               domain.AssignmentActive,
	}

	if err := s.assignments.Record(ctx, assignment); err != nil {
		return domain.AssignResult{}, err
	}

	s.logger.Info("complaint assigned",
		slog.String("complaint_id", complaintID.String()),
		slog.String("responder_id", best.Responder.ID.String()),
		slog.String("role", string(best.Role)),
		slog.Float64("score", best.Score),
		slog.Int("candidates", len(candidates)),
	)

	return domain.AssignResult{
		Assigned:   true,
		Assignment: assignment,
		AssignedTo: assigneeProfile(best),
	}, nil
}

// Reassign supersedes every active assignment of the complaint and runs
// selection fresh. The superseded records stay in history.
func (s *assignmentService) Reassign(ctx context.Context, complaintID uuid.UUID) (domain.AssignResult, error) {
	if _, err := s.complaints.Get(ctx, complaintID); err != nil {
		return domain.AssignResult{}, err
	}

	superseded, err := s.assignments.MarkReassigned(ctx, complaintID)
	if err != nil {
		return domain.AssignResult{}, err
	}
	s.logger.Info("assignments superseded",
		slog.String("complaint_id", complaintID.String()),
		slog.Int64("count", superseded),
	)

	return s.AutoAssign(ctx, complaintID)
}

func (s *assignmentService) GetByComplaint(ctx context.Context, complaintID uuid.UUID) (*domain.Assignment, error) {
	return s.assignments.GetActiveByComplaint(ctx, complaintID)
}

func (s *assignmentService) ListForResponder(ctx context.Context, responderID uuid.UUID) ([]*domain.Assignment, error) {
	return s.assignments.ListActiveByResponder(ctx, responderID)
}

// gatherCandidates evaluates both responder pools. A responder is only ever
// evaluated under its actual role.
func (s *assignmentService) gatherCandidates(ctx context.Context, complaint *domain.Complaint) ([]domain.Candidate, error) {
	var candidates []domain.Candidate

	for _, role := range []domain.Role{domain.RoleNGO, domain.RoleAuthority} {
		pool, err := s.responders.ListActiveByRole(ctx, role)
		if err != nil {
			return nil, err
		}

		for _, r := range pool {
			if !r.HasCoordinates() {
				continue
			}

			// Live read, never cached: concurrent assignments must be
			// visible at decision time.
			workload, err := s.assignments.CountActive(ctx, r.ID)
			if err != nil {
				return nil, err
			}

			cand, eligible := evaluate(complaint, r, workload)
			if !eligible {
				continue
			}
			candidates = append(candidates, cand)
		}
	}

	return candidates, nil
}

// evaluate scores one (complaint, responder) pair. The caller has already
// checked coordinate presence. Responders at or over capacity are out,
// workload < capacity is strict.
func evaluate(complaint *domain.Complaint, r *domain.Responder, workload int) (domain.Candidate, bool) {
	capacity := r.Profile.EffectiveCapacity()
	if workload >= capacity {
		return domain.Candidate{}, false
	}

	categoryMatch := r.Profile.Handles(complaint.Category)
	distance := geo.DistanceKM(
		complaint.Location.Latitude,
		complaint.Location.Longitude,
		r.Location.Latitude,
		r.Location.Longitude,
	)

	var score float64
	if categoryMatch {
		score += categoryMatchBonus
	}
	score += math.Max(0, proximityBase-distance)
	score += math.Max(0, workloadBase-(float64(workload)/float64(capacity))*workloadBase)

	return domain.Candidate{
		Responder:     r,
		Role:          r.Role,
		CategoryMatch: categoryMatch,
		DistanceKM:    distance,
		Workload:      workload,
		Capacity:      capacity,
		Score:         score,
	}, true
}

func assigneeProfile(c domain.Candidate) *domain.AssigneeProfile {
	return &domain.AssigneeProfile{
		ID:            c.Responder.ID,
		Name:          c.Responder.Name,
		Role:          c.Role,
		Email:         c.Responder.Email,
		Phone:         c.Responder.Phone,
		CategoryMatch: c.CategoryMatch,
		Distance:      round2(c.DistanceKM),
		Workload:      c.Workload,
		Capacity:      c.Capacity,
		Score:         round2(c.Score),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
