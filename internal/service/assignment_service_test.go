package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"civicAid/internal/domain"
	"civicAid/internal/service"
	"civicAid/pkg/e"
	"civicAid/pkg/geo"

	mock_service "civicAid/internal/service/mocks"
)

// --- helpers ---

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func locPtr(lat, lng float64) *domain.Location {
	return &domain.Location{Latitude: lat, Longitude: lng}
}

func testComplaint(category domain.Category, lat, lng float64) *domain.Complaint {
	return &domain.Complaint{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Title:    "broken street light",
		Category: category,
		Location: domain.Location{Latitude: lat, Longitude: lng},
		Status:   domain.ComplaintPending,
	}
}

func testResponder(role domain.Role, loc *domain.Location, categories []domain.Category, capacity int) *domain.Responder {
	return &domain.Responder{
		ID:       uuid.New(),
		Name:     "responder",
		Role:     role,
		Location: loc,
		Profile: domain.CapabilityProfile{
			Categories: categories,
			Capacity:   capacity,
		},
		IsActive: true,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

type engineMocks struct {
	complaints  *mock_service.MockComplaintRepository
	responders  *mock_service.MockResponderRepository
	assignments *mock_service.MockAssignmentRepository
}

func newEngine(ctrl *gomock.Controller) (service.AssignmentService, engineMocks) {
	m := engineMocks{
		complaints:  mock_service.NewMockComplaintRepository(ctrl),
		responders:  mock_service.NewMockResponderRepository(ctrl),
		assignments: mock_service.NewMockAssignmentRepository(ctrl),
	}
	svc := service.NewAssignmentService(m.complaints, m.responders, m.assignments, discardLogger())
	return svc, m
}

// --- AutoAssign ---

// Идеальный кандидат: совпадение категории, нулевая дистанция, пустая
// загрузка при дефолтной ёмкости. 50 + 30 + 20 = 100.
func TestAssignmentService_AutoAssign_PerfectScore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaint := testComplaint(domain.CategoryHealth, 23.8103, 90.4125)
	ngo := testResponder(domain.RoleNGO, locPtr(23.8103, 90.4125), []domain.Category{domain.CategoryHealth}, 0)

	m.complaints.EXPECT().Get(gomock.Any(), complaint.ID).Return(complaint, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleNGO).Return([]*domain.Responder{ngo}, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleAuthority).Return([]*domain.Responder{}, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), ngo.ID).Return(0, nil).Times(1)

	var recorded *domain.Assignment
	m.assignments.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Assignment) error {
			recorded = a
			return nil
		}).
		Times(1)

	result, err := svc.AutoAssign(context.Background(), complaint.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !result.Assigned {
		t.Fatalf("expected assigned result, got message=%q", result.Message)
	}

	if recorded == nil {
		t.Fatalf("expected assignment passed to repo.Record")
	}
	if !almostEqual(recorded.Score, 100) {
		t.Fatalf("expected score=100, got=%v", recorded.Score)
	}
	if !recorded.CategoryMatch {
		t.Fatalf("expected category match")
	}
	if !almostEqual(recorded.DistanceKM, 0) {
		t.Fatalf("expected zero distance, got=%v", recorded.DistanceKM)
	}
	if recorded.WorkloadAtAssignment != 0 {
		t.Fatalf("expected workload=0, got=%d", recorded.WorkloadAtAssignment)
	}
	if recorded.Status != domain.AssignmentActive {
		t.Fatalf("expected status=%q, got=%q", domain.AssignmentActive, recorded.Status)
	}
	if recorded.ComplaintID != complaint.ID || recorded.AssignedTo != ngo.ID {
		t.Fatalf("assignment references mismatch: %+v", recorded)
	}

	if result.AssignedTo == nil || result.AssignedTo.ID != ngo.ID {
		t.Fatalf("unexpected assignee profile: %+v", result.AssignedTo)
	}
	if !almostEqual(result.AssignedTo.Score, 100) {
		t.Fatalf("expected rounded score=100, got=%v", result.AssignedTo.Score)
	}
}

// Два пула: специалист без совпадения категории против совпавшего. Счёт
// считаем той же формулой, что и прод, но с дистанцией из geo.
func TestAssignmentService_AutoAssign_PicksHighestScore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaint := testComplaint(domain.CategoryHealth, 23.8103, 90.4125)

	// Совпадение + та же точка + свободен.
	matching := testResponder(domain.RoleNGO, locPtr(23.8103, 90.4125), []domain.Category{domain.CategoryHealth}, 10)
	// Без совпадения, чуть в стороне, наполовину загружен.
	other := testResponder(domain.RoleAuthority, locPtr(23.8553, 90.4125), []domain.Category{domain.CategoryTransport}, 10)

	m.complaints.EXPECT().Get(gomock.Any(), complaint.ID).Return(complaint, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleNGO).Return([]*domain.Responder{matching}, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleAuthority).Return([]*domain.Responder{other}, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), matching.ID).Return(0, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), other.ID).Return(5, nil).Times(1)

	var recorded *domain.Assignment
	m.assignments.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Assignment) error {
			recorded = a
			return nil
		}).
		Times(1)

	result, err := svc.AutoAssign(context.Background(), complaint.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !result.Assigned || recorded == nil {
		t.Fatalf("expected assignment")
	}
	if recorded.AssignedTo != matching.ID {
		t.Fatalf("expected the matching responder to win, got=%s", recorded.AssignedTo)
	}
	if !almostEqual(recorded.Score, 100) {
		t.Fatalf("expected winner score=100, got=%v", recorded.Score)
	}

	// Проверяем, что проигравший действительно набрал ожидаемое.
	dist := geo.DistanceKM(complaint.Location.Latitude, complaint.Location.Longitude,
		other.Location.Latitude, other.Location.Longitude)
	wantOther := math.Max(0, 30-dist) + (20 - (5.0/10.0)*20)
	if wantOther >= 100 {
		t.Fatalf("scenario broken: loser score %v not below winner", wantOther)
	}
}

func TestAssignmentService_AutoAssign_SkipsRespondersWithoutCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaint := testComplaint(domain.CategorySanitation, 23.8, 90.4)
	noLoc := testResponder(domain.RoleNGO, nil, []domain.Category{domain.CategorySanitation}, 10)

	m.complaints.EXPECT().Get(gomock.Any(), complaint.ID).Return(complaint, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleNGO).Return([]*domain.Responder{noLoc}, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleAuthority).Return([]*domain.Responder{}, nil).Times(1)
	// CountActive и Record не ожидаем: без координат кандидат даже не оценивается.

	result, err := svc.AutoAssign(context.Background(), complaint.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.Assigned {
		t.Fatalf("expected no assignment")
	}
	if result.Message != domain.NoCandidateMessage {
		t.Fatalf("expected message=%q, got=%q", domain.NoCandidateMessage, result.Message)
	}
}

func TestAssignmentService_AutoAssign_AtCapacityExcluded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaint := testComplaint(domain.CategorySafety, 23.8, 90.4)
	full := testResponder(domain.RoleNGO, locPtr(23.8, 90.4), []domain.Category{domain.CategorySafety}, 2)
	free := testResponder(domain.RoleNGO, locPtr(23.8, 90.4), nil, 2)

	m.complaints.EXPECT().Get(gomock.Any(), complaint.ID).Return(complaint, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleNGO).Return([]*domain.Responder{full, free}, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleAuthority).Return([]*domain.Responder{}, nil).Times(1)
	// workload == capacity: строгая граница, кандидат выбывает.
	m.assignments.EXPECT().CountActive(gomock.Any(), full.ID).Return(2, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), free.ID).Return(1, nil).Times(1)

	var recorded *domain.Assignment
	m.assignments.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Assignment) error {
			recorded = a
			return nil
		}).
		Times(1)

	result, err := svc.AutoAssign(context.Background(), complaint.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !result.Assigned || recorded == nil {
		t.Fatalf("expected assignment")
	}
	if recorded.AssignedTo != free.ID {
		t.Fatalf("expected the responder with spare capacity, got=%s", recorded.AssignedTo)
	}
	if recorded.CategoryMatch {
		t.Fatalf("winner has no category match, mismatch in evaluation")
	}
}

func TestAssignmentService_AutoAssign_DefaultCapacity(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaint := testComplaint(domain.CategoryOther, 23.8, 90.4)
	// Ёмкость не задана: действует дефолт 10, загрузка 10 выбивает.
	unset := testResponder(domain.RoleAuthority, locPtr(23.8, 90.4), nil, 0)

	m.complaints.EXPECT().Get(gomock.Any(), complaint.ID).Return(complaint, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleNGO).Return([]*domain.Responder{}, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleAuthority).Return([]*domain.Responder{unset}, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), unset.ID).Return(domain.DefaultCapacity, nil).Times(1)

	result, err := svc.AutoAssign(context.Background(), complaint.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.Assigned {
		t.Fatalf("expected no assignment for a responder at default capacity")
	}
}

func TestAssignmentService_AutoAssign_CategoryBonusBreaksEquality(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaint := testComplaint(domain.CategoryEnvironment, 23.8, 90.4)
	plain := testResponder(domain.RoleNGO, locPtr(23.8, 90.4), []domain.Category{domain.CategoryTransport}, 10)
	specialist := testResponder(domain.RoleNGO, locPtr(23.8, 90.4), []domain.Category{domain.CategoryEnvironment}, 10)

	m.complaints.EXPECT().Get(gomock.Any(), complaint.ID).Return(complaint, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleNGO).Return([]*domain.Responder{plain, specialist}, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleAuthority).Return([]*domain.Responder{}, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), plain.ID).Return(0, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), specialist.ID).Return(0, nil).Times(1)

	var recorded *domain.Assignment
	m.assignments.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Assignment) error {
			recorded = a
			return nil
		}).
		Times(1)

	if _, err := svc.AutoAssign(context.Background(), complaint.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if recorded.AssignedTo != specialist.ID {
		t.Fatalf("expected specialist to win, got=%s", recorded.AssignedTo)
	}
	// Ровно бонус категории между одинаковыми в остальном кандидатами.
	if !almostEqual(recorded.Score, 50+30+20) {
		t.Fatalf("expected score=100, got=%v", recorded.Score)
	}
}

func TestAssignmentService_AutoAssign_CloserWins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaint := testComplaint(domain.CategoryTransport, 23.8, 90.4)
	far := testResponder(domain.RoleNGO, locPtr(23.95, 90.4), []domain.Category{domain.CategoryTransport}, 10)
	near := testResponder(domain.RoleNGO, locPtr(23.82, 90.4), []domain.Category{domain.CategoryTransport}, 10)

	m.complaints.EXPECT().Get(gomock.Any(), complaint.ID).Return(complaint, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleNGO).Return([]*domain.Responder{far, near}, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleAuthority).Return([]*domain.Responder{}, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), far.ID).Return(0, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), near.ID).Return(0, nil).Times(1)

	var recorded *domain.Assignment
	m.assignments.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Assignment) error {
			recorded = a
			return nil
		}).
		Times(1)

	if _, err := svc.AutoAssign(context.Background(), complaint.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if recorded.AssignedTo != near.ID {
		t.Fatalf("expected the closer responder, got=%s", recorded.AssignedTo)
	}
}

func TestAssignmentService_AutoAssign_LowerWorkloadWins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaint := testComplaint(domain.CategoryEducation, 23.8, 90.4)
	busy := testResponder(domain.RoleAuthority, locPtr(23.8, 90.4), []domain.Category{domain.CategoryEducation}, 10)
	idle := testResponder(domain.RoleAuthority, locPtr(23.8, 90.4), []domain.Category{domain.CategoryEducation}, 10)

	m.complaints.EXPECT().Get(gomock.Any(), complaint.ID).Return(complaint, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleNGO).Return([]*domain.Responder{}, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleAuthority).Return([]*domain.Responder{busy, idle}, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), busy.ID).Return(7, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), idle.ID).Return(1, nil).Times(1)

	var recorded *domain.Assignment
	m.assignments.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Assignment) error {
			recorded = a
			return nil
		}).
		Times(1)

	if _, err := svc.AutoAssign(context.Background(), complaint.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if recorded.AssignedTo != idle.ID {
		t.Fatalf("expected the less loaded responder, got=%s", recorded.AssignedTo)
	}
	if recorded.WorkloadAtAssignment != 1 {
		t.Fatalf("expected recorded workload=1, got=%d", recorded.WorkloadAtAssignment)
	}
}

// При полном равенстве счёта побеждает порядок перечисления: NGO раньше
// властей, внутри пула порядок регистрации.
func TestAssignmentService_AutoAssign_TieNGOFirst(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaint := testComplaint(domain.CategorySafety, 23.8, 90.4)
	ngo := testResponder(domain.RoleNGO, locPtr(23.8, 90.4), []domain.Category{domain.CategorySafety}, 10)
	authority := testResponder(domain.RoleAuthority, locPtr(23.8, 90.4), []domain.Category{domain.CategorySafety}, 10)

	m.complaints.EXPECT().Get(gomock.Any(), complaint.ID).Return(complaint, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleNGO).Return([]*domain.Responder{ngo}, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleAuthority).Return([]*domain.Responder{authority}, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), ngo.ID).Return(0, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), authority.ID).Return(0, nil).Times(1)

	var recorded *domain.Assignment
	m.assignments.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Assignment) error {
			recorded = a
			return nil
		}).
		Times(1)

	if _, err := svc.AutoAssign(context.Background(), complaint.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if recorded.AssignedTo != ngo.ID {
		t.Fatalf("tie must resolve to the NGO pool, got role=%s", recorded.AssignedRole)
	}
	if recorded.AssignedRole != domain.RoleNGO {
		t.Fatalf("expected role=%q, got=%q", domain.RoleNGO, recorded.AssignedRole)
	}
}

func TestAssignmentService_AutoAssign_NoCandidate_NoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaint := testComplaint(domain.CategoryInfrastructure, 23.8, 90.4)

	m.complaints.EXPECT().Get(gomock.Any(), complaint.ID).Return(complaint, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleNGO).Return([]*domain.Responder{}, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleAuthority).Return([]*domain.Responder{}, nil).Times(1)
	// Record не ожидаем: пустой прогон не пишет ничего.

	result, err := svc.AutoAssign(context.Background(), complaint.ID)
	if err != nil {
		t.Fatalf("no-candidate run must not be an error, got: %v", err)
	}
	if result.Assigned {
		t.Fatalf("expected Assigned=false")
	}
	if result.Message != domain.NoCandidateMessage {
		t.Fatalf("expected message=%q, got=%q", domain.NoCandidateMessage, result.Message)
	}
	if result.Assignment != nil || result.AssignedTo != nil {
		t.Fatalf("empty result must carry no assignment: %+v", result)
	}
}

func TestAssignmentService_AutoAssign_ComplaintNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	id := uuid.New()
	m.complaints.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)

	_, err := svc.AutoAssign(context.Background(), id)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestAssignmentService_AutoAssign_RecordError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaint := testComplaint(domain.CategoryHealth, 23.8, 90.4)
	ngo := testResponder(domain.RoleNGO, locPtr(23.8, 90.4), []domain.Category{domain.CategoryHealth}, 10)

	m.complaints.EXPECT().Get(gomock.Any(), complaint.ID).Return(complaint, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleNGO).Return([]*domain.Responder{ngo}, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleAuthority).Return([]*domain.Responder{}, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), ngo.ID).Return(0, nil).Times(1)

	wantErr := errors.New("tx failed")
	m.assignments.EXPECT().Record(gomock.Any(), gomock.Any()).Return(wantErr).Times(1)

	_, err := svc.AutoAssign(context.Background(), complaint.ID)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// --- Reassign ---

func TestAssignmentService_Reassign_SupersedesThenSelects(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaint := testComplaint(domain.CategorySanitation, 23.8, 90.4)
	next := testResponder(domain.RoleNGO, locPtr(23.8, 90.4), []domain.Category{domain.CategorySanitation}, 10)

	// Get вызывается дважды: проверка в Reassign и заново в AutoAssign.
	m.complaints.EXPECT().Get(gomock.Any(), complaint.ID).Return(complaint, nil).Times(2)

	gomock.InOrder(
		m.assignments.EXPECT().MarkReassigned(gomock.Any(), complaint.ID).Return(int64(1), nil).Times(1),
		m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleNGO).Return([]*domain.Responder{next}, nil).Times(1),
	)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleAuthority).Return([]*domain.Responder{}, nil).Times(1)
	m.assignments.EXPECT().CountActive(gomock.Any(), next.ID).Return(0, nil).Times(1)

	var recorded *domain.Assignment
	m.assignments.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Assignment) error {
			recorded = a
			return nil
		}).
		Times(1)

	result, err := svc.Reassign(context.Background(), complaint.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !result.Assigned {
		t.Fatalf("expected new assignment, got message=%q", result.Message)
	}
	if recorded.Status != domain.AssignmentActive {
		t.Fatalf("new assignment must be active, got=%q", recorded.Status)
	}
	if recorded.AssignedTo != next.ID {
		t.Fatalf("unexpected assignee: %s", recorded.AssignedTo)
	}
}

func TestAssignmentService_Reassign_ComplaintNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	id := uuid.New()
	m.complaints.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)
	// MarkReassigned не ожидаем вообще.

	_, err := svc.Reassign(context.Background(), id)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestAssignmentService_Reassign_NoCandidateAfterSupersede(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaint := testComplaint(domain.CategoryOther, 23.8, 90.4)

	m.complaints.EXPECT().Get(gomock.Any(), complaint.ID).Return(complaint, nil).Times(2)
	m.assignments.EXPECT().MarkReassigned(gomock.Any(), complaint.ID).Return(int64(1), nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleNGO).Return([]*domain.Responder{}, nil).Times(1)
	m.responders.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleAuthority).Return([]*domain.Responder{}, nil).Times(1)

	result, err := svc.Reassign(context.Background(), complaint.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.Assigned {
		t.Fatalf("expected no assignment")
	}
	if result.Message != domain.NoCandidateMessage {
		t.Fatalf("expected message=%q, got=%q", domain.NoCandidateMessage, result.Message)
	}
}

// --- passthrough queries ---

func TestAssignmentService_GetByComplaint(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	complaintID := uuid.New()
	want := &domain.Assignment{ID: uuid.New(), ComplaintID: complaintID, Status: domain.AssignmentActive}
	m.assignments.EXPECT().GetActiveByComplaint(gomock.Any(), complaintID).Return(want, nil).Times(1)

	got, err := svc.GetByComplaint(context.Background(), complaintID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != want.ID {
		t.Fatalf("unexpected assignment: %+v", got)
	}
}

func TestAssignmentService_ListForResponder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEngine(ctrl)

	responderID := uuid.New()
	want := []*domain.Assignment{
		{ID: uuid.New(), AssignedTo: responderID, Status: domain.AssignmentActive},
		{ID: uuid.New(), AssignedTo: responderID, Status: domain.AssignmentActive},
	}
	m.assignments.EXPECT().ListActiveByResponder(gomock.Any(), responderID).Return(want, nil).Times(1)

	got, err := svc.ListForResponder(context.Background(), responderID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d assignments, got %d", len(want), len(got))
	}
}
