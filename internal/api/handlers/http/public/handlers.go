package public

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"civicAid/internal/domain"
	"civicAid/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Complaints interface {
	Create(ctx context.Context, req domain.CreateComplaintRequest) (*domain.Complaint, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateComplaintStatusRequest) error
}

type Assignments interface {
	GetByComplaint(ctx context.Context, complaintID uuid.UUID) (*domain.Assignment, error)
	ListForResponder(ctx context.Context, responderID uuid.UUID) ([]*domain.Assignment, error)
}

type Handler struct {
	logger      *slog.Logger
	Complaints  Complaints
	Assignments Assignments
}

func NewHandler(logger *slog.Logger, complaints Complaints, assignments Assignments) *Handler {
	return &Handler{
		logger:      logger,
		Complaints:  complaints,
		Assignments: assignments,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) ComplaintCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ComplaintCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("creating complaint",
		slog.String("category", string(req.Category)),
		slog.Float64("lat", req.Location.Latitude),
		slog.Float64("lng", req.Location.Longitude),
	)

	complaint, err := h.Complaints.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("complaint created",
		slog.String("id", complaint.ID.String()),
		slog.String("status", string(complaint.Status)),
	)
	writeJSON(w, http.StatusCreated, complaint)
}

func (h *Handler) ComplaintGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := parseID(w, r, l)
	if !ok {
		return
	}

	complaint, err := h.Complaints.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, complaint)
}

func (h *Handler) ComplaintStatusUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := parseID(w, r, l)
	if !ok {
		return
	}

	var req domain.UpdateComplaintStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Complaints.UpdateStatus(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AssignmentByComplaint(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := parseID(w, r, l)
	if !ok {
		return
	}

	assignment, err := h.Assignments.GetByComplaint(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, assignment)
}

func (h *Handler) ResponderAssignments(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := parseID(w, r, l)
	if !ok {
		return
	}

	assignments, err := h.Assignments.ListForResponder(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":       len(assignments),
		"assignments": assignments,
	})
}

func parseID(w http.ResponseWriter, r *http.Request, l *slog.Logger) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
