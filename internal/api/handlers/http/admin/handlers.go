package admin

import (
	"context"
	"net/http"
	"strconv"

	"log/slog"

	"civicAid/internal/domain"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Reassigner interface {
	Reassign(ctx context.Context, complaintID uuid.UUID) (domain.AssignResult, error)
}

type ComplaintLister interface {
	List(ctx context.Context, page, limit int) ([]*domain.Complaint, int64, error)
}

type StatsGetter interface {
	GetStats(ctx context.Context) (*domain.AssignmentStats, error)
}

type Handler struct {
	logger     *slog.Logger
	Reassigner Reassigner
	Complaints ComplaintLister
	Stats      StatsGetter
}

func NewHandler(logger *slog.Logger, reassigner Reassigner, complaints ComplaintLister, stats StatsGetter) *Handler {
	return &Handler{
		logger:     logger,
		Reassigner: reassigner,
		Complaints: complaints,
		Stats:      stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// AdminReassign supersedes the complaint's active assignment and runs
// selection again. A run with no candidate is a 200 with success=false so
// an operator can step in manually.
func (h *Handler) AdminReassign(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminReassign", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	result, err := h.Reassigner.Reassign(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	message := result.Message
	if result.Assigned {
		message = "complaint reassigned successfully"
	}

	l.Info("reassign finished",
		slog.String("complaint_id", id.String()),
		slog.Bool("assigned", result.Assigned),
	)

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": result.Assigned,
		"message": message,
		"data":    result.AssignedTo,
	})
}

func (h *Handler) AdminComplaintList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminComplaintList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	complaints, total, err := h.Complaints.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("complaints listed", slog.Int("count", len(complaints)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"complaints": complaints,
		"total":      total,
		"page":       page,
		"limit":      limit,
	})
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("remote", r.RemoteAddr))

	stats, err := h.Stats.GetStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
