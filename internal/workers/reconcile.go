package workers

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"
)

type ConsistencyRepository interface {
	FindOrphanedComplaints(ctx context.Context) ([]uuid.UUID, error)
	FindStaleActiveAssignments(ctx context.Context) ([]uuid.UUID, error)
}

// Reconciler периодически ищет расхождения между жалобами и назначениями.
// Record writes both rows in one transaction, so drift should only come from
// writers outside this service; the sweep reports it instead of hiding it.
type Reconciler struct {
	repo     ConsistencyRepository
	logger   *slog.Logger
	interval time.Duration
}

func NewReconciler(repo ConsistencyRepository, logger *slog.Logger, interval time.Duration) *Reconciler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Reconciler{repo: repo, logger: logger, interval: interval}
}

func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reconciler STARTED", slog.Duration("interval", r.interval))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconciler STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reconciler) sweep(ctx context.Context) {
	orphaned, err := r.repo.FindOrphanedComplaints(ctx)
	if err != nil {
		r.logger.Error("orphaned complaints sweep failed", slog.Any("error", err))
	} else {
		for _, id := range orphaned {
			r.logger.Warn("complaint marked assigned without active assignment",
				slog.String("complaint_id", id.String()))
		}
	}

	stale, err := r.repo.FindStaleActiveAssignments(ctx)
	if err != nil {
		r.logger.Error("stale assignments sweep failed", slog.Any("error", err))
		return
	}
	for _, id := range stale {
		r.logger.Warn("active assignment on a closed complaint",
			slog.String("assignment_id", id.String()))
	}
}
