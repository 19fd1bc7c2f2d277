package postgres

import (
	"context"
	"log/slog"

	"civicAid/internal/domain"
	"civicAid/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Stats struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *Stats {
	return &Stats{pool: pool, logger: logger}
}

func (p *Stats) AssignmentStats(ctx context.Context) (*domain.AssignmentStats, error) {
	const op = "postgres.Stats.AssignmentStats"

	const query = `
		SELECT
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'reassigned'),
			COUNT(*) FILTER (WHERE status = 'active' AND assigned_role = 'ngo'),
			COUNT(*) FILTER (WHERE status = 'active' AND assigned_role = 'authority'),
			COALESCE(AVG(assignment_score), 0)
		FROM assignments
	`

	var s domain.AssignmentStats
	err := p.pool.QueryRow(ctx, query).Scan(
		&s.ActiveTotal,
		&s.CompletedTotal,
		&s.ReassignedTotal,
		&s.ActiveNGO,
		&s.ActiveAuthority,
		&s.AverageScore,
	)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &s, nil
}

// FindOrphanedComplaints returns complaints marked assigned that have no
// active assignment row. Can only happen via external writers; the sweep
// worker reports them.
func (p *Stats) FindOrphanedComplaints(ctx context.Context) ([]uuid.UUID, error) {
	const op = "postgres.Stats.FindOrphanedComplaints"

	const query = `
		SELECT c.id
		FROM complaints c
		WHERE c.status = 'assigned'
		  AND NOT EXISTS (
			SELECT 1 FROM assignments a
			WHERE a.complaint_id = c.id AND a.status = 'active'
		  )
	`

	return p.scanIDs(ctx, op, query)
}

// FindStaleActiveAssignments returns active assignments whose complaint has
// already left the assigned/in_progress states.
func (p *Stats) FindStaleActiveAssignments(ctx context.Context) ([]uuid.UUID, error) {
	const op = "postgres.Stats.FindStaleActiveAssignments"

	const query = `
		SELECT a.id
		FROM assignments a
		JOIN complaints c ON c.id = a.complaint_id
		WHERE a.status = 'active'
		  AND c.status NOT IN ('assigned', 'in_progress')
	`

	return p.scanIDs(ctx, op, query)
}

func (p *Stats) scanIDs(ctx context.Context, op, query string) ([]uuid.UUID, error) {
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0, 8)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return ids, nil
}
