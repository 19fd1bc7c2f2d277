package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"civicAid/internal/domain"
	"civicAid/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Assignments struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAssignments(pool *pgxpool.Pool, logger *slog.Logger) *Assignments {
	return &Assignments{pool: pool, logger: logger}
}

const assignmentColumns = `
	id, complaint_id, assigned_to, assigned_role,
	assignment_score, category_match, distance_km, workload_at_assignment,
	status, assigned_at, completed_at
`

// Record writes the assignment and flips the complaint to assigned in one
// transaction, so a failed complaint update never leaves an orphaned
// assignment row behind.
func (p *Assignments) Record(ctx context.Context, a *domain.Assignment) error {
	const op = "postgres.Assignments.Record"

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now().UTC()
	}
	if a.Status == "" {
		a.Status = domain.AssignmentActive
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	const insertQuery = `
		INSERT INTO assignments (
			id, complaint_id, assigned_to, assigned_role,
			assignment_score, category_match, distance_km, workload_at_assignment,
			status, assigned_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.Exec(ctx, insertQuery,
		a.ID,
		a.ComplaintID,
		a.AssignedTo,
		a.AssignedRole,
		a.Score,
		a.CategoryMatch,
		a.DistanceKM,
		a.WorkloadAtAssignment,
		a.Status,
		a.AssignedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	slot := "assigned_ngo"
	if a.AssignedRole == domain.RoleAuthority {
		slot = "assigned_authority"
	}
	updateQuery := fmt.Sprintf(`
		UPDATE complaints
		SET status = $2, %s = $3
		WHERE id = $1
	`, slot)

	cmd, err := tx.Exec(ctx, updateQuery, a.ComplaintID, domain.ComplaintAssigned, a.AssignedTo)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// CountActive is a live read; workload is derived state and must never be
// served from a cache.
func (p *Assignments) CountActive(ctx context.Context, responderID uuid.UUID) (int, error) {
	const op = "postgres.Assignments.CountActive"

	const query = `
		SELECT COUNT(*) FROM assignments
		WHERE assigned_to = $1 AND status = 'active'
	`

	var count int
	if err := p.pool.QueryRow(ctx, query, responderID).Scan(&count); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return count, nil
}

func (p *Assignments) MarkReassigned(ctx context.Context, complaintID uuid.UUID) (int64, error) {
	const op = "postgres.Assignments.MarkReassigned"

	const query = `
		UPDATE assignments
		SET status = 'reassigned'
		WHERE complaint_id = $1 AND status = 'active'
	`

	cmd, err := p.pool.Exec(ctx, query, complaintID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cmd.RowsAffected(), nil
}

func (p *Assignments) GetActiveByComplaint(ctx context.Context, complaintID uuid.UUID) (*domain.Assignment, error) {
	const op = "postgres.Assignments.GetActiveByComplaint"

	query := `SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE complaint_id = $1 AND status = 'active'
	`

	a, err := scanAssignment(p.pool.QueryRow(ctx, query, complaintID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return a, nil
}

func (p *Assignments) ListActiveByResponder(ctx context.Context, responderID uuid.UUID) ([]*domain.Assignment, error) {
	const op = "postgres.Assignments.ListActiveByResponder"

	query := `SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE assigned_to = $1 AND status = 'active'
		ORDER BY assigned_at DESC
	`

	rows, err := p.pool.Query(ctx, query, responderID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var assignments []*domain.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return assignments, nil
}

// CompleteActive закрывает активное назначение жалобы. Used by the status
// workflow when a complaint resolves.
func (p *Assignments) CompleteActive(ctx context.Context, complaintID uuid.UUID, completedAt time.Time) error {
	const op = "postgres.Assignments.CompleteActive"

	const query = `
		UPDATE assignments
		SET status = 'completed', completed_at = $2
		WHERE complaint_id = $1 AND status = 'active'
	`

	if _, err := p.pool.Exec(ctx, query, complaintID, completedAt); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var a domain.Assignment
	err := row.Scan(
		&a.ID,
		&a.ComplaintID,
		&a.AssignedTo,
		&a.AssignedRole,
		&a.Score,
		&a.CategoryMatch,
		&a.DistanceKM,
		&a.WorkloadAtAssignment,
		&a.Status,
		&a.AssignedAt,
		&a.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
