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

type Complaints struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewComplaints(pool *pgxpool.Pool, logger *slog.Logger) *Complaints {
	return &Complaints{pool: pool, logger: logger}
}

const complaintColumns = `
	id, user_id, title, description, category,
	latitude, longitude, address,
	status, priority,
	assigned_ngo, assigned_authority,
	resolution_notes, created_at, resolved_at
`

func (p *Complaints) Create(ctx context.Context, c *domain.Complaint) error {
	const op = "postgres.Complaints.Create"

	const query = `
		INSERT INTO complaints (
			id, user_id, title, description, category,
			latitude, longitude, address,
			status, priority, resolution_notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.Status == "" {
		c.Status = domain.ComplaintPending
	}
	if c.Priority == "" {
		c.Priority = domain.PriorityMedium
	}

	_, err := p.pool.Exec(ctx, query,
		c.ID,
		c.UserID,
		c.Title,
		c.Description,
		c.Category,
		c.Location.Latitude,
		c.Location.Longitude,
		c.Location.Address,
		c.Status,
		c.Priority,
		c.ResolutionNotes,
		c.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *Complaints) Get(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	const op = "postgres.Complaints.Get"

	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE id = $1`

	c, err := scanComplaint(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return c, nil
}

func (p *Complaints) List(ctx context.Context, page, limit int) ([]*domain.Complaint, int64, error) {
	const op = "postgres.Complaints.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM complaints`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	query := `SELECT ` + complaintColumns + `
		FROM complaints
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, query, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var complaints []*domain.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		complaints = append(complaints, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return complaints, total, nil
}

func (p *Complaints) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ComplaintStatus, notes string, resolvedAt *time.Time) error {
	const op = "postgres.Complaints.UpdateStatus"

	const query = `
		UPDATE complaints
		SET status           = $2,
			resolution_notes = CASE WHEN $3 <> '' THEN $3 ELSE resolution_notes END,
			resolved_at      = COALESCE($4, resolved_at)
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, status, notes, resolvedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func scanComplaint(row pgx.Row) (*domain.Complaint, error) {
	var c domain.Complaint
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Title,
		&c.Description,
		&c.Category,
		&c.Location.Latitude,
		&c.Location.Longitude,
		&c.Location.Address,
		&c.Status,
		&c.Priority,
		&c.AssignedNGO,
		&c.AssignedAuthority,
		&c.ResolutionNotes,
		&c.CreatedAt,
		&c.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
