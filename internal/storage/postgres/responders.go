package postgres

import (
	"context"
	"log/slog"

	"civicAid/internal/domain"
	"civicAid/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Responders struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewResponders(pool *pgxpool.Pool, logger *slog.Logger) *Responders {
	return &Responders{pool: pool, logger: logger}
}

// ListActiveByRole returns active responders of one role, oldest accounts
// first. Enumeration order is the selection tie-break, so it has to be
// deterministic.
func (p *Responders) ListActiveByRole(ctx context.Context, role domain.Role) ([]*domain.Responder, error) {
	const op = "postgres.Responders.ListActiveByRole"

	const query = `
		SELECT id, name, email, phone, role,
			   latitude, longitude, address,
			   categories, capacity, is_active
		FROM responders
		WHERE role = $1 AND is_active
		ORDER BY created_at, id
	`

	rows, err := p.pool.Query(ctx, query, role)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var responders []*domain.Responder
	for rows.Next() {
		var (
			r          domain.Responder
			lat, lng   *float64
			address    *string
			categories []string
		)
		if err := rows.Scan(
			&r.ID,
			&r.Name,
			&r.Email,
			&r.Phone,
			&r.Role,
			&lat,
			&lng,
			&address,
			&categories,
			&r.Profile.Capacity,
			&r.IsActive,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}

		if lat != nil && lng != nil {
			loc := domain.Location{Latitude: *lat, Longitude: *lng}
			if address != nil {
				loc.Address = *address
			}
			r.Location = &loc
		}
		for _, c := range categories {
			r.Profile.Categories = append(r.Profile.Categories, domain.Category(c))
		}

		responders = append(responders, &r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return responders, nil
}
