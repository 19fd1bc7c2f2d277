package postgres

import (
	"context"
	"log/slog"
	"time"

	"civicAid/internal/domain"
	"civicAid/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Notifications struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotifications(pool *pgxpool.Pool, logger *slog.Logger) *Notifications {
	return &Notifications{pool: pool, logger: logger}
}

func (p *Notifications) Create(ctx context.Context, n *domain.Notification) error {
	const op = "postgres.Notifications.Create"

	const query = `
		INSERT INTO notifications (id, user_id, title, message, type, related_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		n.ID,
		n.UserID,
		n.Title,
		n.Message,
		n.Type,
		n.RelatedID,
		n.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("user_id", n.UserID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}
