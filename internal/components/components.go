package components

import (
	"context"
	"fmt"
	"os"
	"time"

	"log/slog"

	"civicAid/internal/api"
	"civicAid/internal/config"
	"civicAid/internal/redis"
	"civicAid/internal/service"
	"civicAid/internal/storage/postgres"
	"civicAid/internal/workers"
	"civicAid/pkg/logger"
)

type Components struct {
	logger       *slog.Logger
	HttpServer   *api.Server
	Postgres     *postgres.Postgres
	Redis        *redis.Redis
	NotifyQ      *redis.NotificationQueue
	NotifySender *service.NotificationSender
	Reconciler   *workers.Reconciler
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	notifyQueue := redis.NewNotificationQueue(redisClient.Client, "notifications:queue")
	events := redis.NewEventPublisher(redisClient.Client, "events:broadcast")

	assignSvc := service.NewAssignmentService(storage.Complaints, storage.Responders, storage.Assignments, logger)
	complaintSvc := service.NewComplaintService(storage.Complaints, storage.Assignments, storage.Notifications, assignSvc, notifyQueue, events, logger)
	statsSvc := service.NewStatsService(storage.Stat)

	srv := service.NewService(assignSvc, complaintSvc, statsSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	return &Components{
		logger:       logger,
		HttpServer:   httpServer,
		Postgres:     storage,
		Redis:        redisClient,
		NotifyQ:      notifyQueue,
		NotifySender: service.NewNotificationSender(logger, cfg.Notify, notifyQueue),
		Reconciler:   workers.NewReconciler(storage.Stat, logger, cfg.Sweep.Interval),
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
