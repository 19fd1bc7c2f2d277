package service

import (
	"context"

	"civicAid/internal/domain"
)

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context) (*domain.AssignmentStats, error) {
	return s.repo.AssignmentStats(ctx)
}
