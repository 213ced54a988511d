package service

import (
	"context"
	"log/slog"

	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/repository"
)

type StatsService interface {
	Dashboard(ctx context.Context) models.DashboardStats
}

type statsService struct {
	repo   repository.StatsRepository
	logger *slog.Logger
}

func NewStatsService(repo repository.StatsRepository, logger *slog.Logger) StatsService {
	return &statsService{repo: repo, logger: logger}
}

// Dashboard counts each table independently. A failed count reads as zero.
func (s *statsService) Dashboard(ctx context.Context) models.DashboardStats {
	count := func(name string, model any) int64 {
		n, err := s.repo.Count(ctx, model)
		if err != nil {
			s.logger.Warn("dashboard_count_failed", "table", name, "error", err)
			return 0
		}
		return n
	}

	return models.DashboardStats{
		Categories:     count("categories", &models.Category{}),
		Nominees:       count("nominees", &models.Nominee{}),
		Votes:          count("votes", &models.Vote{}),
		Users:          count("users", &models.User{}),
		Events:         count("events", &models.Event{}),
		AcademyMembers: count("academy_members", &models.AcademyMember{}),
	}
}
