package service

import (
	"context"
	"log/slog"
	"time"

	"awardshub/internal/cache"
	"awardshub/internal/events"
	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/repository"
)

type VotingConfigPatch struct {
	IsOpen          *bool
	StartsAt        *time.Time
	EndsAt          *time.Time
	ClearWindow     bool
	AllowVoteChange *bool
	ShowResults     *bool
}

// PublicVotingConfig is the voting state shown to anonymous visitors.
type PublicVotingConfig struct {
	models.VotingConfig
	AcceptingVotes bool `json:"accepting_votes"`
}

type VotingConfigService interface {
	Get(ctx context.Context) (*models.VotingConfig, error)
	Public(ctx context.Context) (*PublicVotingConfig, error)
	Update(ctx context.Context, patch VotingConfigPatch, actorID string) (*models.VotingConfig, error)
}

type votingConfigService struct {
	repo   repository.VotingConfigRepository
	cache  cache.Cache
	logger *slog.Logger
	now    func() time.Time
	notifier
}

func NewVotingConfigService(repo repository.VotingConfigRepository, c cache.Cache, pub events.Publisher, logger *slog.Logger) VotingConfigService {
	return &votingConfigService{
		repo:     repo,
		cache:    c,
		logger:   logger,
		now:      time.Now,
		notifier: notifier{pub: pub, logger: logger},
	}
}

// Get returns the singleton row, creating it with defaults when missing.
func (s *votingConfigService) Get(ctx context.Context) (*models.VotingConfig, error) {
	return s.repo.Ensure(ctx)
}

func (s *votingConfigService) Public(ctx context.Context) (*PublicVotingConfig, error) {
	var cfg models.VotingConfig
	hit, err := s.cache.GetJSON(ctx, cache.VotingConfigKey, &cfg)
	if err != nil {
		s.logger.Warn("voting_config_cache_get_failed", "error", err)
	}
	if !hit {
		stored, err := s.repo.Ensure(ctx)
		if err != nil {
			return nil, err
		}
		cfg = *stored
		if err := s.cache.SetJSON(ctx, cache.VotingConfigKey, cfg); err != nil {
			s.logger.Warn("voting_config_cache_set_failed", "error", err)
		}
	}
	return &PublicVotingConfig{VotingConfig: cfg, AcceptingVotes: cfg.AcceptingVotes(s.now())}, nil
}

func (s *votingConfigService) Update(ctx context.Context, patch VotingConfigPatch, actorID string) (*models.VotingConfig, error) {
	cfg, err := s.repo.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	if patch.IsOpen != nil {
		cfg.IsOpen = *patch.IsOpen
	}
	if patch.ClearWindow {
		cfg.StartsAt, cfg.EndsAt = nil, nil
	}
	if patch.StartsAt != nil {
		cfg.StartsAt = patch.StartsAt
	}
	if patch.EndsAt != nil {
		cfg.EndsAt = patch.EndsAt
	}
	if patch.AllowVoteChange != nil {
		cfg.AllowVoteChange = *patch.AllowVoteChange
	}
	if patch.ShowResults != nil {
		cfg.ShowResults = *patch.ShowResults
	}
	if err := validateWindow(cfg.StartsAt, cfg.EndsAt); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, cfg); err != nil {
		return nil, err
	}
	if err := s.cache.Delete(ctx, cache.VotingConfigKey); err != nil {
		s.logger.Warn("voting_config_cache_invalidate_failed", "error", err)
	}

	s.logger.Info("voting_config_updated", "actor_id", actorID, "is_open", cfg.IsOpen,
		"allow_vote_change", cfg.AllowVoteChange, "show_results", cfg.ShowResults)
	s.emit(ctx, events.New(events.VotingConfigured, "voting:config", actorID, map[string]any{
		"is_open":      cfg.IsOpen,
		"show_results": cfg.ShowResults,
	}))
	return cfg, nil
}
