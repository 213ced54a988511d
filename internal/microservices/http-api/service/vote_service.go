package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"awardshub/internal/events"
	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

type VoteService interface {
	// Cast records the user's vote for nomineeID. changed is true when an
	// earlier vote in the same category was replaced.
	Cast(ctx context.Context, userID string, nomineeID int64) (vote *models.Vote, changed bool, err error)
	MyVotes(ctx context.Context, userID string) ([]models.Vote, error)
	Retract(ctx context.Context, userID string, categoryID int64) error
}

type voteService struct {
	votes    repository.VoteRepository
	nominees repository.NomineeRepository
	config   repository.VotingConfigRepository
	logger   *slog.Logger
	now      func() time.Time
	notifier
}

func NewVoteService(
	votes repository.VoteRepository,
	nominees repository.NomineeRepository,
	config repository.VotingConfigRepository,
	pub events.Publisher,
	logger *slog.Logger,
) VoteService {
	return &voteService{
		votes:    votes,
		nominees: nominees,
		config:   config,
		logger:   logger,
		now:      time.Now,
		notifier: notifier{pub: pub, logger: logger},
	}
}

func (s *voteService) openConfig(ctx context.Context) (*models.VotingConfig, error) {
	cfg, err := s.config.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.AcceptingVotes(s.now()) {
		return nil, ErrVotingClosed
	}
	return cfg, nil
}

func (s *voteService) Cast(ctx context.Context, userID string, nomineeID int64) (*models.Vote, bool, error) {
	cfg, err := s.openConfig(ctx)
	if err != nil {
		return nil, false, err
	}

	nominee, err := s.nominees.GetByID(ctx, nomineeID)
	if err != nil {
		return nil, false, notFoundAs(err, ErrNotFound)
	}
	if nominee.Category != nil && !nominee.Category.IsActive {
		return nil, false, ErrCategoryInactive
	}

	existing, err := s.votes.GetByUserAndCategory(ctx, userID, nominee.CategoryID)
	switch {
	case err == nil:
		return s.change(ctx, cfg, existing, nomineeID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, err
	}

	vote := &models.Vote{UserID: userID, NomineeID: nomineeID, CategoryID: nominee.CategoryID}
	if err := s.votes.Create(ctx, vote); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, false, err
		}
		// a concurrent request voted first; treat it like an existing vote
		existing, err := s.votes.GetByUserAndCategory(ctx, userID, nominee.CategoryID)
		if err != nil {
			return nil, false, err
		}
		return s.change(ctx, cfg, existing, nomineeID)
	}

	s.logger.Info("vote_cast", "user_id", userID, "category_id", vote.CategoryID, "nominee_id", nomineeID)
	s.emit(ctx, events.New(events.VoteCast, categoryKey(vote.CategoryID), userID, map[string]any{
		"nominee_id": nomineeID,
	}))
	return vote, false, nil
}

// change points an existing vote at nomineeID when the config allows it.
func (s *voteService) change(ctx context.Context, cfg *models.VotingConfig, existing *models.Vote, nomineeID int64) (*models.Vote, bool, error) {
	if existing.NomineeID == nomineeID {
		return existing, false, nil
	}
	if !cfg.AllowVoteChange {
		return nil, false, ErrAlreadyVoted
	}

	previous := existing.NomineeID
	existing.NomineeID = nomineeID
	if err := s.votes.Update(ctx, existing); err != nil {
		return nil, false, err
	}

	s.logger.Info("vote_changed", "user_id", existing.UserID, "category_id", existing.CategoryID,
		"from_nominee_id", previous, "nominee_id", nomineeID)
	s.emit(ctx, events.New(events.VoteCast, categoryKey(existing.CategoryID), existing.UserID, map[string]any{
		"nominee_id":          nomineeID,
		"previous_nominee_id": previous,
	}))
	return existing, true, nil
}

func (s *voteService) MyVotes(ctx context.Context, userID string) ([]models.Vote, error) {
	return s.votes.ListByUser(ctx, userID)
}

// Retract removes the user's vote in a category while voting is open and changes are allowed.
func (s *voteService) Retract(ctx context.Context, userID string, categoryID int64) error {
	cfg, err := s.openConfig(ctx)
	if err != nil {
		return err
	}
	if !cfg.AllowVoteChange {
		return ErrVoteLocked
	}

	if err := s.votes.DeleteByUserAndCategory(ctx, userID, categoryID); err != nil {
		return notFoundAs(err, ErrNotFound)
	}

	s.logger.Info("vote_retracted", "user_id", userID, "category_id", categoryID)
	s.emit(ctx, events.New(events.VoteRetracted, categoryKey(categoryID), userID, nil))
	return nil
}
