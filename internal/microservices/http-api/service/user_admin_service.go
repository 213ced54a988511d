package service

import (
	"context"
	"log/slog"
	"strings"

	"awardshub/internal/events"
	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/repository"
)

const maxPageSize = 100

type UserAdminService interface {
	List(ctx context.Context, page, pageSize int) ([]models.User, int64, error)
	SetRole(ctx context.Context, actorID, userID, role string) (*models.User, error)
	PromoteByEmail(ctx context.Context, email string) (*models.User, error)
}

type userAdminService struct {
	users  repository.UserRepository
	logger *slog.Logger
	notifier
}

func NewUserAdminService(users repository.UserRepository, pub events.Publisher, logger *slog.Logger) UserAdminService {
	return &userAdminService{users: users, logger: logger, notifier: notifier{pub: pub, logger: logger}}
}

func (s *userAdminService) List(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = 20
	}
	return s.users.List(ctx, pageSize, (page-1)*pageSize)
}

// SetRole changes a user's role. An admin cannot demote themselves, so at least
// the acting admin always keeps access.
func (s *userAdminService) SetRole(ctx context.Context, actorID, userID, role string) (*models.User, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !models.ValidRole(role) {
		return nil, invalid("role must be %q or %q", models.RoleUser, models.RoleAdmin)
	}
	if actorID == userID && role != models.RoleAdmin {
		return nil, ErrSelfDemotion
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	if user.Role == role {
		return user, nil
	}

	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	previous := user.Role
	user.Role = role

	s.logger.Info("user_role_changed", "actor_id", actorID, "user_id", userID, "from", previous, "to", role)
	s.emit(ctx, events.New(events.RoleChanged, "user:"+userID, actorID, map[string]any{
		"from": previous,
		"to":   role,
	}))
	return user, nil
}

// PromoteByEmail grants the admin role to the user registered with email.
func (s *userAdminService) PromoteByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	return s.SetRole(ctx, "", user.ID, models.RoleAdmin)
}
