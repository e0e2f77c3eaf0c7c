package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

// UserService manages the user roster. Mutations are admin-only; reads are
// open to any signed-in caller so references can be resolved to names.
type UserService struct {
	users  ports.UserRepository
	now    func() time.Time
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, now: time.Now, logger: logger}
}

func (s *UserService) List(ctx context.Context, _ ports.Caller) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, _ ports.Caller, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, caller ports.Caller, in ports.UserInput) (*domain.User, error) {
	if !CanViewAdminMetrics(caller) {
		return nil, domain.ErrForbidden
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Title:     in.Title,
		AvatarURL: in.AvatarURL,
		TeamID:    in.TeamID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user created")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, caller ports.Caller, id string, in ports.UserInput) (*domain.User, error) {
	if !CanViewAdminMetrics(caller) {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Role = in.Role
	user.Title = in.Title
	user.AvatarURL = in.AvatarURL
	user.TeamID = in.TeamID
	user.UpdatedAt = s.now().UTC()

	if err := s.users.Replace(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user. Client and task records referencing the id are
// left untouched; lookups render the dangling reference as unassigned.
func (s *UserService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if !CanViewAdminMetrics(caller) {
		return domain.ErrForbidden
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
