package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

// TeamService manages the team roster. Mutations are admin-only.
type TeamService struct {
	teams  ports.TeamRepository
	logger zerolog.Logger
}

func NewTeamService(teams ports.TeamRepository, logger zerolog.Logger) *TeamService {
	return &TeamService{teams: teams, logger: logger}
}

func (s *TeamService) List(ctx context.Context, _ ports.Caller) ([]domain.Team, error) {
	return s.teams.List(ctx)
}

func (s *TeamService) Get(ctx context.Context, _ ports.Caller, id string) (*domain.Team, error) {
	return s.teams.FindByID(ctx, id)
}

func (s *TeamService) Create(ctx context.Context, caller ports.Caller, in ports.TeamInput) (*domain.Team, error) {
	if !CanViewAdminMetrics(caller) {
		return nil, domain.ErrForbidden
	}

	team := &domain.Team{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: sanitizeUGC(in.Description),
		PhotoURL:    in.PhotoURL,
		MemberIDs:   append([]string(nil), in.MemberIDs...),
	}
	if err := s.teams.Insert(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Info().Str("team_id", team.ID).Str("name", team.Name).Msg("team created")
	return team, nil
}

func (s *TeamService) Update(ctx context.Context, caller ports.Caller, id string, in ports.TeamInput) (*domain.Team, error) {
	if !CanViewAdminMetrics(caller) {
		return nil, domain.ErrForbidden
	}

	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team.Name = in.Name
	team.Description = sanitizeUGC(in.Description)
	team.PhotoURL = in.PhotoURL
	team.MemberIDs = append([]string(nil), in.MemberIDs...)

	if err := s.teams.Replace(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// Delete removes the team; clients and users keep any dangling team id.
func (s *TeamService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if !CanViewAdminMetrics(caller) {
		return domain.ErrForbidden
	}
	if err := s.teams.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("team_id", id).Msg("team deleted")
	return nil
}
