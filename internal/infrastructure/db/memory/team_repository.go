package memory

import (
	"context"
	"sync"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
)

// TeamRepository holds the team roster in insertion order.
type TeamRepository struct {
	mu    sync.RWMutex
	teams []domain.Team
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{}
}

func cloneTeam(t domain.Team) domain.Team {
	t.MemberIDs = append([]string(nil), t.MemberIDs...)
	return t
}

func (r *TeamRepository) List(_ context.Context) ([]domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, cloneTeam(t))
	}
	return out, nil
}

func (r *TeamRepository) FindByID(_ context.Context, id string) (*domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.teams {
		if t.ID == id {
			clone := cloneTeam(t)
			return &clone, nil
		}
	}
	return nil, domain.ErrTeamNotFound
}

func (r *TeamRepository) Insert(_ context.Context, t *domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams = append(r.teams, cloneTeam(*t))
	return nil
}

func (r *TeamRepository) Replace(_ context.Context, t *domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.teams {
		if r.teams[i].ID == t.ID {
			r.teams[i] = cloneTeam(*t)
			return nil
		}
	}
	return domain.ErrTeamNotFound
}

func (r *TeamRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.teams {
		if r.teams[i].ID == id {
			r.teams = append(r.teams[:i], r.teams[i+1:]...)
			return nil
		}
	}
	return domain.ErrTeamNotFound
}
