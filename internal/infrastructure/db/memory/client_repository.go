package memory

import (
	"context"
	"sync"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
)

// ClientRepository holds client accounts in insertion order.
type ClientRepository struct {
	mu      sync.RWMutex
	clients []domain.Client
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

func cloneClient(c domain.Client) domain.Client {
	c.AssignedUserIDs = append([]string(nil), c.AssignedUserIDs...)
	c.Commissions = append([]domain.Commission(nil), c.Commissions...)
	c.Files = append([]domain.ClientFile(nil), c.Files...)
	return c
}

func (r *ClientRepository) List(_ context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, cloneClient(c))
	}
	return out, nil
}

func (r *ClientRepository) FindByID(_ context.Context, id string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		if c.ID == id {
			clone := cloneClient(c)
			return &clone, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *ClientRepository) Insert(_ context.Context, c *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = append(r.clients, cloneClient(*c))
	return nil
}

func (r *ClientRepository) Replace(_ context.Context, c *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clients {
		if r.clients[i].ID == c.ID {
			r.clients[i] = cloneClient(*c)
			return nil
		}
	}
	return domain.ErrClientNotFound
}

func (r *ClientRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clients {
		if r.clients[i].ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return domain.ErrClientNotFound
}
