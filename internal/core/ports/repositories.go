package ports

import (
	"context"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
)

// The directory repositories hold the four in-memory collections. All
// implementations use copy-on-write semantics: values returned by reads are
// detached clones, and every mutation replaces the stored record wholesale.
// Identifiers are supplied by callers; no referential integrity is enforced.

// UserRepository stores the user roster.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail performs a case-sensitive exact match.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, u *domain.User) error
	Replace(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

// TeamRepository stores the team roster.
type TeamRepository interface {
	List(ctx context.Context) ([]domain.Team, error)
	FindByID(ctx context.Context, id string) (*domain.Team, error)
	Insert(ctx context.Context, t *domain.Team) error
	Replace(ctx context.Context, t *domain.Team) error
	Delete(ctx context.Context, id string) error
}

// ClientRepository stores client accounts. List preserves insertion order;
// reporting iterates it to build the commission breakdown.
type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	Insert(ctx context.Context, c *domain.Client) error
	Replace(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
}

// TaskRepository stores tasks.
type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	Insert(ctx context.Context, t *domain.Task) error
	Replace(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}
