package ports

import (
	"context"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
)

// UpdateProfileInput carries the fields a signed-in user may change on
// their own record. An empty AvatarURL keeps the current avatar.
type UpdateProfileInput struct {
	Name      string
	Email     string
	AvatarURL string
}

// AuthService implements the session stub: login is an exact email lookup
// with no credential check, and the returned token is a session handle,
// not a security boundary.
type AuthService interface {
	Login(ctx context.Context, email string) (string, *domain.User, error)
	Me(ctx context.Context, caller Caller) (*domain.User, error)
	UpdateProfile(ctx context.Context, caller Caller, in UpdateProfileInput) (*domain.User, error)
}
