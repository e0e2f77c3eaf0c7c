package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

// AuthService implements the session stub. Login performs a case-sensitive
// exact match on the email field and issues a signed session token; there
// is no password, so anyone who knows a valid email can assume that
// identity. That is the documented product behavior, not an oversight.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, now: time.Now}
}

// WithClock replaces the wall clock used for token expiry.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// Login matches the email against the user directory. On no match it
// returns domain.ErrUnknownEmail and the session stays unauthenticated.
func (s *AuthService) Login(ctx context.Context, email string) (string, *domain.User, error) {
	if email == "" {
		return "", nil, domain.ErrUnknownEmail
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrUnknownEmail
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Me resolves the caller's own record.
func (s *AuthService) Me(ctx context.Context, caller ports.Caller) (*domain.User, error) {
	return s.users.FindByID(ctx, caller.UserID)
}

// UpdateProfile lets the signed-in user change their own name, email, and
// avatar. An empty avatar keeps the current one.
func (s *AuthService) UpdateProfile(ctx context.Context, caller ports.Caller, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	user.Name = in.Name
	user.Email = in.Email
	if in.AvatarURL != "" {
		user.AvatarURL = in.AvatarURL
	}
	user.UpdatedAt = s.now().UTC()

	if err := s.users.Replace(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": string(user.Role),
		"exp":  s.now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
