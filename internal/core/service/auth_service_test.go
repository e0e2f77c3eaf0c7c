package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
	"github.com/corvo-marketing/agency-console/internal/infrastructure/db/memory"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) (*AuthService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	users := []domain.User{
		{ID: "u1", Name: "Ana", Email: "ana@agency.test", Role: domain.RoleUser},
		{ID: "u2", Name: "Boss", Email: "boss@agency.test", Role: domain.RoleAdmin},
	}
	for i := range users {
		if err := store.Users.Insert(ctx, &users[i]); err != nil {
			t.Fatalf("insert user: %v", err)
		}
	}
	return NewAuthService(store.Users, testSecret, time.Hour), store
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newAuthFixture(t)

	token, user, err := svc.Login(context.Background(), "ana@agency.test")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "u1" || user.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["sub"] != "u1" || claims["name"] != "Ana" || claims["role"] != "USER" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("token has no expiry")
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "nobody@agency.test")
	if !errors.Is(err, domain.ErrUnknownEmail) {
		t.Fatalf("expected ErrUnknownEmail, got %v", err)
	}
}

func TestAuthService_Login_CaseSensitive(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "ANA@agency.test")
	if !errors.Is(err, domain.ErrUnknownEmail) {
		t.Fatalf("email match must be case-sensitive, got %v", err)
	}
}

func TestAuthService_Login_EmptyEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "")
	if !errors.Is(err, domain.ErrUnknownEmail) {
		t.Fatalf("expected ErrUnknownEmail, got %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	svc, _ := newAuthFixture(t)

	user, err := svc.Me(context.Background(), ports.Caller{UserID: "u2", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if user.Email != "boss@agency.test" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, store := newAuthFixture(t)
	ctx := context.Background()
	caller := ports.Caller{UserID: "u1", Role: domain.RoleUser}

	// Empty avatar keeps the current one.
	seedAvatar := "https://img.test/ana.png"
	u, _ := store.Users.FindByID(ctx, "u1")
	u.AvatarURL = seedAvatar
	if err := store.Users.Replace(ctx, u); err != nil {
		t.Fatalf("seed avatar: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, caller, ports.UpdateProfileInput{
		Name:  "Ana Maria",
		Email: "ana.maria@agency.test",
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Name != "Ana Maria" || updated.Email != "ana.maria@agency.test" {
		t.Fatalf("profile not updated: %+v", updated)
	}
	if updated.AvatarURL != seedAvatar {
		t.Fatalf("avatar should be kept when omitted, got %q", updated.AvatarURL)
	}

	// The old email no longer signs in; the new one does.
	if _, _, err := svc.Login(ctx, "ana@agency.test"); !errors.Is(err, domain.ErrUnknownEmail) {
		t.Fatalf("old email must stop working, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "ana.maria@agency.test"); err != nil {
		t.Fatalf("new email must sign in: %v", err)
	}
}

func TestCanViewAdminMetrics(t *testing.T) {
	if !CanViewAdminMetrics(ports.Caller{UserID: "u", Role: domain.RoleAdmin}) {
		t.Fatalf("admin must pass")
	}
	if CanViewAdminMetrics(ports.Caller{UserID: "u", Role: domain.RoleUser}) {
		t.Fatalf("non-admin must not pass")
	}
}

func TestCanViewClient(t *testing.T) {
	client := &domain.Client{
		ID:              "c1",
		ManagerID:       "mgr",
		AssignedUserIDs: []string{"u1"},
	}

	tests := []struct {
		name   string
		caller ports.Caller
		want   bool
	}{
		{"admin", ports.Caller{UserID: "x", Role: domain.RoleAdmin}, true},
		{"manager", ports.Caller{UserID: "mgr", Role: domain.RoleUser}, true},
		{"assignee", ports.Caller{UserID: "u1", Role: domain.RoleUser}, true},
		{"outsider", ports.Caller{UserID: "u9", Role: domain.RoleUser}, false},
	}
	for _, tc := range tests {
		if got := CanViewClient(tc.caller, client); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
