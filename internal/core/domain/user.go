package domain

import "time"

// Role controls what a user can see and administer.
type Role string

const (
	// RoleAdmin has full visibility and manages users, teams, and clients.
	RoleAdmin Role = "ADMIN"
	// RoleUser is scoped to the clients and tasks assigned to them.
	RoleUser Role = "USER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User models a member of the agency.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Title     string    `json:"title,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	TeamID    string    `json:"team_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
