package service

import (
	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

// The console has exactly two access rules, defined here and nowhere else:
// admins see everything; other users see the clients they are assigned to
// or manage, and only their own assignments.

// CanViewAdminMetrics reports whether the caller may open admin-only views
// (revenue, team performance, user and team administration).
func CanViewAdminMetrics(caller ports.Caller) bool {
	return caller.Role == domain.RoleAdmin
}

// CanViewClient reports whether the caller may open the given client.
func CanViewClient(caller ports.Caller, c *domain.Client) bool {
	if caller.Role == domain.RoleAdmin {
		return true
	}
	return c.ManagerID == caller.UserID || c.IsAssigned(caller.UserID)
}
