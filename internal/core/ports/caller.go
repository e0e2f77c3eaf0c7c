package ports

import "github.com/corvo-marketing/agency-console/internal/core/domain"

// Caller identifies the signed-in user on every service call. It is built
// by the transport layer from the session token; services never consult
// ambient state for identity.
type Caller struct {
	UserID string
	Role   domain.Role
}
