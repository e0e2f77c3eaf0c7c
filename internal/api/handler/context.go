package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

// ctxCaller extracts the identity injected by the Auth middleware and
// fast-fails before any service call: both the user id and a known role
// must be present, proving the middleware ran on this route.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	userID, _ := c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)
	role := domain.Role(roleStr)

	if userID == "" || !role.Valid() {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Caller{UserID: userID, Role: role}, nil
}
