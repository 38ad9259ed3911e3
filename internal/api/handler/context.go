package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aijobhub/dashboard/internal/api/middleware"
	"github.com/aijobhub/dashboard/internal/core/domain"
)

// currentIdentity extracts the identity injected by the Guard middleware.
// The guard has already decided the session is open, so an identity with no
// email is still valid. A missing value means the route was registered
// without the guard.
func currentIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}
