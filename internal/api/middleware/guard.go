package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aijobhub/dashboard/internal/api/metrics"
	"github.com/aijobhub/dashboard/internal/core/ports"
	"github.com/aijobhub/dashboard/internal/core/service"
)

// IdentityKey is the echo context key holding the domain.Identity of the
// current session on guarded routes.
const IdentityKey = "identity"

// Guard protects a screen. It decides from a fresh session snapshot on every
// request: pending answers with a neutral placeholder, closed sends the user
// to loginPath, open passes a copy of the identity to the handler.
func Guard(sessions ports.SessionReader, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := sessions.Snapshot()
			gate := service.Decide(snap)
			metrics.GuardDecisionsTotal.WithLabelValues(gate.String()).Inc()

			switch gate {
			case service.GatePending:
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "verifying"})
			case service.GateClosed:
				if wantsJSON(c.Request()) {
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
				return c.Redirect(http.StatusSeeOther, loginPath)
			}

			c.Set(IdentityKey, *snap.Identity)
			return next(c)
		}
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
