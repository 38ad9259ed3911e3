package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

type SessionHandler struct {
	sessions ports.SessionReader
}

func NewSessionHandler(sessions ports.SessionReader) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type sessionResponse struct {
	Phase         string           `json:"phase"`
	Authenticated bool             `json:"authenticated"`
	Verified      bool             `json:"verified"`
	Identity      *domain.Identity `json:"identity,omitempty"`
	Links         []Link           `json:"links"`
}

// Session reports the current session snapshot together with the navbar
// links for it. It is public and answers immediately, even while verifying.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *SessionHandler) Session(c echo.Context) error {
	snap := h.sessions.Snapshot()
	return c.JSON(http.StatusOK, sessionResponse{
		Phase:         snap.Phase.String(),
		Authenticated: snap.IsAuthenticated(),
		Verified:      snap.Verified,
		Identity:      snap.Identity,
		Links:         navigation(snap.IsAuthenticated()),
	})
}

// Profile returns the signed-in identity.
func (h *SessionHandler) Profile(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}
