package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionReader
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionReader) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

type registerRequest struct {
	FullName        string `json:"full_name" form:"full_name" validate:"required"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type loginResponse struct {
	Identity *domain.Identity `json:"identity"`
	Next     string           `json:"next"`
}

type screenResponse struct {
	Screen        string `json:"screen"`
	Authenticated bool   `json:"authenticated"`
	Links         []Link `json:"links"`
}

// LoginScreen describes the login form. Public screens never wait for the
// startup verification.
//
// @Summary      Login screen
// @Tags         auth
// @Produce      json
// @Success      200  {object}  screenResponse
// @Router       /login [get]
func (h *AuthHandler) LoginScreen(c echo.Context) error {
	return h.screen(c, "login")
}

// RegisterScreen describes the registration form.
//
// @Summary      Registration screen
// @Tags         auth
// @Produce      json
// @Success      200  {object}  screenResponse
// @Router       /register [get]
func (h *AuthHandler) RegisterScreen(c echo.Context) error {
	return h.screen(c, "register")
}

func (h *AuthHandler) screen(c echo.Context, name string) error {
	authenticated := h.sessions.Snapshot().IsAuthenticated()
	return c.JSON(http.StatusOK, screenResponse{
		Screen:        name,
		Authenticated: authenticated,
		Links:         navigation(authenticated),
	})
}

// Login authenticates against the remote API and opens the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Failure      504   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	identity, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Identity: identity, Next: "/home"})
}

// Register creates an account on the remote API.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration form"
// @Success      201   {object}  successView
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.authService.Register(c.Request().Context(), ports.Registration{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, successView{
		Title:   "Registration Successful!",
		Message: "You can now login with your credentials",
		Next:    "/login",
	})
}

// Logout ends the session. It always succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.authService.Logout(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]string{"next": "/login"})
}
