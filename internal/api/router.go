package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/api/handler"
	"github.com/aijobhub/dashboard/internal/api/middleware"
	"github.com/aijobhub/dashboard/internal/core/ports"
	"github.com/aijobhub/dashboard/internal/infrastructure/http/handlers"
)

// Deps are the services the router exposes.
type Deps struct {
	Log          zerolog.Logger
	Sessions     ports.SessionReader
	Auth         ports.AuthService
	Jobs         ports.JobService
	Stats        ports.StatsService
	Eligibility  ports.EligibilityService
	Applications ports.ApplicationService
	// Readiness lists the dependencies /health/ready pings, by name.
	Readiness map[string]handlers.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echomiddleware.BodyLimit("25M"))
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	authHandler := handler.NewAuthHandler(deps.Auth, deps.Sessions)
	sessionHandler := handler.NewSessionHandler(deps.Sessions)
	jobHandler := handler.NewJobHandler(deps.Jobs)
	statsHandler := handler.NewStatsHandler(deps.Stats, deps.Jobs)
	eligibilityHandler := handler.NewEligibilityHandler(deps.Eligibility)
	applicationHandler := handler.NewApplicationHandler(deps.Applications)

	// --- Public screens ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/login")
	})
	e.GET("/login", authHandler.LoginScreen)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterScreen)
	e.POST("/register", authHandler.Register)
	e.POST("/logout", authHandler.Logout)
	e.GET("/session", sessionHandler.Session)

	// --- Protected screens ---
	guard := middleware.Guard(deps.Sessions, "/login")

	e.GET("/home", jobHandler.Home, guard)
	e.POST("/home/search", jobHandler.Search, guard)
	e.GET("/jobs", jobHandler.Listings, guard)
	e.GET("/trends", statsHandler.Trends, guard)
	e.GET("/stats", statsHandler.Breakdown, guard)
	e.GET("/eligibility", eligibilityHandler.Screen, guard)
	e.POST("/eligibility", eligibilityHandler.Check, guard)
	e.GET("/apply", applicationHandler.List, guard)
	e.POST("/apply", applicationHandler.Apply, guard)
	e.GET("/profile", sessionHandler.Profile, guard)

	// --- Health probes and metrics (no guard) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
