package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/api"
	"github.com/aijobhub/dashboard/internal/api/metrics"
	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/filter"
	"github.com/aijobhub/dashboard/internal/core/ports"
	"github.com/aijobhub/dashboard/internal/core/service"
	mongostore "github.com/aijobhub/dashboard/internal/infrastructure/db/mongo"
	redisstore "github.com/aijobhub/dashboard/internal/infrastructure/db/redis"
	"github.com/aijobhub/dashboard/internal/infrastructure/gateway"
	"github.com/aijobhub/dashboard/internal/infrastructure/http/handlers"
	"github.com/aijobhub/dashboard/internal/infrastructure/memory"
	"github.com/aijobhub/dashboard/internal/pkg/config"
	"github.com/aijobhub/dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "dashboard",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("dashboard stopped")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()
	readiness := map[string]handlers.Pinger{}

	// --- Credential store: redis when configured, memory otherwise ---
	var creds ports.CredentialStore = memory.NewCredentialStore()
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		creds = redisstore.NewCredentialStore(rdb, cfg.API.SessionCookie)
		readiness["redis"] = redisstore.Pinger{Client: rdb}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("credential store: redis")
	}

	// --- Application repository: mongo when configured, memory otherwise ---
	var apps ports.ApplicationRepository = memory.NewApplicationRepository()
	if cfg.Mongo.URI != "" {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(dctx)
		}()
		repo := mongostore.NewApplicationRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
		apps = repo
		readiness["mongo"] = mongostore.Pinger{DB: db}
		log.Info().Str("database", cfg.Mongo.Database).Msg("application store: mongo")
	}

	// --- Remote API gateway ---
	gw, err := gateway.New(gateway.Config{
		BaseURL:       cfg.API.BaseURL,
		Timeout:       cfg.API.Timeout,
		SessionCookie: cfg.API.SessionCookie,
	}, creds, log)
	if err != nil {
		return err
	}
	if err := gw.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("stored credential not restored")
	}
	readiness["api"] = gw

	// --- Session and services ---
	identity := service.NewIdentityClient(gw, gw, cfg.API.VerifyPath)
	sessions := service.NewSessionStore(identity, log)

	jobs := service.NewJobService(gw, service.JobPaths{
		Search: cfg.API.JobSearchPath,
		List:   cfg.API.JobListPath,
	}, filter.NewEngine(), log)

	deps := api.Deps{
		Log:      log,
		Sessions: sessions,
		Auth: service.NewAuthService(gw, identity, sessions, gw, service.AuthPaths{
			Login:    cfg.API.LoginPath,
			Logout:   cfg.API.LogoutPath,
			Register: cfg.API.RegisterPath,
		}, cfg.API.RegisterTimeout, log),
		Jobs:         jobs,
		Stats:        service.NewStatsService(gw, cfg.API.StatsPath, log),
		Eligibility:  service.NewEligibilityService(gw, cfg.API.EligibilityPath, log),
		Applications: service.NewApplicationService(apps, jobs, log),
		Readiness:    readiness,
	}

	go watchSession(ctx, sessions.Subscribe(), log)
	go func() {
		if err := sessions.Verify(ctx); err != nil {
			log.Info().Err(err).Msg("startup verification found no session")
		}
	}()

	e := api.NewRouter(deps)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("dashboard listening")
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}

// watchSession mirrors session transitions into metrics and the log.
func watchSession(ctx context.Context, updates <-chan domain.Session, log zerolog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-updates:
			metrics.SessionTransitionsTotal.WithLabelValues(snap.Phase.String()).Inc()
			if snap.IsAuthenticated() {
				metrics.SessionAuthenticated.Set(1)
			} else {
				metrics.SessionAuthenticated.Set(0)
			}
			ev := log.Info().Str("phase", snap.Phase.String()).Bool("verified", snap.Verified)
			if snap.Identity != nil {
				ev = ev.Str("email", snap.Identity.Email)
			}
			ev.Msg("session changed")
		}
	}
}
