package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"hackathon-portal/internal/app/rest"
	"hackathon-portal/internal/auth"
	"hackathon-portal/internal/config"
	v1 "hackathon-portal/internal/http/v1"
	"hackathon-portal/internal/http/v1/middleware"
	"hackathon-portal/internal/lib/migrator"
	"hackathon-portal/internal/repo"
	"hackathon-portal/internal/service"
	"hackathon-portal/internal/storage/postgresql"
	"hackathon-portal/internal/storage/redisdb"
)

type App struct {
	log     *slog.Logger
	storage *postgresql.Storage
	rdb     *redis.Client
	restApp *rest.App
}

func MustNew(log *slog.Logger) *App {
	cfg := config.MustLoad()

	if err := migrator.RunMigrations(cfg.Postgres, log); err != nil {
		log.Error("failed to run migrations", "error", err)
		panic(err)
	}

	storage := postgresql.Init(cfg.Postgres)
	rdb := redisdb.Init(cfg.Redis)

	userRepo := repo.NewUserRepo(storage.GetDB())
	teamRepo := repo.NewTeamRepo(storage.GetDB())
	submissionRepo := repo.NewSubmissionRepo(storage.GetDB())
	reviewRepo := repo.NewReviewRepo(storage.GetDB())
	timelineRepo := repo.NewTimelineRepo(storage.GetDB())
	blacklist := repo.NewTokenBlacklist(rdb)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(log, userRepo, tokens, blacklist, cfg.Auth.OperatorWhitelist)
	dashboardService := service.NewDashboardService(log, userRepo, teamRepo, submissionRepo, timelineRepo)
	submissionService := service.NewSubmissionService(log, userRepo, teamRepo, submissionRepo, timelineRepo)
	adminService := service.NewAdminService(log, userRepo, teamRepo, submissionRepo, reviewRepo, cfg.Judging.MaxScore)
	timelineService := service.NewTimelineService(log, timelineRepo)

	routerDependencies := v1.RouterDependencies{
		AuthService:       authService,
		DashboardService:  dashboardService,
		SubmissionService: submissionService,
		AdminService:      adminService,
		TimelineService:   timelineService,
		Auth:              middleware.NewAuth(tokens, blacklist, log),
	}

	restApp := rest.New(
		log,
		&routerDependencies,
		cfg.Server.Port,
	)

	return &App{
		log:     log,
		storage: storage,
		rdb:     rdb,
		restApp: restApp,
	}
}

func (a *App) MustRun() {
	const op = "app.MustRun"
	a.log.With(slog.String("op", op)).Info("starting application")

	if err := a.restApp.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (a *App) GracefulShutdown() {
	const op = "app.GracefulShutdown"
	a.log.With(slog.String("op", op)).Info("shutting down application")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.restApp.Stop(ctx); err != nil {
		a.log.Error("failed to stop HTTP server", "error", err)
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Error("failed to close redis connection", "error", err)
		}
	}

	if a.storage != nil {
		a.storage.Close()
		a.log.Info("database connection closed")
	}
}
