package v1

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"hackathon-portal/internal/http/v1/middleware"
	"hackathon-portal/internal/http/v1/router"
	"hackathon-portal/internal/service"
)

type Router interface {
	SetupRoutes(r chi.Router)
}

type RouterDependencies struct {
	AuthService       *service.AuthService
	DashboardService  *service.DashboardService
	SubmissionService *service.SubmissionService
	AdminService      *service.AdminService
	TimelineService   *service.TimelineService
	Auth              *middleware.Auth
}

func SetupRoutes(r chi.Router, deps *RouterDependencies, log *slog.Logger) {
	routers := []Router{
		router.NewAuthRouter(deps.AuthService, deps.Auth, log),
		router.NewUsersRouter(deps.DashboardService, deps.SubmissionService, deps.Auth, log),
		router.NewAdminRouter(deps.AdminService, deps.TimelineService, deps.Auth, log),
	}

	for _, serviceRouter := range routers {
		serviceRouter.SetupRoutes(r)
	}
}
