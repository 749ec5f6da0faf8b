package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"hackathon-portal/internal/domain/models"
	"hackathon-portal/internal/http/v1/handler"
	"hackathon-portal/internal/http/v1/middleware"
	"hackathon-portal/internal/service"
)

type AdminRouter struct {
	admin    *handler.AdminHandler
	timeline *handler.TimelineHandler
	auth     *middleware.Auth
}

func NewAdminRouter(
	adminService *service.AdminService,
	timelineService *service.TimelineService,
	auth *middleware.Auth,
	log *slog.Logger) *AdminRouter {
	return &AdminRouter{
		admin:    handler.NewAdminHandler(adminService, log),
		timeline: handler.NewTimelineHandler(timelineService, log),
		auth:     auth,
	}
}

func (ar *AdminRouter) SetupRoutes(r chi.Router) {

	r.Route("/admin", func(r chi.Router) {
		r.Use(ar.auth.Authenticate)
		r.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleJudge))

		r.Get("/me", ar.admin.Me)
		r.Get("/teams", ar.admin.ListTeams)
		r.Get("/team/{id}", ar.admin.TeamDetail)
		r.Get("/submission/{id}", ar.admin.SubmissionDetail)
		r.Post("/submission/{id}/review", ar.admin.SubmitReview)

		// Elimination is not for judges.
		r.With(middleware.RequireRoles(models.RoleAdmin)).
			Post("/team/{id}/status", ar.admin.UpdateTeamStatus)

		r.Get("/timeline/phase", ar.timeline.GetPhase)

		// Only the superadmin drives the event timeline.
		r.With(middleware.RequireRoles()).
			Post("/timeline/phase", ar.timeline.SetPhase)
	})

}
