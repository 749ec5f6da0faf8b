package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"hackathon-portal/internal/http/v1/handler"
	"hackathon-portal/internal/http/v1/middleware"
	"hackathon-portal/internal/service"
)

type UsersRouter struct {
	dashboard   *handler.DashboardHandler
	submissions *handler.SubmissionHandler
	auth        *middleware.Auth
}

func NewUsersRouter(
	dashboardService *service.DashboardService,
	submissionService *service.SubmissionService,
	auth *middleware.Auth,
	log *slog.Logger) *UsersRouter {
	return &UsersRouter{
		dashboard:   handler.NewDashboardHandler(dashboardService, log),
		submissions: handler.NewSubmissionHandler(submissionService, log),
		auth:        auth,
	}
}

func (ur *UsersRouter) SetupRoutes(r chi.Router) {

	r.Route("/users", func(r chi.Router) {
		r.Use(ur.auth.Authenticate)

		r.Get("/home", ur.dashboard.Home)
		r.Get("/submissions", ur.dashboard.ListSubmissions)

		r.Post("/submission/review", ur.submissions.SubmitIdea)
		r.Post("/submission/final", ur.submissions.SubmitProject)
		r.Put("/submission/{id}", ur.submissions.Modify)

		r.Put("/team/problem-statement", ur.submissions.UpdateProblemStatement)
	})

}
