package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"hackathon-portal/internal/http/v1/handler"
	"hackathon-portal/internal/http/v1/middleware"
	"hackathon-portal/internal/service"
)

type AuthRouter struct {
	handler *handler.AuthHandler
	auth    *middleware.Auth
}

func NewAuthRouter(authService *service.AuthService, auth *middleware.Auth, log *slog.Logger) *AuthRouter {
	return &AuthRouter{
		handler: handler.NewAuthHandler(authService, log),
		auth:    auth,
	}
}

func (ar *AuthRouter) SetupRoutes(r chi.Router) {

	r.Route("/auth", func(r chi.Router) {
		r.Post("/user/register", ar.handler.Register)
		r.Post("/user/login", ar.handler.LoginUser)
		r.Post("/admin/login", ar.handler.LoginAdmin)

		r.Group(func(r chi.Router) {
			r.Use(ar.auth.Authenticate)
			r.Post("/logout", ar.handler.Logout)
		})
	})

}
