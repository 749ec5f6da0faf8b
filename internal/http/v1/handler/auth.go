package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/mail"

	"hackathon-portal/internal/domain/models"
	"hackathon-portal/internal/http/v1/middleware"
	"hackathon-portal/internal/lib/logger/sl"
	"hackathon-portal/internal/service"
)

type (
	RegisterRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginResponse struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}

	RegisterResponse struct {
		User models.User `json:"user"`
	}
)

type AuthHandler struct {
	authService *service.AuthService
	log         *slog.Logger
}

func NewAuthHandler(authService *service.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "handler.auth.Register"

	log := h.log.With(slog.String("op", op))

	var req RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("invalid request body", sl.Err(err))
		writeError(w, log, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Name == "" {
		writeError(w, log, http.StatusBadRequest, "name is required", nil)
		return
	}
	if !validEmail(req.Email) {
		writeError(w, log, http.StatusBadRequest, "a valid email is required", nil)
		return
	}
	if req.Password == "" {
		writeError(w, log, http.StatusBadRequest, "password is required", nil)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		log.Error("failed to register", sl.Err(err))
		writeServiceError(w, log, "failed to register", err)
		return
	}

	writeJSON(w, log, http.StatusCreated, RegisterResponse{User: *user})
	log.Info("participant registered")
}

func (h *AuthHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	const op = "handler.auth.LoginUser"

	log := h.log.With(slog.String("op", op))

	req, ok := h.decodeLogin(w, log, r)
	if !ok {
		return
	}

	token, user, err := h.authService.LoginParticipant(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Warn("login failed", sl.Err(err))
		writeServiceError(w, log, "login failed", err)
		return
	}

	writeJSON(w, log, http.StatusOK, LoginResponse{Token: token, User: *user})
	log.Info("participant login succeeded")
}

func (h *AuthHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	const op = "handler.auth.LoginAdmin"

	log := h.log.With(slog.String("op", op))

	req, ok := h.decodeLogin(w, log, r)
	if !ok {
		return
	}

	token, user, err := h.authService.LoginOperator(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Warn("operator login failed", sl.Err(err))
		writeServiceError(w, log, "login failed", err)
		return
	}

	writeJSON(w, log, http.StatusOK, LoginResponse{Token: token, User: *user})
	log.Info("operator login succeeded")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "handler.auth.Logout"

	log := h.log.With(slog.String("op", op))

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, log, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	if err := h.authService.Logout(r.Context(), claims); err != nil {
		log.Error("failed to logout", sl.Err(err))
		writeServiceError(w, log, "failed to logout", err)
		return
	}

	writeJSON(w, log, http.StatusOK, map[string]string{"message": "logged out"})
	log.Info("logout succeeded")
}

func (h *AuthHandler) decodeLogin(w http.ResponseWriter, log *slog.Logger, r *http.Request) (LoginRequest, bool) {
	var req LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("invalid request body", sl.Err(err))
		writeError(w, log, http.StatusBadRequest, "invalid request body", err)
		return req, false
	}

	if !validEmail(req.Email) {
		writeError(w, log, http.StatusBadRequest, "a valid email is required", nil)
		return req, false
	}
	if req.Password == "" {
		writeError(w, log, http.StatusBadRequest, "password is required", nil)
		return req, false
	}

	return req, true
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}
