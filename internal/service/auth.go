package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hackathon-portal/internal/apperrors"
	"hackathon-portal/internal/auth"
	"hackathon-portal/internal/domain/models"
	"hackathon-portal/internal/lib/logger/sl"
)

type AuthService struct {
	log       *slog.Logger
	users     UserProvider
	tokens    *auth.TokenManager
	blacklist TokenRevoker
	whitelist map[string]struct{}
}

type UserProvider interface {
	CreateParticipant(name, email, passwordHash string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(userID int) (*models.User, error)
}

type TokenRevoker interface {
	Add(ctx context.Context, jti string, ttl time.Duration) error
}

func NewAuthService(
	log *slog.Logger,
	users UserProvider,
	tokens *auth.TokenManager,
	blacklist TokenRevoker,
	operatorWhitelist []string) *AuthService {
	whitelist := make(map[string]struct{}, len(operatorWhitelist))
	for _, email := range operatorWhitelist {
		whitelist[email] = struct{}{}
	}
	return &AuthService{
		log:       log,
		users:     users,
		tokens:    tokens,
		blacklist: blacklist,
		whitelist: whitelist,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	const op = "service.auth.Register"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting to register participant")

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.CreateParticipant(name, email, hash)
	if err != nil {
		log.Error("failed to create participant", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("participant registered successfully", slog.Int("user_id", user.UserID))

	return user, nil
}

// LoginParticipant exchanges participant credentials for a session token.
func (s *AuthService) LoginParticipant(ctx context.Context, email, password string) (string, *models.User, error) {
	const op = "service.auth.LoginParticipant"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting participant login")

	user, err := s.authenticate(op, email, password)
	if err != nil {
		log.Warn("participant login rejected", sl.Err(err))
		return "", nil, err
	}

	token, _, err := s.tokens.Issue(*user)
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("participant logged in", slog.Int("user_id", user.UserID))

	return token, user, nil
}

// LoginOperator is the admin login: the email must be whitelisted and the
// account must carry a privileged role.
func (s *AuthService) LoginOperator(ctx context.Context, email, password string) (string, *models.User, error) {
	const op = "service.auth.LoginOperator"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting operator login")

	if _, ok := s.whitelist[email]; !ok {
		log.Warn("email not in operator whitelist")
		return "", nil, fmt.Errorf("%s: %w", op, apperrors.ErrNotWhitelisted)
	}

	user, err := s.authenticate(op, email, password)
	if err != nil {
		log.Warn("operator login rejected", sl.Err(err))
		return "", nil, err
	}

	if !user.Role.Privileged() {
		log.Warn("whitelisted account has no operator role", slog.String("role", string(user.Role)))
		return "", nil, fmt.Errorf("%s: %w", op, apperrors.ErrNotPrivileged)
	}

	token, _, err := s.tokens.Issue(*user)
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("operator logged in", slog.Int("user_id", user.UserID), slog.String("role", string(user.Role)))

	return token, user, nil
}

// Logout blacklists the token's jti until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	const op = "service.auth.Logout"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("user_id", claims.UserID),
	)

	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}

	if err := s.blacklist.Add(ctx, claims.ID, ttl); err != nil {
		log.Error("failed to blacklist token", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("token blacklisted")

	return nil
}

func (s *AuthService) authenticate(op, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the account exists.
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrInvalidCredentials)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrInvalidCredentials)
	}

	return user, nil
}
