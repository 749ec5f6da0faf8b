package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"hackathon-portal/internal/auth"
	"hackathon-portal/internal/domain/models"
	"hackathon-portal/internal/lib/logger/sl"
)

type contextKey string

const claimsKey contextKey = "auth.claims"

// TokenChecker reports whether a token id has been revoked.
type TokenChecker interface {
	Contains(ctx context.Context, jti string) (bool, error)
}

type Auth struct {
	tokens    *auth.TokenManager
	blacklist TokenChecker
	log       *slog.Logger
}

func NewAuth(tokens *auth.TokenManager, blacklist TokenChecker, log *slog.Logger) *Auth {
	return &Auth{
		tokens:    tokens,
		blacklist: blacklist,
		log:       log,
	}
}

// Authenticate validates the bearer token, rejects revoked tokens, and
// stores the decoded claims in the request context.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const op = "middleware.auth.Authenticate"

		log := a.log.With(slog.String("op", op))

		header := r.Header.Get("Authorization")
		if header == "" {
			writeUnauthorized(w, "authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeUnauthorized(w, "authorization header must be a bearer token")
			return
		}

		claims, err := a.tokens.Parse(parts[1])
		if err != nil {
			log.Warn("token rejected", sl.Err(err))
			writeUnauthorized(w, "invalid or expired token")
			return
		}

		revoked, err := a.blacklist.Contains(r.Context(), claims.ID)
		if err != nil {
			log.Error("failed to check token blacklist", sl.Err(err))
			writeUnauthorized(w, "unable to verify token")
			return
		}
		if revoked {
			log.Warn("revoked token used", slog.Int("user_id", claims.UserID))
			writeUnauthorized(w, "token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a route to the given roles. Superadmin always passes,
// matching the portal's privilege model.
func RequireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r.Context())
			if !ok {
				writeUnauthorized(w, "authentication required")
				return
			}

			if claims.Role == models.RoleSuperAdmin {
				next.ServeHTTP(w, r)
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "insufficient permissions"})
		})
	}
}

// ClaimsFrom extracts the authenticated caller's claims from the context.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
