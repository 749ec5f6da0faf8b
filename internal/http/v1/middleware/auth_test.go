package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon-portal/internal/auth"
	"hackathon-portal/internal/domain/models"
)

type stubBlacklist struct {
	revoked map[string]bool
}

func (s *stubBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	return s.revoked[jti], nil
}

func newTestAuth(blacklist *stubBlacklist) (*Auth, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAuth(tokens, blacklist, log), tokens
}

func echoClaims(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r.Context())
		require.True(t, ok)
		w.Header().Set("X-User-ID", claims.Subject)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	blacklist := &stubBlacklist{revoked: map[string]bool{}}
	authmw, tokens := newTestAuth(blacklist)

	token, _, err := tokens.Issue(models.User{UserID: 1, Email: "ada@example.com", Role: models.RoleUser})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	authmw.Authenticate(echoClaims(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ada@example.com", rec.Header().Get("X-User-ID"))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	authmw, _ := newTestAuth(&stubBlacklist{revoked: map[string]bool{}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	authmw.Authenticate(echoClaims(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	authmw, _ := newTestAuth(&stubBlacklist{revoked: map[string]bool{}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	authmw.Authenticate(echoClaims(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	authmw, _ := newTestAuth(&stubBlacklist{revoked: map[string]bool{}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	authmw.Authenticate(echoClaims(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	blacklist := &stubBlacklist{revoked: map[string]bool{}}
	authmw, tokens := newTestAuth(blacklist)

	token, claims, err := tokens.Issue(models.User{UserID: 1, Email: "ada@example.com"})
	require.NoError(t, err)
	blacklist.revoked[claims.ID] = true

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	authmw.Authenticate(echoClaims(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func withClaims(req *http.Request, role models.Role) *http.Request {
	claims := &auth.Claims{UserID: 1, Role: role}
	return req.WithContext(context.WithValue(req.Context(), claimsKey, claims))
}

func TestRequireRoles(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name    string
		allowed []models.Role
		role    models.Role
		want    int
	}{
		{"judge allowed", []models.Role{models.RoleAdmin, models.RoleJudge}, models.RoleJudge, http.StatusOK},
		{"participant blocked", []models.Role{models.RoleAdmin, models.RoleJudge}, models.RoleUser, http.StatusForbidden},
		{"judge blocked from admin route", []models.Role{models.RoleAdmin}, models.RoleJudge, http.StatusForbidden},
		{"superadmin bypasses any gate", nil, models.RoleSuperAdmin, http.StatusOK},
		{"admin blocked from superadmin route", nil, models.RoleAdmin, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := withClaims(httptest.NewRequest(http.MethodGet, "/", nil), tc.role)

			RequireRoles(tc.allowed...)(ok).ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRequireRoles_NoClaims(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RequireRoles(models.RoleAdmin)(ok).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
