package integration

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"hackathon-portal/internal/auth"
	"hackathon-portal/internal/config"
	v1 "hackathon-portal/internal/http/v1"
	"hackathon-portal/internal/http/v1/middleware"
	"hackathon-portal/internal/lib/migrator"
	"hackathon-portal/internal/repo"
	"hackathon-portal/internal/service"
)

const fixturePassword = "password123"

var operatorWhitelist = []string{
	"judge@example.com",
	"admin@example.com",
	"root@example.com",
}

type TestServer struct {
	DB     *sqlx.DB
	RDB    *redis.Client
	Server *httptest.Server
}

func NewTestServer() (*TestServer, error) {
	pgCfg := config.PostgresConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "postgres",
		DbName:   "hackathon_test_db",
		SslMode:  "disable",
	}

	dbURL := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		pgCfg.Host, pgCfg.Port, pgCfg.User, pgCfg.Password, pgCfg.DbName, pgCfg.SslMode)

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := migrator.RunMigrations(pgCfg, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 1})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	userRepo := repo.NewUserRepo(db)
	teamRepo := repo.NewTeamRepo(db)
	submissionRepo := repo.NewSubmissionRepo(db)
	reviewRepo := repo.NewReviewRepo(db)
	timelineRepo := repo.NewTimelineRepo(db)
	blacklist := repo.NewTokenBlacklist(rdb)

	tokens := auth.NewTokenManager("integration-test-secret", time.Hour)

	deps := v1.RouterDependencies{
		AuthService:       service.NewAuthService(log, userRepo, tokens, blacklist, operatorWhitelist),
		DashboardService:  service.NewDashboardService(log, userRepo, teamRepo, submissionRepo, timelineRepo),
		SubmissionService: service.NewSubmissionService(log, userRepo, teamRepo, submissionRepo, timelineRepo),
		AdminService:      service.NewAdminService(log, userRepo, teamRepo, submissionRepo, reviewRepo, 10),
		TimelineService:   service.NewTimelineService(log, timelineRepo),
		Auth:              middleware.NewAuth(tokens, blacklist, log),
	}

	r := chi.NewRouter()
	v1.SetupRoutes(r, &deps, log)

	ts := httptest.NewServer(r)

	return &TestServer{
		DB:     db,
		RDB:    rdb,
		Server: ts,
	}, nil
}

func (s *TestServer) LoadFixtures() error {
	tables := []string{"reviews", "submissions", "users", "teams"}
	for _, table := range tables {
		_, err := s.DB.Exec(fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	if _, err := s.DB.Exec("UPDATE event_timeline SET phase = 'Participants reach' WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to reset event phase: %w", err)
	}

	if err := s.RDB.FlushDB(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to flush redis: %w", err)
	}

	hash, err := auth.HashPassword(fixturePassword)
	if err != nil {
		return fmt.Errorf("failed to hash fixture password: %w", err)
	}

	teams := `
		INSERT INTO teams(team_id, team_name, track_name, status) VALUES
			(1, 'Night Owls', 'AgriTech', 'Active'),
			(2, 'Gone Team', 'FinTech', 'Rejected');

		SELECT setval('teams_team_id_seq', 2);
	`
	if _, err := s.DB.Exec(teams); err != nil {
		return fmt.Errorf("failed to load team fixtures: %w", err)
	}

	users := `
		INSERT INTO users(user_id, name, email, password_hash, role, team_id, is_leader) VALUES
			(1, 'Lena', 'lead@example.com', $1, 'user', 1, true),
			(2, 'Mark', 'member@example.com', $1, 'user', 1, false),
			(3, 'Judy', 'judge@example.com', $1, 'judge', NULL, false),
			(4, 'Andre', 'admin@example.com', $1, 'admin', NULL, false),
			(5, 'Root', 'root@example.com', $1, 'superadmin', NULL, false),
			(6, 'Gina', 'gone-lead@example.com', $1, 'user', 2, true)
	`
	if _, err := s.DB.Exec(users, hash); err != nil {
		return fmt.Errorf("failed to load user fixtures: %w", err)
	}

	if _, err := s.DB.Exec("SELECT setval('users_user_id_seq', 6)"); err != nil {
		return fmt.Errorf("failed to advance users sequence: %w", err)
	}

	return nil
}

func (s *TestServer) Close() {
	s.Server.Close()
	s.RDB.Close()
	s.DB.Close()
}
