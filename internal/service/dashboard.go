package service

import (
	"context"
	"fmt"
	"log/slog"

	"hackathon-portal/internal/apperrors"
	"hackathon-portal/internal/domain/models"
	"hackathon-portal/internal/lib/logger/sl"
	"hackathon-portal/internal/stage"
	"hackathon-portal/internal/timeline"
)

type DashboardService struct {
	log         *slog.Logger
	users       UserProvider
	teams       TeamProvider
	submissions SubmissionProvider
	phases      PhaseProvider
}

type TeamProvider interface {
	GetTeam(teamID int) (*models.Team, error)
	GetMembers(teamID int) ([]models.Member, error)
	ListTeamsWithMembers() ([]models.Team, error)
	UpdateProblemStatement(teamID int, problemStatement string) error
	UpdateStatus(teamID int, status string) error
}

type SubmissionProvider interface {
	ListByTeam(teamID int) ([]models.Submission, error)
	GetByID(submissionID int) (*models.Submission, error)
	Create(sub models.Submission) (*models.Submission, error)
	Update(sub models.Submission) (*models.Submission, error)
}

type PhaseProvider interface {
	GetPhase() (string, error)
	SetPhase(phase string) error
}

func NewDashboardService(
	log *slog.Logger,
	users UserProvider,
	teams TeamProvider,
	submissions SubmissionProvider,
	phases PhaseProvider) *DashboardService {
	return &DashboardService{
		log:         log,
		users:       users,
		teams:       teams,
		submissions: submissions,
		phases:      phases,
	}
}

// HomeData is the participant home payload: profile, team, the current
// phase with its derived windows, and the single resolved primary action.
type HomeData struct {
	User         models.User        `json:"user"`
	Team         *models.Team       `json:"team,omitempty"`
	Members      []models.Member    `json:"members"`
	Latest       *models.Submission `json:"latest_submission,omitempty"`
	CurrentPhase string             `json:"currentPhase"`
	Windows      timeline.Windows   `json:"windows"`
	Action       stage.Action       `json:"action"`
}

func (s *DashboardService) Home(ctx context.Context, userID int) (*HomeData, error) {
	const op = "service.dashboard.Home"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("user_id", userID),
	)

	user, err := s.users.GetByID(userID)
	if err != nil {
		log.Error("failed to get user", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	phase, err := s.phases.GetPhase()
	if err != nil {
		log.Error("failed to get current phase", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	windows := timeline.WindowsFor(phase)

	data := &HomeData{
		User:         *user,
		Members:      []models.Member{},
		CurrentPhase: phase,
		Windows:      windows,
		Action:       stage.Resolve(phase, windows, nil),
	}

	if user.TeamID == nil {
		log.Info("home data assembled for user without team")
		return data, nil
	}

	team, err := s.teams.GetTeam(*user.TeamID)
	if err != nil {
		log.Error("failed to get team", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	members, err := s.teams.GetMembers(team.TeamID)
	if err != nil {
		log.Error("failed to get team members", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	subs, err := s.submissions.ListByTeam(team.TeamID)
	if err != nil {
		log.Error("failed to get team submissions", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data.Team = team
	data.Members = members
	data.Latest = stage.Latest(subs)
	data.Action = stage.Resolve(phase, windows, subs)

	log.Info("home data assembled",
		slog.String("phase", phase),
		slog.String("action", string(data.Action.Kind)))

	return data, nil
}

func (s *DashboardService) TeamSubmissions(ctx context.Context, userID int) ([]models.Submission, error) {
	const op = "service.dashboard.TeamSubmissions"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("user_id", userID),
	)

	user, err := s.users.GetByID(userID)
	if err != nil {
		log.Error("failed to get user", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if user.TeamID == nil {
		log.Warn("user has no team")
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrNoTeam)
	}

	subs, err := s.submissions.ListByTeam(*user.TeamID)
	if err != nil {
		log.Error("failed to get submissions", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("submissions retrieved", slog.Int("count", len(subs)))

	return subs, nil
}
