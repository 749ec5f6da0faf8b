package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hashicorp/go-multierror"

	"hackathon-portal/internal/apperrors"
	"hackathon-portal/internal/domain/models"
	"hackathon-portal/internal/judging"
	"hackathon-portal/internal/lib/logger/sl"
	"hackathon-portal/internal/stage"
)

// AdminService serves the operator views: team listing and detail, review
// recording, and the one-way elimination transition.
type AdminService struct {
	log         *slog.Logger
	users       UserProvider
	teams       TeamProvider
	submissions SubmissionProvider
	reviews     ReviewProvider
	maxScore    int
}

type ReviewProvider interface {
	Upsert(review models.Review) (*models.Review, error)
	ListBySubmission(submissionID int) ([]models.Review, error)
	GetByJudge(submissionID, judgeID int) (*models.Review, error)
}

func NewAdminService(
	log *slog.Logger,
	users UserProvider,
	teams TeamProvider,
	submissions SubmissionProvider,
	reviews ReviewProvider,
	maxScore int) *AdminService {
	return &AdminService{
		log:         log,
		users:       users,
		teams:       teams,
		submissions: submissions,
		reviews:     reviews,
		maxScore:    maxScore,
	}
}

func (s *AdminService) Profile(ctx context.Context, userID int) (*models.User, error) {
	const op = "service.admin.Profile"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("user_id", userID),
	)

	user, err := s.users.GetByID(userID)
	if err != nil {
		log.Error("failed to get operator profile", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *AdminService) ListTeams(ctx context.Context) ([]models.Team, error) {
	const op = "service.admin.ListTeams"

	log := s.log.With(slog.String("op", op))

	teams, err := s.teams.ListTeamsWithMembers()
	if err != nil {
		log.Error("failed to list teams", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("teams listed", slog.Int("team_count", len(teams)))

	return teams, nil
}

// TeamDetail is the admin view of one team. Submissions are ordered by
// stage precedence so the first entry is always the latest stage.
type TeamDetail struct {
	Team        models.Team         `json:"team"`
	Members     []models.Member     `json:"members"`
	Submissions []models.Submission `json:"submissions"`
}

func (s *AdminService) GetTeamDetail(ctx context.Context, teamID int) (*TeamDetail, error) {
	const op = "service.admin.GetTeamDetail"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("team_id", teamID),
	)

	team, err := s.teams.GetTeam(teamID)
	if err != nil {
		log.Error("failed to get team", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	members, err := s.teams.GetMembers(teamID)
	if err != nil {
		log.Error("failed to get team members", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	subs, err := s.submissions.ListByTeam(teamID)
	if err != nil {
		log.Error("failed to get team submissions", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	detail := &TeamDetail{
		Team:        *team,
		Members:     members,
		Submissions: stage.ByPrecedence(subs),
	}

	log.Info("team detail assembled", slog.Int("submission_count", len(subs)))

	return detail, nil
}

// SubmissionDetail packages a submission with all of its reviews and, when
// the calling judge has reviewed it before, that previous review for
// reference. The previous review is never merged into a new one.
type SubmissionDetail struct {
	Submission     models.Submission `json:"submission"`
	Reviews        []models.Review   `json:"reviews"`
	PreviousReview *models.Review    `json:"previous_review,omitempty"`
}

func (s *AdminService) GetSubmissionDetail(ctx context.Context, submissionID, judgeID int) (*SubmissionDetail, error) {
	const op = "service.admin.GetSubmissionDetail"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("submission_id", submissionID),
	)

	sub, err := s.submissions.GetByID(submissionID)
	if err != nil {
		log.Error("failed to get submission", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reviews, err := s.reviews.ListBySubmission(submissionID)
	if err != nil {
		log.Error("failed to list reviews", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	previous, err := s.reviews.GetByJudge(submissionID, judgeID)
	if err != nil {
		log.Error("failed to get previous review", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &SubmissionDetail{
		Submission:     *sub,
		Reviews:        reviews,
		PreviousReview: previous,
	}, nil
}

// SubmitReview scores a submission: raw per-criterion values are run
// through the bounded score card and the total is stored with the judge's
// comments. Submissions of eliminated teams cannot be scored.
func (s *AdminService) SubmitReview(ctx context.Context, judgeID, submissionID int, scores map[string]string, comments string) (*models.Review, error) {
	const op = "service.admin.SubmitReview"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("judge_id", judgeID),
		slog.Int("submission_id", submissionID),
	)

	log.Info("attempting to record review")

	sub, err := s.submissions.GetByID(submissionID)
	if err != nil {
		log.Error("failed to get submission", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	team, err := s.teams.GetTeam(sub.TeamID)
	if err != nil {
		log.Error("failed to get submission's team", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !stage.Selectable(team.Status) {
		log.Warn("team is not selectable for judging", slog.String("status", team.Status))
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrTeamNotSelectable)
	}

	card := judging.NewScoreCard(s.maxScore)
	var errs *multierror.Error
	for criterion, raw := range scores {
		if err := card.Set(criterion, raw); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		log.Warn("score card rejected input", sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %w", op, apperrors.ErrReviewInvalidScore, err)
	}

	review, err := s.reviews.Upsert(models.Review{
		SubmissionID: submissionID,
		JudgeID:      judgeID,
		Score:        card.Total(),
		Comments:     comments,
	})
	if err != nil {
		log.Error("failed to store review", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("review recorded", slog.Int("total_score", review.Score))

	return review, nil
}

// UpdateTeamStatus is the elimination transition. Only Active -> Rejected
// exists; there is no way back out of Rejected.
func (s *AdminService) UpdateTeamStatus(ctx context.Context, teamID int, status string) (*models.Team, error) {
	const op = "service.admin.UpdateTeamStatus"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("team_id", teamID),
		slog.String("status", status),
	)

	log.Info("attempting team status transition")

	if !strings.EqualFold(status, models.TeamStatusRejected) {
		log.Warn("unsupported status transition")
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrInvalidTeamStatus)
	}

	team, err := s.teams.GetTeam(teamID)
	if err != nil {
		log.Error("failed to get team", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !stage.Selectable(team.Status) {
		log.Warn("team already rejected", slog.String("current_status", team.Status))
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrTeamAlreadyRejected)
	}

	if err := s.teams.UpdateStatus(teamID, models.TeamStatusRejected); err != nil {
		log.Error("failed to update team status", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	team.Status = models.TeamStatusRejected

	log.Info("team eliminated", slog.String("team_name", team.TeamName))

	return team, nil
}
