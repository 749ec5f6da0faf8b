package service

import (
	"context"
	"fmt"
	"log/slog"

	"hackathon-portal/internal/apperrors"
	"hackathon-portal/internal/domain/models"
	"hackathon-portal/internal/lib/logger/sl"
	"hackathon-portal/internal/timeline"
)

// SubmissionService owns every leader-gated mutation: idea and project
// submission, in-place modification, and the team's problem statement.
// Leadership is checked at invocation time against the stored user, never
// trusted from the client.
type SubmissionService struct {
	log         *slog.Logger
	users       UserProvider
	teams       TeamProvider
	submissions SubmissionProvider
	phases      PhaseProvider
}

func NewSubmissionService(
	log *slog.Logger,
	users UserProvider,
	teams TeamProvider,
	submissions SubmissionProvider,
	phases PhaseProvider) *SubmissionService {
	return &SubmissionService{
		log:         log,
		users:       users,
		teams:       teams,
		submissions: submissions,
		phases:      phases,
	}
}

// SubmitIdea creates the team's review1 submission while the review1
// window is open.
func (s *SubmissionService) SubmitIdea(ctx context.Context, userID int, payload IdeaPayload) (*models.Submission, error) {
	const op = "service.submission.SubmitIdea"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("user_id", userID),
	)

	log.Info("attempting idea submission")

	leader, err := s.requireLeader(op, userID)
	if err != nil {
		log.Warn("leadership check failed", sl.Err(err))
		return nil, err
	}

	if err := payload.Validate(); err != nil {
		log.Warn("idea payload rejected", sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %w", op, apperrors.ErrValidation, err)
	}

	phase, err := s.phases.GetPhase()
	if err != nil {
		log.Error("failed to get current phase", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !timeline.WindowsFor(phase).Review1 {
		log.Warn("review1 window closed", slog.String("phase", phase))
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrWindowClosed)
	}

	created, err := s.submissions.Create(models.Submission{
		TeamID:      *leader.TeamID,
		Type:        models.SubmissionReview1,
		Title:       payload.Title,
		Description: payload.Description,
		Links: models.SubmissionLinks{
			Presentation: payload.PresentationLink,
		},
	})
	if err != nil {
		log.Error("failed to create idea submission", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("idea submitted", slog.Int("submission_id", created.SubmissionID))

	return created, nil
}

// SubmitProject creates the later-stage submission for whichever window
// the current phase has open: review2 during "Review 2", final during
// "Final Review".
func (s *SubmissionService) SubmitProject(ctx context.Context, userID int, payload ProjectPayload) (*models.Submission, error) {
	const op = "service.submission.SubmitProject"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("user_id", userID),
	)

	log.Info("attempting project submission")

	leader, err := s.requireLeader(op, userID)
	if err != nil {
		log.Warn("leadership check failed", sl.Err(err))
		return nil, err
	}

	if err := payload.Validate(); err != nil {
		log.Warn("project payload rejected", sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %w", op, apperrors.ErrValidation, err)
	}

	phase, err := s.phases.GetPhase()
	if err != nil {
		log.Error("failed to get current phase", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stageType, ok := openProjectStage(phase)
	if !ok {
		log.Warn("no project window open", slog.String("phase", phase))
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrWindowClosed)
	}

	created, err := s.submissions.Create(models.Submission{
		TeamID:      *leader.TeamID,
		Type:        stageType,
		Title:       payload.Title,
		Description: payload.Description,
		Links: models.SubmissionLinks{
			Presentation: payload.PresentationLink,
			GitHub:       payload.GithubLink,
			Figma:        payload.FigmaLink,
		},
	})
	if err != nil {
		log.Error("failed to create project submission", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("project submitted",
		slog.Int("submission_id", created.SubmissionID),
		slog.String("stage", string(stageType)))

	return created, nil
}

// Modify updates an existing submission in place. The submission must
// belong to the caller's team and its stage window must still be open.
func (s *SubmissionService) Modify(ctx context.Context, userID, submissionID int, payload ModifyPayload) (*models.Submission, error) {
	const op = "service.submission.Modify"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("user_id", userID),
		slog.Int("submission_id", submissionID),
	)

	log.Info("attempting submission modification")

	leader, err := s.requireLeader(op, userID)
	if err != nil {
		log.Warn("leadership check failed", sl.Err(err))
		return nil, err
	}

	sub, err := s.submissions.GetByID(submissionID)
	if err != nil {
		log.Error("failed to get submission", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if sub.TeamID != *leader.TeamID {
		log.Warn("submission belongs to another team", slog.Int("owner_team_id", sub.TeamID))
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrNotTeamSubmission)
	}

	if err := payload.ValidateFor(sub.Type); err != nil {
		log.Warn("modification payload rejected", sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %w", op, apperrors.ErrValidation, err)
	}

	phase, err := s.phases.GetPhase()
	if err != nil {
		log.Error("failed to get current phase", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !windowOpen(timeline.WindowsFor(phase), sub.Type) {
		log.Warn("stage window closed",
			slog.String("phase", phase),
			slog.String("stage", string(sub.Type)))
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrWindowClosed)
	}

	sub.Title = payload.Title
	sub.Description = payload.Description
	sub.Links = models.SubmissionLinks{
		Presentation: payload.PresentationLink,
		GitHub:       payload.GithubLink,
		Figma:        payload.FigmaLink,
		File:         sub.Links.File,
	}

	updated, err := s.submissions.Update(*sub)
	if err != nil {
		log.Error("failed to update submission", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("submission modified")

	return updated, nil
}

// UpdateProblemStatement records the team's chosen problem statement.
func (s *SubmissionService) UpdateProblemStatement(ctx context.Context, userID int, problemStatement string) error {
	const op = "service.submission.UpdateProblemStatement"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("user_id", userID),
	)

	leader, err := s.requireLeader(op, userID)
	if err != nil {
		log.Warn("leadership check failed", sl.Err(err))
		return err
	}

	if problemStatement == "" {
		log.Warn("empty problem statement")
		return fmt.Errorf("%s: %w: problem statement is required", op, apperrors.ErrValidation)
	}

	if err := s.teams.UpdateProblemStatement(*leader.TeamID, problemStatement); err != nil {
		log.Error("failed to update problem statement", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("problem statement updated", slog.Int("team_id", *leader.TeamID))

	return nil
}

func (s *SubmissionService) requireLeader(op string, userID int) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user.TeamID == nil {
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrNoTeam)
	}
	if !user.IsLeader {
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrNotLeader)
	}
	return user, nil
}

func openProjectStage(phase string) (models.SubmissionType, bool) {
	w := timeline.WindowsFor(phase)
	switch {
	case phase == timeline.PhaseReview2 && w.Review2:
		return models.SubmissionReview2, true
	case phase == timeline.PhaseFinalReview && w.Final:
		return models.SubmissionFinal, true
	}
	return "", false
}

func windowOpen(w timeline.Windows, t models.SubmissionType) bool {
	switch t {
	case models.SubmissionReview1:
		return w.Review1
	case models.SubmissionReview2:
		return w.Review2
	case models.SubmissionFinal:
		return w.Final
	}
	return false
}
