package service

import (
	"context"
	"fmt"
	"log/slog"

	"hackathon-portal/internal/apperrors"
	"hackathon-portal/internal/lib/logger/sl"
	"hackathon-portal/internal/timeline"
)

// TimelineService reads and writes the single process-wide event phase.
type TimelineService struct {
	log    *slog.Logger
	phases PhaseProvider
}

func NewTimelineService(log *slog.Logger, phases PhaseProvider) *TimelineService {
	return &TimelineService{
		log:    log,
		phases: phases,
	}
}

// PhaseInfo carries the current phase and the windows it opens.
type PhaseInfo struct {
	CurrentPhase string           `json:"currentPhase"`
	Windows      timeline.Windows `json:"windows"`
}

func (s *TimelineService) Current(ctx context.Context) (*PhaseInfo, error) {
	const op = "service.timeline.Current"

	log := s.log.With(slog.String("op", op))

	phase, err := s.phases.GetPhase()
	if err != nil {
		log.Error("failed to get current phase", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &PhaseInfo{
		CurrentPhase: phase,
		Windows:      timeline.WindowsFor(phase),
	}, nil
}

// SetPhase moves the event to a new phase. The label must be one of the
// fixed nine.
func (s *TimelineService) SetPhase(ctx context.Context, phase string) (*PhaseInfo, error) {
	const op = "service.timeline.SetPhase"

	log := s.log.With(
		slog.String("op", op),
		slog.String("phase", phase),
	)

	log.Info("attempting to set event phase")

	if !timeline.Known(phase) {
		log.Warn("unknown phase label")
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrUnknownPhase)
	}

	if err := s.phases.SetPhase(phase); err != nil {
		log.Error("failed to set phase", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("event phase updated")

	return &PhaseInfo{
		CurrentPhase: phase,
		Windows:      timeline.WindowsFor(phase),
	}, nil
}
