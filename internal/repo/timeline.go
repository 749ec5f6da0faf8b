package repo

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// TimelineRepo persists the single process-wide event phase.
type TimelineRepo struct {
	storage *sqlx.DB
}

func NewTimelineRepo(storage *sqlx.DB) *TimelineRepo {
	return &TimelineRepo{storage: storage}
}

func (r *TimelineRepo) GetPhase() (string, error) {
	const op = "repo.timeline.GetPhase"

	query := `SELECT phase FROM event_timeline WHERE id = 1`

	var phase string
	if err := r.storage.Get(&phase, query); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return phase, nil
}

func (r *TimelineRepo) SetPhase(phase string) error {
	const op = "repo.timeline.SetPhase"

	query := `UPDATE event_timeline SET phase = $1, updated_at = now() WHERE id = 1`

	if _, err := r.storage.Exec(query, phase); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
