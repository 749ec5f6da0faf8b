// Package timeline holds the fixed event schedule: the ordered phase labels
// and the submission windows each phase opens.
package timeline

const (
	PhaseReview1     = "Review 1"
	PhaseReview2     = "Review 2"
	PhaseFinalReview = "Final Review"
)

// Phases is the fixed, ordered event schedule. The labels are part of the
// API contract and must match what clients render verbatim.
var Phases = []string{
	"Participants reach",
	"Ideation",
	PhaseReview1,
	"Lunch",
	"Speaker Sessions",
	PhaseReview2,
	"Dinner",
	"Begin Hacking",
	PhaseFinalReview,
}

// DefaultPhase is the phase before the event has started.
const DefaultPhase = "Participants reach"

// PhaseIndex returns the position of label in the schedule, or -1 for an
// unrecognized label (treated as "before the first phase").
func PhaseIndex(label string) int {
	for i, p := range Phases {
		if p == label {
			return i
		}
	}
	return -1
}

// Known reports whether label is one of the fixed phases.
func Known(label string) bool {
	return PhaseIndex(label) >= 0
}

type State string

const (
	StatePast     State = "past"
	StateCurrent  State = "current"
	StateUpcoming State = "upcoming"
)

// PhaseState classifies label relative to the current phase. An unknown
// current phase indexes at -1, so every scheduled phase reads as upcoming.
func PhaseState(current, label string) State {
	idx := PhaseIndex(label)
	cur := PhaseIndex(current)
	switch {
	case idx >= 0 && idx == cur:
		return StateCurrent
	case idx >= 0 && idx < cur:
		return StatePast
	default:
		return StateUpcoming
	}
}

// Windows is the triple of submission-window flags served alongside the
// current phase on every home payload.
type Windows struct {
	Review1 bool `json:"review1"`
	Review2 bool `json:"review2"`
	Final   bool `json:"final"`
}

// WindowsFor derives the open windows from the current phase. Each review
// stage accepts submissions only while its phase is the current one.
func WindowsFor(phase string) Windows {
	return Windows{
		Review1: phase == PhaseReview1,
		Review2: phase == PhaseReview2,
		Final:   phase == PhaseFinalReview,
	}
}
