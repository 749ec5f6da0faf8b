// Package stage implements the submission-stage resolution rules: which
// submission counts as a team's latest, which one belongs to the current
// phase, what the single primary action for a team is, and which teams are
// still in the running.
package stage

import (
	"sort"
	"strings"

	"hackathon-portal/internal/domain/models"
	"hackathon-portal/internal/timeline"
)

// precedence orders stages from earliest to latest.
var precedence = map[models.SubmissionType]int{
	models.SubmissionReview1: 1,
	models.SubmissionReview2: 2,
	models.SubmissionFinal:   3,
}

// Latest picks the team's most advanced submission: final over review2 over
// review1. Returns nil when the team has not submitted anything.
func Latest(subs []models.Submission) *models.Submission {
	var best *models.Submission
	for i := range subs {
		if precedence[subs[i].Type] == 0 {
			continue
		}
		if best == nil || precedence[subs[i].Type] > precedence[best.Type] {
			best = &subs[i]
		}
	}
	return best
}

// ByPrecedence returns a copy of subs ordered latest stage first, so the
// first entry of an admin detail payload is always the precedence-latest
// submission.
func ByPrecedence(subs []models.Submission) []models.Submission {
	out := make([]models.Submission, len(subs))
	copy(out, subs)
	sort.SliceStable(out, func(i, j int) bool {
		return precedence[out[i].Type] > precedence[out[j].Type]
	})
	return out
}

// ForPhase picks the submission relevant to the declared current phase only:
// the review2 submission during "Review 2", the final one during
// "Final Review", nil otherwise. Unlike Latest, it never falls back to an
// earlier stage; it decides submit-vs-modify for the open window.
func ForPhase(subs []models.Submission, phase string) *models.Submission {
	var want models.SubmissionType
	switch phase {
	case timeline.PhaseReview2:
		want = models.SubmissionReview2
	case timeline.PhaseFinalReview:
		want = models.SubmissionFinal
	default:
		return nil
	}
	return find(subs, want)
}

func find(subs []models.Submission, t models.SubmissionType) *models.Submission {
	for i := range subs {
		if subs[i].Type == t {
			return &subs[i]
		}
	}
	return nil
}

type ActionKind string

const (
	ActionSubmit ActionKind = "submit"
	ActionModify ActionKind = "modify"
	ActionClosed ActionKind = "closed"
)

// Action is the single primary call-to-action for a team's dashboard.
// Stage is empty when submissions are closed.
type Action struct {
	Label string                `json:"label"`
	Kind  ActionKind            `json:"action"`
	Stage models.SubmissionType `json:"stage,omitempty"`
}

// Invocable reports whether the action triggers anything when clicked.
func (a Action) Invocable() bool {
	return a.Kind != ActionClosed
}

// Resolve derives the primary action from the current phase, the open
// windows and the team's submissions. The review1 window dominates; the
// later stages additionally require the matching phase to be current.
func Resolve(phase string, w timeline.Windows, subs []models.Submission) Action {
	if w.Review1 {
		if find(subs, models.SubmissionReview1) != nil {
			return Action{Label: "Modify Idea", Kind: ActionModify, Stage: models.SubmissionReview1}
		}
		return Action{Label: "Submit Idea", Kind: ActionSubmit, Stage: models.SubmissionReview1}
	}
	if phase == timeline.PhaseReview2 && w.Review2 {
		return projectAction(subs, phase, models.SubmissionReview2)
	}
	if phase == timeline.PhaseFinalReview && w.Final {
		return projectAction(subs, phase, models.SubmissionFinal)
	}
	return Action{Label: "Submissions Closed", Kind: ActionClosed}
}

func projectAction(subs []models.Submission, phase string, st models.SubmissionType) Action {
	if ForPhase(subs, phase) != nil {
		return Action{Label: "Modify Project", Kind: ActionModify, Stage: st}
	}
	return Action{Label: "Submit Project", Kind: ActionSubmit, Stage: st}
}

// Selectable reports whether a team may still be picked for judging or
// elimination. Status is compared case-insensitively.
func Selectable(status string) bool {
	switch strings.ToLower(status) {
	case "rejected", "eliminated":
		return false
	}
	return true
}
