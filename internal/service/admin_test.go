package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon-portal/internal/apperrors"
	"hackathon-portal/internal/domain/models"
)

func newAdminFixture() (*AdminService, *fakeTeams, *fakeSubs, *fakeReviews) {
	teams := newFakeTeams(
		models.Team{TeamID: 10, TeamName: "Night Owls", Status: models.TeamStatusActive},
		models.Team{TeamID: 11, TeamName: "Gone Team", Status: models.TeamStatusRejected},
	)
	subs := newFakeSubs(
		models.Submission{SubmissionID: 1, TeamID: 10, Type: models.SubmissionReview1, Title: "Idea"},
		models.Submission{SubmissionID: 2, TeamID: 10, Type: models.SubmissionFinal, Title: "Final"},
		models.Submission{SubmissionID: 3, TeamID: 11, Type: models.SubmissionReview1, Title: "Rejected Idea"},
	)
	reviews := newFakeReviews()
	svc := NewAdminService(discardLogger(), newFakeUsers(), teams, subs, reviews, 10)
	return svc, teams, subs, reviews
}

func TestAdmin_TeamDetailOrdersByPrecedence(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	detail, err := svc.GetTeamDetail(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, detail.Submissions, 2)
	assert.Equal(t, models.SubmissionFinal, detail.Submissions[0].Type)
	assert.Equal(t, models.SubmissionReview1, detail.Submissions[1].Type)
}

func TestAdmin_TeamDetailUnknownTeam(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	_, err := svc.GetTeamDetail(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}

func TestAdmin_SubmitReview(t *testing.T) {
	svc, _, _, reviews := newAdminFixture()

	review, err := svc.SubmitReview(context.Background(), 42, 1, map[string]string{
		"Innovation & Creativity":  "8",
		"Technical Implementation": "6",
		"Impact":                   "",
	}, "solid idea")
	require.NoError(t, err)
	assert.Equal(t, 14, review.Score)
	assert.Equal(t, "solid idea", review.Comments)

	stored, err := reviews.GetByJudge(1, 42)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 14, stored.Score)
}

func TestAdmin_SubmitReviewReplacesOwnPrevious(t *testing.T) {
	svc, _, _, reviews := newAdminFixture()

	_, err := svc.SubmitReview(context.Background(), 42, 1, map[string]string{"Impact": "3"}, "first pass")
	require.NoError(t, err)

	review, err := svc.SubmitReview(context.Background(), 42, 1, map[string]string{"Impact": "9"}, "second pass")
	require.NoError(t, err)
	assert.Equal(t, 9, review.Score)

	all, err := reviews.ListBySubmission(1)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAdmin_SubmitReviewRejectsBadScores(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	cases := map[string]map[string]string{
		"out of range":      {"Impact": "11"},
		"negative":          {"Impact": "-1"},
		"not a number":      {"Impact": "high"},
		"unknown criterion": {"Vibes": "5"},
	}

	for name, scores := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.SubmitReview(context.Background(), 42, 1, scores, "")
			assert.ErrorIs(t, err, apperrors.ErrReviewInvalidScore)
		})
	}
}

func TestAdmin_SubmitReviewForRejectedTeam(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	_, err := svc.SubmitReview(context.Background(), 42, 3, map[string]string{"Impact": "5"}, "")
	assert.ErrorIs(t, err, apperrors.ErrTeamNotSelectable)
}

func TestAdmin_SubmissionDetailCarriesPreviousReview(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	_, err := svc.SubmitReview(context.Background(), 42, 1, map[string]string{"Impact": "7"}, "mine")
	require.NoError(t, err)
	_, err = svc.SubmitReview(context.Background(), 43, 1, map[string]string{"Impact": "4"}, "theirs")
	require.NoError(t, err)

	detail, err := svc.GetSubmissionDetail(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Len(t, detail.Reviews, 2)
	require.NotNil(t, detail.PreviousReview)
	assert.Equal(t, "mine", detail.PreviousReview.Comments)

	fresh, err := svc.GetSubmissionDetail(context.Background(), 1, 99)
	require.NoError(t, err)
	assert.Nil(t, fresh.PreviousReview)
}

func TestAdmin_EliminateTeam(t *testing.T) {
	svc, teams, _, _ := newAdminFixture()

	team, err := svc.UpdateTeamStatus(context.Background(), 10, "Rejected")
	require.NoError(t, err)
	assert.Equal(t, models.TeamStatusRejected, team.Status)
	assert.Equal(t, models.TeamStatusRejected, teams.statuses[10])
}

func TestAdmin_EliminateAcceptsAnyCase(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	team, err := svc.UpdateTeamStatus(context.Background(), 10, "rejected")
	require.NoError(t, err)
	assert.Equal(t, models.TeamStatusRejected, team.Status)
}

func TestAdmin_EliminateIsOneWay(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	_, err := svc.UpdateTeamStatus(context.Background(), 11, "Rejected")
	assert.ErrorIs(t, err, apperrors.ErrTeamAlreadyRejected)
}

func TestAdmin_NoReinstatement(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	_, err := svc.UpdateTeamStatus(context.Background(), 11, "Active")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTeamStatus)
}
