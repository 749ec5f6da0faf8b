package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon-portal/internal/apperrors"
	"hackathon-portal/internal/domain/models"
	"hackathon-portal/internal/stage"
	"hackathon-portal/internal/timeline"
)

func TestDashboard_HomeWithTeam(t *testing.T) {
	users := newFakeUsers(leaderOf(10))
	teams := newFakeTeams(models.Team{TeamID: 10, TeamName: "Night Owls", Status: models.TeamStatusActive})
	teams.members[10] = []models.Member{
		{UserID: 1, Name: "Lead", IsLeader: true},
		{UserID: 2, Name: "Member"},
	}
	subs := newFakeSubs(models.Submission{SubmissionID: 1, TeamID: 10, Type: models.SubmissionReview1})
	phases := &fakePhases{phase: timeline.PhaseReview1}
	svc := NewDashboardService(discardLogger(), users, teams, subs, phases)

	home, err := svc.Home(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, timeline.PhaseReview1, home.CurrentPhase)
	assert.True(t, home.Windows.Review1)
	require.NotNil(t, home.Team)
	assert.Equal(t, "Night Owls", home.Team.TeamName)
	assert.Len(t, home.Members, 2)
	require.NotNil(t, home.Latest)
	assert.Equal(t, 1, home.Latest.SubmissionID)
	assert.Equal(t, stage.ActionModify, home.Action.Kind)
	assert.Equal(t, "Modify Idea", home.Action.Label)
}

func TestDashboard_HomeWithoutTeam(t *testing.T) {
	users := newFakeUsers(models.User{UserID: 9, Name: "Solo", Role: models.RoleUser})
	phases := &fakePhases{phase: timeline.PhaseReview1}
	svc := NewDashboardService(discardLogger(), users, newFakeTeams(), newFakeSubs(), phases)

	home, err := svc.Home(context.Background(), 9)
	require.NoError(t, err)

	assert.Nil(t, home.Team)
	assert.Empty(t, home.Members)
	assert.Nil(t, home.Latest)
	assert.Equal(t, stage.ActionSubmit, home.Action.Kind)
}

func TestDashboard_HomeClosedPhase(t *testing.T) {
	users := newFakeUsers(leaderOf(10))
	teams := newFakeTeams(models.Team{TeamID: 10, Status: models.TeamStatusActive})
	phases := &fakePhases{phase: "Speaker Sessions"}
	svc := NewDashboardService(discardLogger(), users, teams, newFakeSubs(), phases)

	home, err := svc.Home(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, stage.ActionClosed, home.Action.Kind)
	assert.False(t, home.Action.Invocable())
}

func TestDashboard_TeamSubmissions(t *testing.T) {
	users := newFakeUsers(leaderOf(10))
	subs := newFakeSubs(
		models.Submission{SubmissionID: 1, TeamID: 10, Type: models.SubmissionReview1},
		models.Submission{SubmissionID: 2, TeamID: 99, Type: models.SubmissionReview1},
	)
	phases := &fakePhases{phase: timeline.PhaseReview1}
	svc := NewDashboardService(discardLogger(), users, newFakeTeams(), subs, phases)

	got, err := svc.TeamSubmissions(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].SubmissionID)
}

func TestDashboard_TeamSubmissionsWithoutTeam(t *testing.T) {
	users := newFakeUsers(models.User{UserID: 9, Role: models.RoleUser})
	phases := &fakePhases{phase: timeline.PhaseReview1}
	svc := NewDashboardService(discardLogger(), users, newFakeTeams(), newFakeSubs(), phases)

	_, err := svc.TeamSubmissions(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrNoTeam)
}
