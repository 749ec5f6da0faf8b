package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"hackathon-portal/internal/apperrors"
	"hackathon-portal/internal/domain/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUsers struct {
	byID    map[int]models.User
	byEmail map[string]models.User
	nextID  int
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{
		byID:    make(map[int]models.User),
		byEmail: make(map[string]models.User),
		nextID:  100,
	}
	for _, u := range users {
		f.byID[u.UserID] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUsers) CreateParticipant(name, email, passwordHash string) (*models.User, error) {
	if _, ok := f.byEmail[email]; ok {
		return nil, apperrors.ErrEmailTaken
	}
	f.nextID++
	user := models.User{
		UserID:       f.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	}
	f.byID[user.UserID] = user
	f.byEmail[email] = user
	return &user, nil
}

func (f *fakeUsers) GetByEmail(email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

func (f *fakeUsers) GetByID(userID int) (*models.User, error) {
	user, ok := f.byID[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

type fakeTeams struct {
	teams             map[int]models.Team
	members           map[int][]models.Member
	problemStatements map[int]string
	statuses          map[int]string
}

func newFakeTeams(teams ...models.Team) *fakeTeams {
	f := &fakeTeams{
		teams:             make(map[int]models.Team),
		members:           make(map[int][]models.Member),
		problemStatements: make(map[int]string),
		statuses:          make(map[int]string),
	}
	for _, t := range teams {
		f.teams[t.TeamID] = t
	}
	return f
}

func (f *fakeTeams) GetTeam(teamID int) (*models.Team, error) {
	team, ok := f.teams[teamID]
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	return &team, nil
}

func (f *fakeTeams) GetMembers(teamID int) ([]models.Member, error) {
	return f.members[teamID], nil
}

func (f *fakeTeams) ListTeamsWithMembers() ([]models.Team, error) {
	out := make([]models.Team, 0, len(f.teams))
	for _, t := range f.teams {
		t.Members = f.members[t.TeamID]
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTeams) UpdateProblemStatement(teamID int, problemStatement string) error {
	if _, ok := f.teams[teamID]; !ok {
		return apperrors.ErrTeamNotFound
	}
	f.problemStatements[teamID] = problemStatement
	return nil
}

func (f *fakeTeams) UpdateStatus(teamID int, status string) error {
	team, ok := f.teams[teamID]
	if !ok {
		return apperrors.ErrTeamNotFound
	}
	team.Status = status
	f.teams[teamID] = team
	f.statuses[teamID] = status
	return nil
}

type fakeSubs struct {
	subs   map[int]models.Submission
	nextID int
}

func newFakeSubs(subs ...models.Submission) *fakeSubs {
	f := &fakeSubs{
		subs:   make(map[int]models.Submission),
		nextID: 1000,
	}
	for _, s := range subs {
		f.subs[s.SubmissionID] = s
	}
	return f
}

func (f *fakeSubs) ListByTeam(teamID int) ([]models.Submission, error) {
	var out []models.Submission
	for _, s := range f.subs {
		if s.TeamID == teamID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubs) GetByID(submissionID int) (*models.Submission, error) {
	sub, ok := f.subs[submissionID]
	if !ok {
		return nil, apperrors.ErrSubmissionNotFound
	}
	return &sub, nil
}

func (f *fakeSubs) Create(sub models.Submission) (*models.Submission, error) {
	for _, existing := range f.subs {
		if existing.TeamID == sub.TeamID && existing.Type == sub.Type {
			return nil, apperrors.ErrSubmissionExists
		}
	}
	f.nextID++
	sub.SubmissionID = f.nextID
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = sub.CreatedAt
	f.subs[sub.SubmissionID] = sub
	return &sub, nil
}

func (f *fakeSubs) Update(sub models.Submission) (*models.Submission, error) {
	if _, ok := f.subs[sub.SubmissionID]; !ok {
		return nil, apperrors.ErrSubmissionNotFound
	}
	sub.UpdatedAt = time.Now()
	f.subs[sub.SubmissionID] = sub
	return &sub, nil
}

type fakePhases struct {
	phase string
	fail  bool
}

func (f *fakePhases) GetPhase() (string, error) {
	if f.fail {
		return "", fmt.Errorf("phase store unavailable")
	}
	return f.phase, nil
}

func (f *fakePhases) SetPhase(phase string) error {
	if f.fail {
		return fmt.Errorf("phase store unavailable")
	}
	f.phase = phase
	return nil
}

type fakeReviews struct {
	reviews map[string]models.Review
	nextID  int
}

func newFakeReviews() *fakeReviews {
	return &fakeReviews{
		reviews: make(map[string]models.Review),
		nextID:  500,
	}
}

func reviewKey(submissionID, judgeID int) string {
	return fmt.Sprintf("%d:%d", submissionID, judgeID)
}

func (f *fakeReviews) Upsert(review models.Review) (*models.Review, error) {
	key := reviewKey(review.SubmissionID, review.JudgeID)
	if existing, ok := f.reviews[key]; ok {
		review.ReviewID = existing.ReviewID
		review.CreatedAt = existing.CreatedAt
	} else {
		f.nextID++
		review.ReviewID = f.nextID
		review.CreatedAt = time.Now()
	}
	f.reviews[key] = review
	return &review, nil
}

func (f *fakeReviews) ListBySubmission(submissionID int) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.SubmissionID == submissionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) GetByJudge(submissionID, judgeID int) (*models.Review, error) {
	review, ok := f.reviews[reviewKey(submissionID, judgeID)]
	if !ok {
		return nil, nil
	}
	return &review, nil
}

type fakeBlacklist struct {
	added map[string]time.Duration
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{added: make(map[string]time.Duration)}
}

func (f *fakeBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	f.added[jti] = ttl
	return nil
}
