package repo

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hackathon-portal/internal/apperrors"
	"hackathon-portal/internal/domain/models"
)

type TeamRepo struct {
	storage *sqlx.DB
}

func NewTeamRepo(storage *sqlx.DB) *TeamRepo {
	return &TeamRepo{storage: storage}
}

func (r *TeamRepo) GetTeam(teamID int) (*models.Team, error) {
	const op = "repo.team.GetTeam"

	query := `
		SELECT team_id, team_name, track_name, problem_statement, idea, status
		FROM teams
		WHERE team_id = $1
	`

	var team models.Team
	err := r.storage.Get(&team, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrTeamNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &team, nil
}

func (r *TeamRepo) GetMembers(teamID int) ([]models.Member, error) {
	const op = "repo.team.GetMembers"

	query := `
		SELECT user_id, name, email, is_leader
		FROM users
		WHERE team_id = $1
		ORDER BY is_leader DESC, name
	`

	var members []models.Member
	if err := r.storage.Select(&members, query, teamID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return members, nil
}

type memberRow struct {
	TeamID int `db:"team_id"`
	models.Member
}

func (r *TeamRepo) ListTeamsWithMembers() ([]models.Team, error) {
	const op = "repo.team.ListTeamsWithMembers"

	teamsQuery := `
		SELECT team_id, team_name, track_name, problem_statement, idea, status
		FROM teams
		ORDER BY team_name
	`

	var teams []models.Team
	if err := r.storage.Select(&teams, teamsQuery); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	membersQuery := `
		SELECT team_id, user_id, name, email, is_leader
		FROM users
		WHERE team_id IS NOT NULL
		ORDER BY is_leader DESC, name
	`

	var rows []memberRow
	if err := r.storage.Select(&rows, membersQuery); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byTeam := make(map[int][]models.Member)
	for _, row := range rows {
		byTeam[row.TeamID] = append(byTeam[row.TeamID], row.Member)
	}

	for i := range teams {
		teams[i].Members = byTeam[teams[i].TeamID]
	}

	return teams, nil
}

func (r *TeamRepo) UpdateProblemStatement(teamID int, problemStatement string) error {
	const op = "repo.team.UpdateProblemStatement"

	query := `UPDATE teams SET problem_statement = $1 WHERE team_id = $2`

	result, err := r.storage.Exec(query, problemStatement, teamID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, apperrors.ErrTeamNotFound)
	}

	return nil
}

func (r *TeamRepo) UpdateStatus(teamID int, status string) error {
	const op = "repo.team.UpdateStatus"

	query := `UPDATE teams SET status = $1 WHERE team_id = $2`

	result, err := r.storage.Exec(query, status, teamID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, apperrors.ErrTeamNotFound)
	}

	return nil
}
