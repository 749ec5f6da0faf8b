package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"hackathon-portal/internal/apperrors"
	"hackathon-portal/internal/domain/models"
)

type SubmissionRepo struct {
	storage *sqlx.DB
}

func NewSubmissionRepo(storage *sqlx.DB) *SubmissionRepo {
	return &SubmissionRepo{storage: storage}
}

type submissionRow struct {
	SubmissionID     int       `db:"submission_id"`
	TeamID           int       `db:"team_id"`
	Type             string    `db:"type"`
	Title            string    `db:"title"`
	Description      string    `db:"description"`
	PresentationLink string    `db:"presentation_link"`
	GithubLink       string    `db:"github_link"`
	FigmaLink        string    `db:"figma_link"`
	FileLink         string    `db:"file_link"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (row submissionRow) toModel() models.Submission {
	return models.Submission{
		SubmissionID: row.SubmissionID,
		TeamID:       row.TeamID,
		Type:         models.SubmissionType(row.Type),
		Title:        row.Title,
		Description:  row.Description,
		Links: models.SubmissionLinks{
			Presentation: row.PresentationLink,
			GitHub:       row.GithubLink,
			Figma:        row.FigmaLink,
			File:         row.FileLink,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

const submissionColumns = `
	submission_id, team_id, type, title, description,
	presentation_link, github_link, figma_link, file_link,
	created_at, updated_at
`

func (r *SubmissionRepo) ListByTeam(teamID int) ([]models.Submission, error) {
	const op = "repo.submission.ListByTeam"

	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE team_id = $1 ORDER BY created_at`

	var rows []submissionRow
	if err := r.storage.Select(&rows, query, teamID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	subs := make([]models.Submission, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, row.toModel())
	}

	return subs, nil
}

func (r *SubmissionRepo) GetByID(submissionID int) (*models.Submission, error) {
	const op = "repo.submission.GetByID"

	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE submission_id = $1`

	var row submissionRow
	err := r.storage.Get(&row, query, submissionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrSubmissionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sub := row.toModel()
	return &sub, nil
}

func (r *SubmissionRepo) Create(sub models.Submission) (*models.Submission, error) {
	const op = "repo.submission.Create"

	query := `
		INSERT INTO submissions (team_id, type, title, description,
			presentation_link, github_link, figma_link, file_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + submissionColumns

	var row submissionRow
	err := r.storage.Get(&row, query,
		sub.TeamID, string(sub.Type), sub.Title, sub.Description,
		sub.Links.Presentation, sub.Links.GitHub, sub.Links.Figma, sub.Links.File)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrSubmissionExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created := row.toModel()
	return &created, nil
}

func (r *SubmissionRepo) Update(sub models.Submission) (*models.Submission, error) {
	const op = "repo.submission.Update"

	query := `
		UPDATE submissions
		SET title = $1, description = $2,
			presentation_link = $3, github_link = $4, figma_link = $5, file_link = $6,
			updated_at = now()
		WHERE submission_id = $7
		RETURNING ` + submissionColumns

	var row submissionRow
	err := r.storage.Get(&row, query,
		sub.Title, sub.Description,
		sub.Links.Presentation, sub.Links.GitHub, sub.Links.Figma, sub.Links.File,
		sub.SubmissionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrSubmissionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated := row.toModel()
	return &updated, nil
}
