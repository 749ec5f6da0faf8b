package repo

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hackathon-portal/internal/domain/models"
)

type ReviewRepo struct {
	storage *sqlx.DB
}

func NewReviewRepo(storage *sqlx.DB) *ReviewRepo {
	return &ReviewRepo{storage: storage}
}

// Upsert stores a judge's review, replacing any prior review by the same
// judge for the same submission.
func (r *ReviewRepo) Upsert(review models.Review) (*models.Review, error) {
	const op = "repo.review.Upsert"

	query := `
		INSERT INTO reviews (submission_id, judge_id, score, comments)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (submission_id, judge_id)
		DO UPDATE SET score = EXCLUDED.score, comments = EXCLUDED.comments, created_at = now()
		RETURNING review_id, submission_id, judge_id, score, comments, created_at
	`

	var stored models.Review
	err := r.storage.Get(&stored, query,
		review.SubmissionID, review.JudgeID, review.Score, review.Comments)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &stored, nil
}

func (r *ReviewRepo) ListBySubmission(submissionID int) ([]models.Review, error) {
	const op = "repo.review.ListBySubmission"

	query := `
		SELECT review_id, submission_id, judge_id, score, comments, created_at
		FROM reviews
		WHERE submission_id = $1
		ORDER BY created_at
	`

	var reviews []models.Review
	if err := r.storage.Select(&reviews, query, submissionID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reviews, nil
}

// GetByJudge returns the judge's previous review for a submission, or nil
// when there is none.
func (r *ReviewRepo) GetByJudge(submissionID, judgeID int) (*models.Review, error) {
	const op = "repo.review.GetByJudge"

	query := `
		SELECT review_id, submission_id, judge_id, score, comments, created_at
		FROM reviews
		WHERE submission_id = $1 AND judge_id = $2
	`

	var review models.Review
	err := r.storage.Get(&review, query, submissionID, judgeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &review, nil
}
