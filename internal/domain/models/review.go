package models

import "time"

type Review struct {
	ReviewID     int       `db:"review_id" json:"review_id"`
	SubmissionID int       `db:"submission_id" json:"submission_id"`
	JudgeID      int       `db:"judge_id" json:"judge_id"`
	Score        int       `db:"score" json:"score"`
	Comments     string    `db:"comments" json:"comments"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
