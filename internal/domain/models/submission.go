package models

import "time"

type SubmissionType string

const (
	SubmissionReview1 SubmissionType = "review1"
	SubmissionReview2 SubmissionType = "review2"
	SubmissionFinal   SubmissionType = "final"
)

type SubmissionLinks struct {
	Presentation string `json:"presentation_link,omitempty"`
	GitHub       string `json:"github_link,omitempty"`
	Figma        string `json:"figma_link,omitempty"`
	File         string `json:"file,omitempty"`
}

func (l SubmissionLinks) Empty() bool {
	return l.Presentation == "" && l.GitHub == "" && l.Figma == "" && l.File == ""
}

type Submission struct {
	SubmissionID int             `json:"submission_id"`
	TeamID       int             `json:"-"`
	Type         SubmissionType  `json:"type"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Links        SubmissionLinks `json:"links"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
