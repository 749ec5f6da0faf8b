package service

import (
	"fmt"
	"net/url"

	"github.com/hashicorp/go-multierror"

	"hackathon-portal/internal/domain/models"
)

type IdeaPayload struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	PresentationLink string `json:"presentation_link"`
}

type ProjectPayload struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	GithubLink       string `json:"github_link"`
	FigmaLink        string `json:"figma_link"`
	PresentationLink string `json:"presentation_link"`
}

type ModifyPayload struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	GithubLink       string `json:"github_link"`
	FigmaLink        string `json:"figma_link"`
	PresentationLink string `json:"presentation_link"`
}

func (p IdeaPayload) Validate() error {
	var errs *multierror.Error

	if len(p.Title) < 3 || len(p.Title) > 100 {
		errs = multierror.Append(errs, fmt.Errorf("title must be 3 to 100 characters"))
	}
	if len(p.Description) < 10 || len(p.Description) > 1000 {
		errs = multierror.Append(errs, fmt.Errorf("description must be 10 to 1000 characters"))
	}
	if p.PresentationLink != "" && !validURL(p.PresentationLink) {
		errs = multierror.Append(errs, fmt.Errorf("presentation_link must be a valid URL"))
	}

	return errs.ErrorOrNil()
}

func (p ProjectPayload) Validate() error {
	var errs *multierror.Error

	if len(p.Title) < 3 {
		errs = multierror.Append(errs, fmt.Errorf("title must be at least 3 characters"))
	}
	if len(p.Description) < 10 {
		errs = multierror.Append(errs, fmt.Errorf("description must be at least 10 characters"))
	}
	if !validURL(p.GithubLink) {
		errs = multierror.Append(errs, fmt.Errorf("github_link must be a valid URL"))
	}
	if p.FigmaLink != "" && !validURL(p.FigmaLink) {
		errs = multierror.Append(errs, fmt.Errorf("figma_link must be a valid URL"))
	}
	if p.PresentationLink != "" && !validURL(p.PresentationLink) {
		errs = multierror.Append(errs, fmt.Errorf("presentation_link must be a valid URL"))
	}

	return errs.ErrorOrNil()
}

// ValidateFor applies the stage's own form rules: idea rules for review1,
// project rules for the later stages.
func (p ModifyPayload) ValidateFor(t models.SubmissionType) error {
	if t == models.SubmissionReview1 {
		idea := IdeaPayload{
			Title:            p.Title,
			Description:      p.Description,
			PresentationLink: p.PresentationLink,
		}
		var errs *multierror.Error
		errs = multierror.Append(errs, idea.Validate())
		if p.GithubLink != "" && !validURL(p.GithubLink) {
			errs = multierror.Append(errs, fmt.Errorf("github_link must be a valid URL"))
		}
		return errs.ErrorOrNil()
	}

	project := ProjectPayload{
		Title:            p.Title,
		Description:      p.Description,
		GithubLink:       p.GithubLink,
		FigmaLink:        p.FigmaLink,
		PresentationLink: p.PresentationLink,
	}
	return project.Validate()
}

func validURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
