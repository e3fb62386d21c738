package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func (c *HTTPClient) UploadResume(ctx context.Context, file FilePart) (*models.ResumeItem, error) {
	var out models.ResumeItem
	if err := c.Do(ctx, uploadRequest("/resumes/upload", file), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListResumes(ctx context.Context) ([]models.ResumeItem, error) {
	var out []models.ResumeItem
	err := c.Do(ctx, Request{Path: "/resumes/resumes"}, &out)
	return out, err
}

func (c *HTTPClient) CreateRequirement(ctx context.Context, req models.JobRequirementCreate) (*models.JobRequirementItem, error) {
	var out models.JobRequirementItem
	if err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/resumes/requirements", JSON: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListRequirements(ctx context.Context) ([]models.JobRequirementItem, error) {
	var out []models.JobRequirementItem
	err := c.Do(ctx, Request{Path: "/resumes/requirements"}, &out)
	return out, err
}

func (c *HTTPClient) UpdateRequirement(ctx context.Context, id string, upd models.JobRequirementUpdate) (*models.JobRequirementItem, error) {
	var out models.JobRequirementItem
	if err := c.Do(ctx, Request{Method: http.MethodPut, Path: "/resumes/requirements/" + url.PathEscape(id), JSON: upd}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MatchResumes scores resumeIDs against requirementID.
func (c *HTTPClient) MatchResumes(ctx context.Context, requirementID string, resumeIDs []string) ([]models.ResumeMatchItem, error) {
	var out []models.ResumeMatchItem
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/resumes/match",
		Multipart: &Multipart{Fields: []Field{
			{Name: "requirement_id", Value: requirementID},
			{Name: "resume_ids", Value: strings.Join(resumeIDs, ",")},
		}},
	}, &out)
	return out, err
}

// ListMatches returns match history, filtered when requirementID is set.
func (c *HTTPClient) ListMatches(ctx context.Context, requirementID string) ([]models.ResumeMatchItem, error) {
	var q url.Values
	if requirementID != "" {
		q = url.Values{"requirement_id": {requirementID}}
	}
	var out []models.ResumeMatchItem
	err := c.Do(ctx, Request{Path: "/resumes/matches", Query: q}, &out)
	return out, err
}
