package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sachink160/multitool-client/internal/client/client"
	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/resource"
	"github.com/sachink160/multitool-client/internal/client/validate"
	"github.com/sachink160/multitool-client/internal/logging"
)

type ResumeAPI interface {
	UploadResume(ctx context.Context, file client.FilePart) (*models.ResumeItem, error)
	ListResumes(ctx context.Context) ([]models.ResumeItem, error)
	CreateRequirement(ctx context.Context, req models.JobRequirementCreate) (*models.JobRequirementItem, error)
	ListRequirements(ctx context.Context) ([]models.JobRequirementItem, error)
	UpdateRequirement(ctx context.Context, id string, upd models.JobRequirementUpdate) (*models.JobRequirementItem, error)
	MatchResumes(ctx context.Context, requirementID string, resumeIDs []string) ([]models.ResumeMatchItem, error)
	ListMatches(ctx context.Context, requirementID string) ([]models.ResumeMatchItem, error)
}

// MatchView is a match joined by id against the locally held lists.
// Names are empty when the referenced entity is not in the current list.
type MatchView struct {
	models.ResumeMatchItem
	ResumeName       string
	RequirementTitle string
}

type ResumeService struct {
	api          ResumeAPI
	logger       logging.Logger
	Resumes      *resource.Collection[models.ResumeItem]
	Requirements *resource.Collection[models.JobRequirementItem]
}

func NewResumeService(api ResumeAPI, logger logging.Logger) *ResumeService {
	return &ResumeService{
		api:          api,
		logger:       logger,
		Resumes:      resource.NewCollection(api.ListResumes),
		Requirements: resource.NewCollection(api.ListRequirements),
	}
}

func (s *ResumeService) Refresh(ctx context.Context) resource.SectionErrors {
	return resource.LoadSections(ctx, s.logger,
		resource.Section{Name: "resumes", Load: s.Resumes.Refresh},
		resource.Section{Name: "requirements", Load: s.Requirements.Refresh},
	)
}

// Upload uploads every file in order and refetches the resume list once.
// Files that fail are reported together; the others are still uploaded.
func (s *ResumeService) Upload(ctx context.Context, paths ...string) ([]models.ResumeItem, error) {
	var (
		uploaded []models.ResumeItem
		errs     []error
	)
	err := s.Resumes.Mutate(ctx, func(ctx context.Context) error {
		for _, p := range paths {
			part, err := readUpload(p, validate.FileRules{})
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", p, err))
				continue
			}
			item, err := s.api.UploadResume(ctx, part)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", p, err))
				continue
			}
			uploaded = append(uploaded, *item)
		}
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}
	return uploaded, errors.Join(errs...)
}

func (s *ResumeService) CreateRequirement(ctx context.Context, req models.JobRequirementCreate) (*models.JobRequirementItem, error) {
	if req.GPTModel == "" {
		req.GPTModel = models.DefaultGPTModel
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var out *models.JobRequirementItem
	err := s.Requirements.Mutate(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.api.CreateRequirement(ctx, req)
		return err
	})
	return out, err
}

func (s *ResumeService) UpdateRequirement(ctx context.Context, id string, upd models.JobRequirementUpdate) (*models.JobRequirementItem, error) {
	if err := validate.Struct(upd); err != nil {
		return nil, err
	}
	var out *models.JobRequirementItem
	err := s.Requirements.Mutate(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.api.UpdateRequirement(ctx, id, upd)
		return err
	})
	return out, err
}

// Match scores resumeIDs against requirementID, best score first.
func (s *ResumeService) Match(ctx context.Context, requirementID string, resumeIDs []string) ([]MatchView, error) {
	if requirementID == "" {
		return nil, &validate.ValidationError{Field: "requirement_id", Message: "This field is required"}
	}
	if len(resumeIDs) == 0 {
		return nil, &validate.ValidationError{Field: "resume_ids", Message: "Select at least one resume"}
	}
	items, err := s.api.MatchResumes(ctx, requirementID, resumeIDs)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(items, func(a, b models.ResumeMatchItem) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return s.join(items), nil
}

// History lists past matches, newest first, optionally for one requirement.
func (s *ResumeService) History(ctx context.Context, requirementID string) ([]MatchView, error) {
	items, err := s.api.ListMatches(ctx, requirementID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(items, func(a, b models.ResumeMatchItem) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
	return s.join(items), nil
}

func (s *ResumeService) join(items []models.ResumeMatchItem) []MatchView {
	resumes := make(map[string]string)
	for _, r := range s.Resumes.Items() {
		resumes[r.ID] = r.OriginalFilename
	}
	reqs := make(map[string]string)
	for _, r := range s.Requirements.Items() {
		reqs[r.ID] = r.Title
	}

	out := make([]MatchView, 0, len(items))
	for _, it := range items {
		out = append(out, MatchView{
			ResumeMatchItem:  it,
			ResumeName:       resumes[it.ResumeID],
			RequirementTitle: reqs[it.RequirementID],
		})
	}
	return out
}
