package services

import (
	"context"

	"github.com/sachink160/multitool-client/internal/client/client"
	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/resource"
	"github.com/sachink160/multitool-client/internal/client/validate"
)

type HRAPI interface {
	UploadHRDocument(ctx context.Context, file client.FilePart) (*models.HRDocument, error)
	ListHRDocuments(ctx context.Context) ([]models.HRDocument, error)
	ActivateHRDocument(ctx context.Context, id string) error
	DeactivateHRDocument(ctx context.Context, id string) error
	AskHR(ctx context.Context, question string) (models.AnswerResponse, error)
}

// HRService manages the HR policy documents the HR assistant answers from.
type HRService struct {
	api       HRAPI
	Documents *resource.Collection[models.HRDocument]
}

func NewHRService(api HRAPI) *HRService {
	return &HRService{api: api, Documents: resource.NewCollection(api.ListHRDocuments)}
}

func (s *HRService) Refresh(ctx context.Context) error {
	return s.Documents.Refresh(ctx)
}

func (s *HRService) Upload(ctx context.Context, path string) (*models.HRDocument, error) {
	part, err := readUpload(path, validate.FileRules{})
	if err != nil {
		return nil, err
	}
	var doc *models.HRDocument
	err = s.Documents.Mutate(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.api.UploadHRDocument(ctx, part)
		return err
	})
	return doc, err
}

// SetActive activates or deactivates a document.
func (s *HRService) SetActive(ctx context.Context, id string, active bool) error {
	return s.Documents.Mutate(ctx, func(ctx context.Context) error {
		if active {
			return s.api.ActivateHRDocument(ctx, id)
		}
		return s.api.DeactivateHRDocument(ctx, id)
	})
}

func (s *HRService) Ask(ctx context.Context, question string) (string, error) {
	if err := validate.Struct(models.AskHRRequest{Question: question}); err != nil {
		return "", err
	}
	res, err := s.api.AskHR(ctx, question)
	if err != nil {
		return "", err
	}
	return res.Response, nil
}
