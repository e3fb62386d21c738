package services

import (
	"context"

	"github.com/sachink160/multitool-client/internal/client/client"
	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/resource"
	"github.com/sachink160/multitool-client/internal/client/validate"
)

type DocumentAPI interface {
	UploadDocument(ctx context.Context, file client.FilePart) (*models.Document, error)
	ListDocuments(ctx context.Context) ([]models.Document, error)
	AskDocument(ctx context.Context, req models.AskDocumentRequest) (models.AnswerResponse, error)
}

// DocumentService backs document Q&A.
type DocumentService struct {
	api       DocumentAPI
	Documents *resource.Collection[models.Document]
}

func NewDocumentService(api DocumentAPI) *DocumentService {
	return &DocumentService{api: api, Documents: resource.NewCollection(api.ListDocuments)}
}

func (s *DocumentService) Refresh(ctx context.Context) error {
	return s.Documents.Refresh(ctx)
}

func (s *DocumentService) Upload(ctx context.Context, path string) (*models.Document, error) {
	part, err := readUpload(path, validate.FileRules{})
	if err != nil {
		return nil, err
	}
	var doc *models.Document
	err = s.Documents.Mutate(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.api.UploadDocument(ctx, part)
		return err
	})
	return doc, err
}

// Ask runs a query of queryType against one document. An empty queryType
// means a plain question.
func (s *DocumentService) Ask(ctx context.Context, documentID, question, queryType string) (string, error) {
	if queryType == "" {
		queryType = models.QueryQuestion
	}
	req := models.AskDocumentRequest{DocumentID: documentID, Question: question, QueryType: queryType}
	if err := validate.Struct(req); err != nil {
		return "", err
	}
	res, err := s.api.AskDocument(ctx, req)
	if err != nil {
		return "", err
	}
	return res.Response, nil
}
