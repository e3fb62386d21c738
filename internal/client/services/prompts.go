package services

import (
	"context"
	"fmt"

	"github.com/sachink160/multitool-client/internal/client/client"
	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/quota"
	"github.com/sachink160/multitool-client/internal/client/resource"
	"github.com/sachink160/multitool-client/internal/client/validate"
	"github.com/sachink160/multitool-client/internal/logging"
)

type PromptAPI interface {
	CreatePrompt(ctx context.Context, req models.DynamicPromptCreate) (*models.DynamicPrompt, error)
	ListPrompts(ctx context.Context) ([]models.DynamicPrompt, error)
	GetPrompt(ctx context.Context, id string) (*models.DynamicPrompt, error)
	UpdatePrompt(ctx context.Context, id string, upd models.DynamicPromptUpdate) (*models.DynamicPrompt, error)
	DeletePrompt(ctx context.Context, id string) error
	UploadPromptDocument(ctx context.Context, file client.FilePart, promptID string) (models.PromptUploadResponse, error)
	ListProcessedDocuments(ctx context.Context) ([]models.ProcessedDocument, error)
	GetProcessedDocument(ctx context.Context, id string) (*models.ProcessedDocument, error)
	GetProcessingResult(ctx context.Context, id string) (*models.DocumentProcessResult, error)
	Usage(ctx context.Context) (*models.UsageInfo, error)
}

// PromptService manages prompt templates and the documents processed with
// them. Processing status only changes on an explicit Refresh.
type PromptService struct {
	api    PromptAPI
	logger logging.Logger

	Prompts   *resource.Collection[models.DynamicPrompt]
	Processed *resource.Collection[models.ProcessedDocument]
	usage     *snapshot[models.UsageInfo]
}

func NewPromptService(api PromptAPI, logger logging.Logger) *PromptService {
	return &PromptService{
		api:       api,
		logger:    logger,
		Prompts:   resource.NewCollection(api.ListPrompts),
		Processed: resource.NewCollection(api.ListProcessedDocuments),
		usage:     newSnapshot(api.Usage),
	}
}

func (s *PromptService) Refresh(ctx context.Context) resource.SectionErrors {
	return resource.LoadSections(ctx, s.logger,
		resource.Section{Name: "prompts", Load: s.Prompts.Refresh},
		resource.Section{Name: "processed", Load: s.Processed.Refresh},
		resource.Section{Name: "usage", Load: s.usage.Refresh},
	)
}

// Gate is the upload quota from the latest usage snapshot.
func (s *PromptService) Gate() quota.Gate {
	return quota.FromUsage(s.usage.Get(), quota.FeaturePromptDocuments)
}

func (s *PromptService) Create(ctx context.Context, req models.DynamicPromptCreate) (*models.DynamicPrompt, error) {
	if req.GPTModel == "" {
		req.GPTModel = models.DefaultGPTModel
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var p *models.DynamicPrompt
	err := s.Prompts.Mutate(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.api.CreatePrompt(ctx, req)
		return err
	})
	return p, err
}

func (s *PromptService) Get(ctx context.Context, id string) (*models.DynamicPrompt, error) {
	return s.api.GetPrompt(ctx, id)
}

func (s *PromptService) Update(ctx context.Context, id string, upd models.DynamicPromptUpdate) (*models.DynamicPrompt, error) {
	if err := validate.Struct(upd); err != nil {
		return nil, err
	}
	var p *models.DynamicPrompt
	err := s.Prompts.Mutate(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.api.UpdatePrompt(ctx, id, upd)
		return err
	})
	return p, err
}

func (s *PromptService) Delete(ctx context.Context, id string) error {
	return s.Prompts.Mutate(ctx, func(ctx context.Context) error {
		return s.api.DeletePrompt(ctx, id)
	})
}

// UploadDocument submits the file at path for processing with promptID.
// The file and the quota are checked before any request is made.
func (s *PromptService) UploadDocument(ctx context.Context, path, promptID string) (models.PromptUploadResponse, error) {
	if promptID == "" {
		return models.PromptUploadResponse{}, &validate.ValidationError{Field: "prompt_id", Message: "This field is required"}
	}
	part, err := readUpload(path, validate.PromptDocumentRules)
	if err != nil {
		return models.PromptUploadResponse{}, err
	}
	if err := s.Gate().Check(); err != nil {
		return models.PromptUploadResponse{}, err
	}

	res, err := s.api.UploadPromptDocument(ctx, part, promptID)
	if err != nil {
		return models.PromptUploadResponse{}, err
	}

	resource.LoadSections(ctx, s.logger,
		resource.Section{Name: "processed", Load: s.Processed.Refresh},
		resource.Section{Name: "usage", Load: s.usage.Refresh},
	)
	return res, nil
}

func (s *PromptService) ProcessedDocument(ctx context.Context, id string) (*models.ProcessedDocument, error) {
	return s.api.GetProcessedDocument(ctx, id)
}

// Result returns the processing output; it fails for documents that have
// not completed.
func (s *PromptService) Result(ctx context.Context, id string) (*models.DocumentProcessResult, error) {
	doc, ok := s.Processed.Find(func(d models.ProcessedDocument) bool { return d.ID == id })
	if ok && doc.ProcessingStatus != models.StatusCompleted {
		return nil, fmt.Errorf("document %s is %s", id, doc.ProcessingStatus)
	}
	return s.api.GetProcessingResult(ctx, id)
}
