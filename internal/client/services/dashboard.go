package services

import (
	"context"

	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/resource"
	"github.com/sachink160/multitool-client/internal/logging"
)

type DashboardAPI interface {
	ListDocuments(ctx context.Context) ([]models.Document, error)
	ListHRDocuments(ctx context.Context) ([]models.HRDocument, error)
	ListUploadedVideos(ctx context.Context) ([]models.VideoFile, error)
	ChatHistory(ctx context.Context) ([]models.ChatMessage, error)
}

// Summary counts the user's content. Sections that failed to load count as
// zero and are listed in Failed.
type Summary struct {
	Documents    int
	HRDocuments  int
	Videos       int
	ChatMessages int
	Failed       resource.SectionErrors
}

type DashboardService struct {
	api    DashboardAPI
	logger logging.Logger
}

func NewDashboardService(api DashboardAPI, logger logging.Logger) *DashboardService {
	return &DashboardService{api: api, logger: logger}
}

func (s *DashboardService) Load(ctx context.Context) Summary {
	var sum Summary
	sum.Failed = resource.LoadSections(ctx, s.logger,
		resource.Section{Name: "documents", Load: func(ctx context.Context) error {
			docs, err := s.api.ListDocuments(ctx)
			sum.Documents = len(docs)
			return err
		}},
		resource.Section{Name: "hr_documents", Load: func(ctx context.Context) error {
			docs, err := s.api.ListHRDocuments(ctx)
			sum.HRDocuments = len(docs)
			return err
		}},
		resource.Section{Name: "videos", Load: func(ctx context.Context) error {
			v, err := s.api.ListUploadedVideos(ctx)
			sum.Videos = len(v)
			return err
		}},
		resource.Section{Name: "chat", Load: func(ctx context.Context) error {
			msgs, err := s.api.ChatHistory(ctx)
			sum.ChatMessages = len(msgs)
			return err
		}},
	)
	return sum
}
