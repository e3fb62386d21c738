package services

import (
	"context"

	"github.com/sachink160/multitool-client/internal/client/client"
	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/resource"
	"github.com/sachink160/multitool-client/internal/client/validate"
	"github.com/sachink160/multitool-client/internal/logging"
)

type VideoAPI interface {
	UploadVideo(ctx context.Context, file client.FilePart) (models.MessageResponse, error)
	ListUploadedVideos(ctx context.Context) ([]models.VideoFile, error)
	ListProcessedFiles(ctx context.Context) ([]models.ProcessedFile, error)
	DownloadProcessedFile(ctx context.Context, userID, filename string) (client.Blob, error)
}

// VideoService backs video-to-audio conversion.
type VideoService struct {
	api       VideoAPI
	logger    logging.Logger
	Uploads   *resource.Collection[models.VideoFile]
	Processed *resource.Collection[models.ProcessedFile]
}

func NewVideoService(api VideoAPI, logger logging.Logger) *VideoService {
	return &VideoService{
		api:       api,
		logger:    logger,
		Uploads:   resource.NewCollection(api.ListUploadedVideos),
		Processed: resource.NewCollection(api.ListProcessedFiles),
	}
}

// Refresh reloads both lists; a failing list does not blank the other.
func (s *VideoService) Refresh(ctx context.Context) resource.SectionErrors {
	return resource.LoadSections(ctx, s.logger,
		resource.Section{Name: "uploads", Load: s.Uploads.Refresh},
		resource.Section{Name: "processed", Load: s.Processed.Refresh},
	)
}

func (s *VideoService) Upload(ctx context.Context, path string) (string, error) {
	part, err := readUpload(path, validate.FileRules{})
	if err != nil {
		return "", err
	}
	res, err := s.api.UploadVideo(ctx, part)
	if err != nil {
		return "", err
	}
	s.Refresh(ctx)
	return res.Message, nil
}

// Download saves a processed file of userID into dir and returns its path.
func (s *VideoService) Download(ctx context.Context, userID, filename, dir string) (string, error) {
	b, err := s.api.DownloadProcessedFile(ctx, userID, filename)
	if err != nil {
		return "", err
	}
	return saveBlob(dir, filename, b)
}
