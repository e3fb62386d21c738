package services

import (
	"context"

	"github.com/sachink160/multitool-client/internal/client/blob"
	"github.com/sachink160/multitool-client/internal/client/client"
	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/quota"
	"github.com/sachink160/multitool-client/internal/client/resource"
	"github.com/sachink160/multitool-client/internal/client/validate"
	"github.com/sachink160/multitool-client/internal/logging"
)

type ImageAPI interface {
	GenerateImage(ctx context.Context, req models.ImageGenerateRequest) (*models.ImageRecord, error)
	ListImages(ctx context.Context) ([]models.ImageRecord, error)
	DownloadImage(ctx context.Context, id string) (client.Blob, error)
	DeleteImage(ctx context.Context, id string) error
	ImageSubscriptionInfo(ctx context.Context) (*models.ImageSubscriptionInfo, error)
}

// ImageService backs image generation. Previews of the current history
// are kept as blob URLs and rebuilt whenever the history is refetched.
type ImageService struct {
	api      ImageAPI
	logger   logging.Logger
	History  *resource.Collection[models.ImageRecord]
	info     *snapshot[models.ImageSubscriptionInfo]
	previews *blob.PreviewSet
}

func NewImageService(api ImageAPI, reg *blob.Registry, logger logging.Logger) *ImageService {
	return &ImageService{
		api:      api,
		logger:   logger,
		History:  resource.NewCollection(api.ListImages),
		info:     newSnapshot(api.ImageSubscriptionInfo),
		previews: blob.NewPreviewSet(reg, api.DownloadImage, logger),
	}
}

// Refresh reloads history and quota, then rebuilds the previews.
func (s *ImageService) Refresh(ctx context.Context) resource.SectionErrors {
	errs := resource.LoadSections(ctx, s.logger,
		resource.Section{Name: "history", Load: s.History.Refresh},
		resource.Section{Name: "quota", Load: s.info.Refresh},
	)
	if !errs.Failed("history") {
		s.loadPreviews(ctx)
	}
	return errs
}

func (s *ImageService) loadPreviews(ctx context.Context) {
	items := s.History.Items()
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	s.previews.Load(ctx, ids)
}

// RefreshQuota refetches the subscription snapshot the gate is built from.
// On failure the previous snapshot is kept.
func (s *ImageService) RefreshQuota(ctx context.Context) error {
	return s.info.Refresh(ctx)
}

// Gate is the generation quota from the latest snapshot.
func (s *ImageService) Gate() quota.Gate {
	return quota.FromImageInfo(s.info.Get())
}

func (s *ImageService) Info() *models.ImageSubscriptionInfo {
	return s.info.Get()
}

// Generate validates req and, when quota remains, starts a generation.
func (s *ImageService) Generate(ctx context.Context, req models.ImageGenerateRequest) (*models.ImageRecord, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if err := s.Gate().Check(); err != nil {
		return nil, err
	}
	rec, err := s.api.GenerateImage(ctx, req)
	if err != nil {
		return nil, err
	}
	s.Refresh(ctx)
	return rec, nil
}

func (s *ImageService) Delete(ctx context.Context, id string) error {
	err := s.History.Mutate(ctx, func(ctx context.Context) error {
		return s.api.DeleteImage(ctx, id)
	})
	if err != nil {
		return err
	}
	s.loadPreviews(ctx)
	return nil
}

// Download saves image id into dir and returns its path.
func (s *ImageService) Download(ctx context.Context, id, dir string) (string, error) {
	b, err := s.api.DownloadImage(ctx, id)
	if err != nil {
		return "", err
	}
	return saveBlob(dir, id+".png", b)
}

// Preview returns the blob URL previewing image id.
func (s *ImageService) Preview(id string) (string, bool) {
	return s.previews.URL(id)
}

// Reset revokes every preview, e.g. when the user logs out.
func (s *ImageService) Reset() {
	s.previews.Clear()
}

// Close drops in-flight preview downloads and revokes all previews.
func (s *ImageService) Close() {
	s.previews.Close()
}
