package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sachink160/multitool-client/internal/client/blob"
	"github.com/sachink160/multitool-client/internal/client/client"
	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/quota"
)

type fakeImageAPI struct {
	mu        sync.Mutex
	images    []models.ImageRecord
	info      models.ImageSubscriptionInfo
	generated int
}

func (f *fakeImageAPI) GenerateImage(ctx context.Context, req models.ImageGenerateRequest) (*models.ImageRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generated++
	f.info.ImagesUsed++
	rec := models.ImageRecord{ID: "img" + string(rune('0'+len(f.images))), Prompt: req.Prompt, Width: req.Width, Height: req.Height}
	f.images = append(f.images, rec)
	return &rec, nil
}

func (f *fakeImageAPI) ListImages(ctx context.Context) ([]models.ImageRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ImageRecord(nil), f.images...), nil
}

func (f *fakeImageAPI) DownloadImage(ctx context.Context, id string) (client.Blob, error) {
	return client.Blob{Data: []byte(id), ContentType: "image/png"}, nil
}

func (f *fakeImageAPI) DeleteImage(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, im := range f.images {
		if im.ID == id {
			f.images = append(f.images[:i], f.images[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeImageAPI) ImageSubscriptionInfo(ctx context.Context) (*models.ImageSubscriptionInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	info := f.info
	return &info, nil
}

func TestImageGenerate_GatedByLatestSnapshot(t *testing.T) {
	api := &fakeImageAPI{info: models.ImageSubscriptionInfo{ImagesUsed: 1, MaxImages: 2}}
	svc := NewImageService(api, blob.NewRegistry(), nil)
	defer svc.Close()
	svc.Refresh(context.Background())

	_, err := svc.Generate(context.Background(), models.DefaultImageRequest("a fox"))
	require.NoError(t, err)
	require.False(t, svc.Gate().Allowed())

	_, err = svc.Generate(context.Background(), models.DefaultImageRequest("another"))
	require.ErrorIs(t, err, quota.ErrQuotaExhausted)
	require.Equal(t, 1, api.generated)

	api.mu.Lock()
	api.info.MaxImages = 5
	api.mu.Unlock()
	svc.Refresh(context.Background())
	require.True(t, svc.Gate().Allowed())
}

func TestImagePreviews_NeverExceedRenderedImages(t *testing.T) {
	reg := blob.NewRegistry()
	api := &fakeImageAPI{
		images: []models.ImageRecord{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		info:   models.ImageSubscriptionInfo{MaxImages: 10},
	}
	svc := NewImageService(api, reg, nil)

	svc.Refresh(context.Background())
	require.Equal(t, 3, reg.Live())
	_, ok := svc.Preview("b")
	require.True(t, ok)

	require.NoError(t, svc.Delete(context.Background(), "b"))
	require.Len(t, svc.History.Items(), 2)
	require.Equal(t, 2, reg.Live())
	_, ok = svc.Preview("b")
	require.False(t, ok)

	svc.Refresh(context.Background())
	require.Equal(t, 2, reg.Live())

	svc.Close()
	require.Equal(t, 0, reg.Live())
}

func TestImageDownload_WritesFile(t *testing.T) {
	api := &fakeImageAPI{}
	svc := NewImageService(api, blob.NewRegistry(), nil)

	path, err := svc.Download(context.Background(), "i9", t.TempDir())
	require.NoError(t, err)
	require.FileExists(t, path)
}
