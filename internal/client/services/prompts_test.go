package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sachink160/multitool-client/internal/client/client"
	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/quota"
	"github.com/sachink160/multitool-client/internal/client/validate"
)

type fakePromptAPI struct {
	prompts   []models.DynamicPrompt
	processed []models.ProcessedDocument
	usage     *models.UsageInfo

	uploads   []string
	creates   []models.DynamicPromptCreate
	listCalls int
}

func (f *fakePromptAPI) CreatePrompt(ctx context.Context, req models.DynamicPromptCreate) (*models.DynamicPrompt, error) {
	f.creates = append(f.creates, req)
	p := models.DynamicPrompt{ID: "p" + req.Name, Name: req.Name, PromptTemplate: req.PromptTemplate, GPTModel: req.GPTModel}
	f.prompts = append(f.prompts, p)
	return &p, nil
}

func (f *fakePromptAPI) ListPrompts(ctx context.Context) ([]models.DynamicPrompt, error) {
	f.listCalls++
	return f.prompts, nil
}

func (f *fakePromptAPI) GetPrompt(ctx context.Context, id string) (*models.DynamicPrompt, error) {
	return &models.DynamicPrompt{ID: id}, nil
}

func (f *fakePromptAPI) UpdatePrompt(ctx context.Context, id string, upd models.DynamicPromptUpdate) (*models.DynamicPrompt, error) {
	return &models.DynamicPrompt{ID: id}, nil
}

func (f *fakePromptAPI) DeletePrompt(ctx context.Context, id string) error { return nil }

func (f *fakePromptAPI) UploadPromptDocument(ctx context.Context, file client.FilePart, promptID string) (models.PromptUploadResponse, error) {
	f.uploads = append(f.uploads, promptID+":"+file.Filename+":"+file.ContentType)
	f.processed = append(f.processed, models.ProcessedDocument{ID: "pd1", PromptID: promptID, ProcessingStatus: models.StatusPending})
	if f.usage != nil {
		f.usage.DynamicPromptDocumentsUploaded++
	}
	return models.PromptUploadResponse{ProcessedDocumentID: "pd1", Status: models.StatusPending}, nil
}

func (f *fakePromptAPI) ListProcessedDocuments(ctx context.Context) ([]models.ProcessedDocument, error) {
	return f.processed, nil
}

func (f *fakePromptAPI) GetProcessedDocument(ctx context.Context, id string) (*models.ProcessedDocument, error) {
	return &models.ProcessedDocument{ID: id}, nil
}

func (f *fakePromptAPI) GetProcessingResult(ctx context.Context, id string) (*models.DocumentProcessResult, error) {
	return &models.DocumentProcessResult{DocumentID: id}, nil
}

func (f *fakePromptAPI) Usage(ctx context.Context) (*models.UsageInfo, error) {
	if f.usage == nil {
		return nil, nil
	}
	u := *f.usage
	return &u, nil
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestPromptUpload_InvalidFileNeverReachesServer(t *testing.T) {
	api := &fakePromptAPI{}
	svc := NewPromptService(api, nil)

	zip := writeFile(t, "bundle.zip", []byte{'P', 'K', 0x03, 0x04, 0x14, 0x00, 0x00, 0x00})
	_, err := svc.UploadDocument(context.Background(), zip, "p1")
	require.ErrorIs(t, err, validate.ErrInvalid)
	require.Contains(t, err.Error(), "File type not supported")
	require.Empty(t, api.uploads)
}

func TestPromptUpload_RequiresPrompt(t *testing.T) {
	api := &fakePromptAPI{}
	svc := NewPromptService(api, nil)

	_, err := svc.UploadDocument(context.Background(), writeFile(t, "a.txt", []byte("hi")), "")
	require.ErrorIs(t, err, validate.ErrInvalid)
	require.Empty(t, api.uploads)
}

func TestPromptUpload_QuotaGate(t *testing.T) {
	api := &fakePromptAPI{usage: &models.UsageInfo{DynamicPromptDocumentsUploaded: 1, MaxDynamicPromptDocuments: 2}}
	svc := NewPromptService(api, nil)
	svc.Refresh(context.Background())
	require.True(t, svc.Gate().Allowed())

	path := writeFile(t, "notes.txt", []byte("some text\n"))
	res, err := svc.UploadDocument(context.Background(), path, "p1")
	require.NoError(t, err)
	require.Equal(t, "pd1", res.ProcessedDocumentID)
	require.Len(t, api.uploads, 1)
	require.Contains(t, api.uploads[0], "p1:notes.txt:text/plain")

	require.False(t, svc.Gate().Allowed(), "usage snapshot is refreshed after the upload")
	require.Len(t, svc.Processed.Items(), 1)

	_, err = svc.UploadDocument(context.Background(), path, "p1")
	require.ErrorIs(t, err, quota.ErrQuotaExhausted)
	require.Len(t, api.uploads, 1)

	api.usage.MaxDynamicPromptDocuments = 10
	svc.Refresh(context.Background())
	require.True(t, svc.Gate().Allowed())
}

func TestPromptCreate_DefaultsModelAndRefetches(t *testing.T) {
	api := &fakePromptAPI{}
	svc := NewPromptService(api, nil)

	_, err := svc.Create(context.Background(), models.DynamicPromptCreate{Name: "inv", PromptTemplate: "Extract totals from {text}"})
	require.NoError(t, err)
	require.Equal(t, models.DefaultGPTModel, api.creates[0].GPTModel)
	require.Equal(t, 1, api.listCalls)
	require.Len(t, svc.Prompts.Items(), 1)

	_, err = svc.Create(context.Background(), models.DynamicPromptCreate{Name: "bad", PromptTemplate: "no placeholder"})
	require.ErrorIs(t, err, validate.ErrInvalid)
	require.Len(t, api.creates, 1)
}

func TestPromptResult_RejectsUnfinished(t *testing.T) {
	api := &fakePromptAPI{processed: []models.ProcessedDocument{{ID: "pd1", ProcessingStatus: models.StatusProcessing}}}
	svc := NewPromptService(api, nil)
	svc.Refresh(context.Background())

	_, err := svc.Result(context.Background(), "pd1")
	require.EqualError(t, err, "document pd1 is processing")
}
