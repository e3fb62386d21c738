package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sachink160/multitool-client/internal/client/models"
)

const promptsPath = "/dynamic-prompts/"

func promptPath(id string) string {
	return promptsPath + url.PathEscape(id)
}

func (c *HTTPClient) CreatePrompt(ctx context.Context, req models.DynamicPromptCreate) (*models.DynamicPrompt, error) {
	var out models.DynamicPrompt
	if err := c.Do(ctx, Request{Method: http.MethodPost, Path: promptsPath, JSON: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListPrompts(ctx context.Context) ([]models.DynamicPrompt, error) {
	var out []models.DynamicPrompt
	err := c.Do(ctx, Request{Path: promptsPath}, &out)
	return out, err
}

func (c *HTTPClient) GetPrompt(ctx context.Context, id string) (*models.DynamicPrompt, error) {
	var out models.DynamicPrompt
	if err := c.Do(ctx, Request{Path: promptPath(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdatePrompt(ctx context.Context, id string, upd models.DynamicPromptUpdate) (*models.DynamicPrompt, error) {
	var out models.DynamicPrompt
	if err := c.Do(ctx, Request{Method: http.MethodPut, Path: promptPath(id), JSON: upd}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeletePrompt(ctx context.Context, id string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: promptPath(id)}, nil)
}

func (c *HTTPClient) UploadPromptDocument(ctx context.Context, file FilePart, promptID string) (models.PromptUploadResponse, error) {
	var out models.PromptUploadResponse
	err := c.Do(ctx, uploadRequest(promptsPath+"upload-document", file, Field{Name: "prompt_id", Value: promptID}), &out)
	return out, err
}

func (c *HTTPClient) ListProcessedDocuments(ctx context.Context) ([]models.ProcessedDocument, error) {
	var out []models.ProcessedDocument
	err := c.Do(ctx, Request{Path: promptsPath + "processed-documents/"}, &out)
	return out, err
}

func (c *HTTPClient) GetProcessedDocument(ctx context.Context, id string) (*models.ProcessedDocument, error) {
	var out models.ProcessedDocument
	if err := c.Do(ctx, Request{Path: promptsPath + "processed-documents/" + url.PathEscape(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetProcessingResult(ctx context.Context, id string) (*models.DocumentProcessResult, error) {
	var out models.DocumentProcessResult
	if err := c.Do(ctx, Request{Path: promptsPath + "processed-documents/" + url.PathEscape(id) + "/result"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
