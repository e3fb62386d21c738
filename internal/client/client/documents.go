package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func uploadRequest(path string, file FilePart, fields ...Field) Request {
	file.Field = "file"
	return Request{
		Method:    http.MethodPost,
		Path:      path,
		Multipart: &Multipart{Fields: fields, Files: []FilePart{file}},
	}
}

func (c *HTTPClient) UploadDocument(ctx context.Context, file FilePart) (*models.Document, error) {
	var out models.Document
	if err := c.Do(ctx, uploadRequest("/upload", file), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var out []models.Document
	err := c.Do(ctx, Request{Path: "/documents"}, &out)
	return out, err
}

func (c *HTTPClient) AskDocument(ctx context.Context, req models.AskDocumentRequest) (models.AnswerResponse, error) {
	var out models.AnswerResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/ask", JSON: req}, &out)
	return out, err
}

func (c *HTTPClient) UploadHRDocument(ctx context.Context, file FilePart) (*models.HRDocument, error) {
	var out models.HRDocument
	if err := c.Do(ctx, uploadRequest("/hr/upload", file), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListHRDocuments(ctx context.Context) ([]models.HRDocument, error) {
	var out []models.HRDocument
	err := c.Do(ctx, Request{Path: "/hr/documents"}, &out)
	return out, err
}

func (c *HTTPClient) ActivateHRDocument(ctx context.Context, id string) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/hr/documents/" + url.PathEscape(id) + "/activate"}, nil)
}

func (c *HTTPClient) DeactivateHRDocument(ctx context.Context, id string) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/hr/documents/" + url.PathEscape(id) + "/deactivate"}, nil)
}

func (c *HTTPClient) AskHR(ctx context.Context, question string) (models.AnswerResponse, error) {
	var out models.AnswerResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/hr/ask", JSON: models.AskHRRequest{Question: question}}, &out)
	return out, err
}
