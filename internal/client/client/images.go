package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func (c *HTTPClient) GenerateImage(ctx context.Context, req models.ImageGenerateRequest) (*models.ImageRecord, error) {
	var out models.ImageRecord
	if err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/images/generate", JSON: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListImages(ctx context.Context) ([]models.ImageRecord, error) {
	var out []models.ImageRecord
	err := c.Do(ctx, Request{Path: "/images/history"}, &out)
	return out, err
}

func (c *HTTPClient) DownloadImage(ctx context.Context, id string) (Blob, error) {
	return c.Download(ctx, "/images/"+url.PathEscape(id)+"/download")
}

func (c *HTTPClient) DeleteImage(ctx context.Context, id string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/images/" + url.PathEscape(id)}, nil)
}

func (c *HTTPClient) ImageSubscriptionInfo(ctx context.Context) (*models.ImageSubscriptionInfo, error) {
	var out models.ImageSubscriptionInfo
	if err := c.Do(ctx, Request{Path: "/images/subscription-info"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
