package client

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/sachink160/multitool-client/internal/common"
)

// Blob is a downloaded binary payload.
type Blob struct {
	Data        []byte
	ContentType string
	// Filename comes from Content-Disposition and may be empty.
	Filename string
}

// Download fetches path as a blob under the same auth contract as Do.
func (c *HTTPClient) Download(ctx context.Context, path string) (Blob, error) {
	resp, err := c.execute(ctx, Request{Method: http.MethodGet, Path: path, Accept: "*/*"})
	if err != nil {
		return Blob{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Blob{}, fmt.Errorf("read %s: %w", path, err)
	}

	return Blob{
		Data:        data,
		ContentType: resp.Header.Get(common.ContentTypeHeaderName),
		Filename:    dispositionFilename(resp.Header.Get("Content-Disposition")),
	}, nil
}

func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
