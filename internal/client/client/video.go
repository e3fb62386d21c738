package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func (c *HTTPClient) UploadVideo(ctx context.Context, file FilePart) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.Do(ctx, uploadRequest("/video-to-audio/upload", file), &out)
	return out, err
}

func (c *HTTPClient) ListUploadedVideos(ctx context.Context) ([]models.VideoFile, error) {
	var res models.UploadsResponse
	if err := c.Do(ctx, Request{Path: "/video-to-audio/uploads"}, &res); err != nil {
		return nil, err
	}
	out := make([]models.VideoFile, 0, len(res.Uploads))
	for _, name := range res.Uploads {
		out = append(out, models.VideoFile{Filename: name})
	}
	return out, nil
}

// ListProcessedFiles lists converted outputs; ".mp3" files are audio.
func (c *HTTPClient) ListProcessedFiles(ctx context.Context) ([]models.ProcessedFile, error) {
	var res models.ProcessedResponse
	if err := c.Do(ctx, Request{Path: "/video-to-audio/processed"}, &res); err != nil {
		return nil, err
	}
	out := make([]models.ProcessedFile, 0, len(res.Processed))
	for _, name := range res.Processed {
		typ := models.MediaVideo
		if strings.HasSuffix(name, ".mp3") {
			typ = models.MediaAudio
		}
		out = append(out, models.ProcessedFile{Filename: name, Type: typ})
	}
	return out, nil
}

func (c *HTTPClient) DownloadProcessedFile(ctx context.Context, userID, filename string) (Blob, error) {
	return c.Download(ctx, "/video-to-audio/download/"+url.PathEscape(userID)+"/"+url.PathEscape(filename))
}
