package models

// Media types of processed video-to-audio outputs.
const (
	MediaVideo = "video"
	MediaAudio = "audio"
)

type VideoFile struct {
	Filename string `json:"filename"`
}

type ProcessedFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
}

// UploadsResponse is the body of GET /video-to-audio/uploads.
type UploadsResponse struct {
	Uploads []string `json:"uploads"`
}

// ProcessedResponse is the body of GET /video-to-audio/processed.
type ProcessedResponse struct {
	Processed []string `json:"processed"`
}
