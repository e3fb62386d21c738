package models

// ImageGenerateRequest describes one generation job.
type ImageGenerateRequest struct {
	Prompt            string  `json:"prompt" validate:"required,max=2000"`
	NegativePrompt    string  `json:"negative_prompt,omitempty" validate:"max=2000"`
	Width             int     `json:"width" validate:"min=256,max=2048"`
	Height            int     `json:"height" validate:"min=256,max=2048"`
	GuidanceScale     float64 `json:"guidance_scale" validate:"gte=0,lte=30"`
	NumInferenceSteps int     `json:"num_inference_steps" validate:"min=1,max=150"`
}

// DefaultImageRequest returns the form defaults for prompt.
func DefaultImageRequest(prompt string) ImageGenerateRequest {
	return ImageGenerateRequest{
		Prompt:            prompt,
		Width:             1024,
		Height:            1024,
		GuidanceScale:     7.5,
		NumInferenceSteps: 50,
	}
}

type ImageRecord struct {
	ID                string           `json:"id"`
	Prompt            string           `json:"prompt"`
	NegativePrompt    string           `json:"negative_prompt,omitempty"`
	Width             int              `json:"width"`
	Height            int              `json:"height"`
	GuidanceScale     float64          `json:"guidance_scale"`
	NumInferenceSteps int              `json:"num_inference_steps"`
	OutputPath        string           `json:"output_path"`
	Status            ProcessingStatus `json:"status,omitempty"`
	CreatedAt         string           `json:"created_at"`
}

// ImageSubscriptionInfo is the image quota snapshot.
type ImageSubscriptionInfo struct {
	PlanName        string `json:"plan_name,omitempty"`
	ImagesUsed      int    `json:"images_used"`
	MaxImages       int    `json:"max_images"`
	ImagesRemaining *int   `json:"images_remaining,omitempty"`
}
