package models

type ResumeItem struct {
	ID               string `json:"id"`
	OriginalFilename string `json:"original_filename"`
	FileType         string `json:"file_type"`
	CreatedAt        string `json:"created_at"`
}

type JobRequirementItem struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	RequirementJSON string `json:"requirement_json"`
	GPTModel        string `json:"gpt_model"`
	IsActive        bool   `json:"is_active"`
	CreatedAt       string `json:"created_at"`
}

type JobRequirementCreate struct {
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description,omitempty"`
	RequirementJSON string `json:"requirement_json" validate:"required,json"`
	GPTModel        string `json:"gpt_model,omitempty"`
}

type JobRequirementUpdate struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description     *string `json:"description,omitempty"`
	RequirementJSON *string `json:"requirement_json,omitempty" validate:"omitempty,json"`
	GPTModel        *string `json:"gpt_model,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

// ResumeMatchItem scores one resume against one requirement.
type ResumeMatchItem struct {
	ID            string  `json:"id"`
	ResumeID      string  `json:"resume_id"`
	RequirementID string  `json:"requirement_id"`
	Score         float64 `json:"score"`
	Rationale     string  `json:"rationale,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
