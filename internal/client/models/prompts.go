package models

import "encoding/json"

// PromptTextPlaceholder marks where extracted document text is substituted
// into a prompt template.
const PromptTextPlaceholder = "{text}"

// DefaultGPTModel is used when a form leaves the model empty.
const DefaultGPTModel = "gpt-4o-mini"

type DynamicPrompt struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	PromptTemplate string `json:"prompt_template"`
	GPTModel       string `json:"gpt_model"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type DynamicPromptCreate struct {
	Name           string `json:"name" validate:"required,max=128"`
	Description    string `json:"description,omitempty"`
	PromptTemplate string `json:"prompt_template" validate:"required,textplaceholder"`
	GPTModel       string `json:"gpt_model,omitempty"`
}

type DynamicPromptUpdate struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,max=128"`
	Description    *string `json:"description,omitempty"`
	PromptTemplate *string `json:"prompt_template,omitempty" validate:"omitempty,textplaceholder"`
	GPTModel       *string `json:"gpt_model,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// PromptUploadResponse acknowledges a document queued for processing.
type PromptUploadResponse struct {
	Message             string           `json:"message"`
	ProcessedDocumentID string           `json:"processed_document_id"`
	Status              ProcessingStatus `json:"status"`
}

type ProcessedDocument struct {
	ID               string           `json:"id"`
	PromptID         string           `json:"prompt_id"`
	OriginalFilename string           `json:"original_filename"`
	FileType         string           `json:"file_type"`
	ProcessingStatus ProcessingStatus `json:"processing_status"`
	ExtractedText    string           `json:"extracted_text,omitempty"`
	ProcessedResult  string           `json:"processed_result,omitempty"`
	ErrorMessage     string           `json:"error_message,omitempty"`
	CreatedAt        string           `json:"created_at"`
}

// DocumentProcessResult carries the free-form result produced by a prompt.
type DocumentProcessResult struct {
	DocumentID       string          `json:"document_id"`
	OriginalFilename string          `json:"original_filename"`
	ProcessingStatus string          `json:"processing_status"`
	Result           json.RawMessage `json:"result"`
}
