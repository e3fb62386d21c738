package models

// Query types accepted by POST /ask.
const (
	QueryQuestion    = "question"
	QuerySummarize   = "summarize"
	QueryActionItems = "action_items"
	QueryLegalIssues = "legal_issues"
)

// QueryTypes lists the supported document query types in display order.
var QueryTypes = []string{QueryQuestion, QuerySummarize, QueryActionItems, QueryLegalIssues}

type Document struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	UploadDate string `json:"upload_date"`
	UserID     string `json:"user_id"`
	FilePath   string `json:"file_path"`
}

type HRDocument struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	UploadDate string `json:"upload_date"`
	UserID     string `json:"user_id"`
	FilePath   string `json:"file_path"`
	IsActive   bool   `json:"is_active"`
}

type AskDocumentRequest struct {
	DocumentID string `json:"document_id" validate:"required"`
	Question   string `json:"question" validate:"required"`
	QueryType  string `json:"query_type" validate:"required,oneof=question summarize action_items legal_issues"`
}

type AskHRRequest struct {
	Question string `json:"question" validate:"required"`
}

// AnswerResponse is the {"response": "..."} body of ask/chat endpoints.
type AnswerResponse struct {
	Response string `json:"response"`
}
