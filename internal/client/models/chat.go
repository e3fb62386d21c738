package models

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ChatHistoryItem is one backend history row: a user message and the
// assistant's reply.
type ChatHistoryItem struct {
	Message   string `json:"message"`
	Response  string `json:"response"`
	ToolUsed  string `json:"tool_used"`
	Timestamp string `json:"timestamp"`
}

// ChatMessage is a single rendered bubble.
type ChatMessage struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Sender    Sender `json:"sender"`
	Timestamp string `json:"timestamp"`
	ToolUsed  string `json:"tool_used,omitempty"`
}
