package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func (c *HTTPClient) Chat(ctx context.Context, query string) (models.AnswerResponse, error) {
	var out models.AnswerResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/chat", Query: url.Values{"query": {query}}}, &out)
	return out, err
}

// ChatHistory returns the conversation oldest-first as alternating user and
// assistant messages.
func (c *HTTPClient) ChatHistory(ctx context.Context) ([]models.ChatMessage, error) {
	var history []models.ChatHistoryItem
	if err := c.Do(ctx, Request{Path: "/chat/history"}, &history); err != nil {
		return nil, err
	}
	return TransformChatHistory(history), nil
}

// TransformChatHistory expands newest-first backend history rows into
// oldest-first messages: each row yields its user message followed by the
// assistant reply. Message ids keep the row's backend index.
func TransformChatHistory(history []models.ChatHistoryItem) []models.ChatMessage {
	msgs := make([]models.ChatMessage, 0, 2*len(history))
	for i := len(history) - 1; i >= 0; i-- {
		item := history[i]
		msgs = append(msgs,
			models.ChatMessage{
				ID:        fmt.Sprintf("user_%d", i),
				Content:   item.Message,
				Sender:    models.SenderUser,
				Timestamp: item.Timestamp,
			},
			models.ChatMessage{
				ID:        fmt.Sprintf("assistant_%d", i),
				Content:   item.Response,
				Sender:    models.SenderAssistant,
				Timestamp: item.Timestamp,
				ToolUsed:  item.ToolUsed,
			},
		)
	}
	return msgs
}
