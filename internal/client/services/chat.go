package services

import (
	"context"
	"strings"

	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/resource"
	"github.com/sachink160/multitool-client/internal/client/validate"
)

type ChatAPI interface {
	Chat(ctx context.Context, query string) (models.AnswerResponse, error)
	ChatHistory(ctx context.Context) ([]models.ChatMessage, error)
}

type ChatService struct {
	api     ChatAPI
	History *resource.Collection[models.ChatMessage]
}

func NewChatService(api ChatAPI) *ChatService {
	return &ChatService{api: api, History: resource.NewCollection(api.ChatHistory)}
}

func (s *ChatService) Refresh(ctx context.Context) error {
	return s.History.Refresh(ctx)
}

// Send asks the chatbot and returns its reply.
func (s *ChatService) Send(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", &validate.ValidationError{Field: "query", Message: "This field is required"}
	}
	res, err := s.api.Chat(ctx, query)
	if err != nil {
		return "", err
	}
	return res.Response, nil
}
