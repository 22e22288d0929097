package service

import (
	"context"
	"fmt"
	"time"

	"mamacare/internal/model"
	"mamacare/internal/repository"
)

// ChatService provides chat message related services
type ChatService interface {
	CreateMessage(ctx context.Context, req model.CreateChatMessageRequest) (*model.ChatMessage, error)
	ListMessages(ctx context.Context) ([]model.ChatMessage, error)
}

type chatService struct {
	chatRepo repository.ChatRepository
}

// NewChatService creates a new ChatService
func NewChatService(chatRepo repository.ChatRepository) ChatService {
	return &chatService{chatRepo: chatRepo}
}

// CreateMessage stores a new chat message
func (s *chatService) CreateMessage(ctx context.Context, req model.CreateChatMessageRequest) (*model.ChatMessage, error) {
	msg := &model.ChatMessage{
		UserID:    req.UserID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}
	if err := s.chatRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create chat message: %w", err)
	}
	return msg, nil
}

// ListMessages returns all chat messages, newest first
func (s *chatService) ListMessages(ctx context.Context) ([]model.ChatMessage, error) {
	messages, err := s.chatRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}
