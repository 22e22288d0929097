package repository

import (
	"context"
	"fmt"

	"mamacare/internal/model"
)

// ChatRepository defines operations for chat message data
type ChatRepository interface {
	Create(ctx context.Context, msg *model.ChatMessage) error
	List(ctx context.Context) ([]model.ChatMessage, error)
}

type chatRepository struct {
	db DB
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db DB) ChatRepository {
	return &chatRepository{db: db}
}

// Create inserts a new chat message into the database
func (r *chatRepository) Create(ctx context.Context, msg *model.ChatMessage) error {
	sql := `INSERT INTO chat_messages (user_id, text, created_at)
            VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRow(ctx, sql, msg.UserID, msg.Text, msg.CreatedAt).Scan(&msg.ID)
	if err != nil {
		return fmt.Errorf("failed to create chat message: %w", err)
	}
	return nil
}

// List returns all chat messages, newest first
func (r *chatRepository) List(ctx context.Context) ([]model.ChatMessage, error) {
	sql := `SELECT id, user_id, text, created_at FROM chat_messages ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	messages := []model.ChatMessage{}
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Text, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating chat messages: %w", err)
	}
	return messages, nil
}
