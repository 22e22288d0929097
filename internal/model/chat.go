package model

import "time"

// ChatMessage is a message posted to the community chat. UserID is a weak
// reference; messages from anonymous visitors carry no user ID.
type ChatMessage struct {
	ID        int64     `json:"id"`
	UserID    *int      `json:"user_id,omitempty"` // Pointer for optional field
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateChatMessageRequest is used for posting a new chat message
type CreateChatMessageRequest struct {
	Text   string `json:"text" binding:"required"`
	UserID *int   `json:"userId"`
}
