package model

import "time"

// Article is an educational article shown in the app feed.
type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Author    *string   `json:"author,omitempty"` // Pointer for optional field
	CreatedAt time.Time `json:"created_at"`
}

// CreateArticleRequest is used for creating a new article
type CreateArticleRequest struct {
	Title  string  `json:"title" binding:"required"`
	Body   string  `json:"body" binding:"required"`
	Author *string `json:"author"`
}
