package repository

import (
	"context"
	"fmt"

	"mamacare/internal/model"
)

// ArticleRepository defines operations for article data
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	List(ctx context.Context) ([]model.Article, error)
}

type articleRepository struct {
	db DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create inserts a new article into the database
func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	sql := `INSERT INTO articles (title, body, author, created_at)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, article.Title, article.Body, article.Author, article.CreatedAt).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

// List returns all articles, newest first
func (r *articleRepository) List(ctx context.Context) ([]model.Article, error) {
	sql := `SELECT id, title, body, author, created_at FROM articles ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.Author, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating articles: %w", err)
	}
	return articles, nil
}
