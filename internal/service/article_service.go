package service

import (
	"context"
	"fmt"
	"time"

	"mamacare/internal/model"
	"mamacare/internal/repository"
)

// ArticleService provides article related services
type ArticleService interface {
	CreateArticle(ctx context.Context, req model.CreateArticleRequest) (*model.Article, error)
	ListArticles(ctx context.Context) ([]model.Article, error)
}

type articleService struct {
	articleRepo repository.ArticleRepository
}

// NewArticleService creates a new ArticleService
func NewArticleService(articleRepo repository.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

// CreateArticle stores a new article
func (s *articleService) CreateArticle(ctx context.Context, req model.CreateArticleRequest) (*model.Article, error) {
	article := &model.Article{
		Title:     req.Title,
		Body:      req.Body,
		Author:    req.Author,
		CreatedAt: time.Now(),
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return article, nil
}

// ListArticles returns all articles, newest first
func (s *articleService) ListArticles(ctx context.Context) ([]model.Article, error) {
	articles, err := s.articleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}
