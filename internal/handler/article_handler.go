package handler

import (
	"log"
	"net/http"

	"mamacare/internal/model"
	"mamacare/internal/service"

	"github.com/gin-gonic/gin"
)

// ArticleHandler handles article related requests
type ArticleHandler struct {
	service service.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(s service.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: s}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	article, err := h.service.CreateArticle(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error creating article: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.service.ListArticles(c.Request.Context())
	if err != nil {
		log.Printf("Error listing articles: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve articles"})
		return
	}
	c.JSON(http.StatusOK, articles)
}

// RegisterArticleRoutes registers article routes. These routes are public;
// nothing gates listing or creating content.
func (h *ArticleHandler) RegisterArticleRoutes(rg *gin.RouterGroup) {
	articleGroup := rg.Group("/articles")
	{
		articleGroup.GET("", h.ListArticles)
		articleGroup.POST("", h.CreateArticle)
	}
}
