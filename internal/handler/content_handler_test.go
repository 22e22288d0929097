package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"mamacare/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubArticleService struct {
	articles []model.Article
}

func (s *stubArticleService) CreateArticle(_ context.Context, req model.CreateArticleRequest) (*model.Article, error) {
	a := model.Article{
		ID:        int64(len(s.articles) + 1),
		Title:     req.Title,
		Body:      req.Body,
		Author:    req.Author,
		CreatedAt: time.Now(),
	}
	// Prepend: listings are newest first.
	s.articles = append([]model.Article{a}, s.articles...)
	return &a, nil
}

func (s *stubArticleService) ListArticles(context.Context) ([]model.Article, error) {
	return s.articles, nil
}

type stubChatService struct {
	messages []model.ChatMessage
}

func (s *stubChatService) CreateMessage(_ context.Context, req model.CreateChatMessageRequest) (*model.ChatMessage, error) {
	m := model.ChatMessage{
		ID:        int64(len(s.messages) + 1),
		UserID:    req.UserID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}
	s.messages = append([]model.ChatMessage{m}, s.messages...)
	return &m, nil
}

func (s *stubChatService) ListMessages(context.Context) ([]model.ChatMessage, error) {
	return s.messages, nil
}

func setupContentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewArticleHandler(&stubArticleService{articles: []model.Article{}}).RegisterArticleRoutes(api)
	NewChatHandler(&stubChatService{messages: []model.ChatMessage{}}).RegisterChatRoutes(api)
	return router
}

func TestCreateArticle(t *testing.T) {
	router := setupContentRouter()

	w := doJSON(router, http.MethodPost, "/api/articles",
		`{"title":"Sleep in pregnancy","body":"Rest on your side.","author":"Dr. N"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var article model.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &article))
	assert.Equal(t, "Sleep in pregnancy", article.Title)
	require.NotNil(t, article.Author)
	assert.Equal(t, "Dr. N", *article.Author)
}

func TestCreateArticle_Validation(t *testing.T) {
	router := setupContentRouter()

	tests := []struct {
		name string
		body string
	}{
		{"empty title", `{"title":"","body":"content"}`},
		{"empty body", `{"title":"Title","body":""}`},
		{"missing both", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/articles", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestListArticles_NewestFirstAfterCreates(t *testing.T) {
	router := setupContentRouter()

	w := doJSON(router, http.MethodPost, "/api/articles", `{"title":"A","body":"first"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(router, http.MethodPost, "/api/articles", `{"title":"B","body":"second"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/api/articles", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var articles []model.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &articles))
	require.Len(t, articles, 2)
	assert.Equal(t, "B", articles[0].Title)
	assert.Equal(t, "A", articles[1].Title)
}

func TestCreateChatMessage(t *testing.T) {
	router := setupContentRouter()

	w := doJSON(router, http.MethodPost, "/api/chats", `{"text":"hello","userId":4}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var msg model.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.Equal(t, "hello", msg.Text)
	require.NotNil(t, msg.UserID)
	assert.Equal(t, 4, *msg.UserID)
}

func TestCreateChatMessage_EmptyText(t *testing.T) {
	router := setupContentRouter()

	w := doJSON(router, http.MethodPost, "/api/chats", `{"text":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatFlow_CreateThenListFirst(t *testing.T) {
	router := setupContentRouter()

	w := doJSON(router, http.MethodPost, "/api/chats", `{"text":"older"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(router, http.MethodPost, "/api/chats", `{"text":"newest"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/api/chats", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var messages []model.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, "newest", messages[0].Text)
}
