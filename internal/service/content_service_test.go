package service

import (
	"context"
	"testing"

	"mamacare/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArticleRepo struct {
	articles []model.Article
}

func (r *fakeArticleRepo) Create(_ context.Context, article *model.Article) error {
	article.ID = int64(len(r.articles) + 1)
	r.articles = append([]model.Article{*article}, r.articles...)
	return nil
}

func (r *fakeArticleRepo) List(context.Context) ([]model.Article, error) {
	return r.articles, nil
}

type fakeChatRepo struct {
	messages []model.ChatMessage
}

func (r *fakeChatRepo) Create(_ context.Context, msg *model.ChatMessage) error {
	msg.ID = int64(len(r.messages) + 1)
	r.messages = append([]model.ChatMessage{*msg}, r.messages...)
	return nil
}

func (r *fakeChatRepo) List(context.Context) ([]model.ChatMessage, error) {
	return r.messages, nil
}

func TestArticleService_CreateSetsTimestampAndID(t *testing.T) {
	svc := NewArticleService(&fakeArticleRepo{})

	author := "Dr. N"
	article, err := svc.CreateArticle(context.Background(), model.CreateArticleRequest{
		Title:  "Hydration",
		Body:   "Drink water.",
		Author: &author,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), article.ID)
	assert.False(t, article.CreatedAt.IsZero())
}

func TestArticleService_ListReturnsNewestFirst(t *testing.T) {
	svc := NewArticleService(&fakeArticleRepo{})

	_, err := svc.CreateArticle(context.Background(), model.CreateArticleRequest{Title: "A", Body: "first"})
	require.NoError(t, err)
	_, err = svc.CreateArticle(context.Background(), model.CreateArticleRequest{Title: "B", Body: "second"})
	require.NoError(t, err)

	articles, err := svc.ListArticles(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "B", articles[0].Title)
}

func TestChatService_CreateAndList(t *testing.T) {
	svc := NewChatService(&fakeChatRepo{})

	userID := 7
	msg, err := svc.CreateMessage(context.Background(), model.CreateChatMessageRequest{
		Text:   "week 30 today",
		UserID: &userID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), msg.ID)
	require.NotNil(t, msg.UserID)
	assert.Equal(t, 7, *msg.UserID)

	messages, err := svc.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "week 30 today", messages[0].Text)
}
