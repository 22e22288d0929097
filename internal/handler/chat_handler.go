package handler

import (
	"log"
	"net/http"

	"mamacare/internal/model"
	"mamacare/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat message related requests
type ChatHandler struct {
	service service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(s service.ChatService) *ChatHandler {
	return &ChatHandler{service: s}
}

func (h *ChatHandler) CreateMessage(c *gin.Context) {
	var req model.CreateChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	msg, err := h.service.CreateMessage(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error creating chat message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create chat message"})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	messages, err := h.service.ListMessages(c.Request.Context())
	if err != nil {
		log.Printf("Error listing chat messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chat messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// RegisterChatRoutes registers chat routes. Like articles, these are public.
func (h *ChatHandler) RegisterChatRoutes(rg *gin.RouterGroup) {
	chatGroup := rg.Group("/chats")
	{
		chatGroup.GET("", h.ListMessages)
		chatGroup.POST("", h.CreateMessage)
	}
}
