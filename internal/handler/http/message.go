package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zach0583-rgb/ThatZachGuy/internal/service"
)

// MessageHandler serves per-scene chat history.
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// List returns the most recent messages of a scene, oldest first.
// Supports ?limit= and ?offset= pagination over the newest messages.
func (h *MessageHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sceneID, ok := pathID(c, "sceneId", "scene ID")
	if !ok {
		return
	}

	limit := queryInt(c, "limit", service.DefaultMessageLimit)
	offset := queryInt(c, "offset", 0)

	details, err := h.messageService.List(c.Request.Context(), sceneID, userID, limit, offset)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	messages := make([]MessageResponse, 0, len(details))
	for i := range details {
		messages = append(messages, toMessageResponse(&details[i]))
	}
	c.JSON(http.StatusOK, messages)
}

// SendMessageRequest is the chat message payload.
type SendMessageRequest struct {
	Content string `json:"content" binding:"required,min=1,max=4000"`
	Type    string `json:"type" binding:"omitempty,oneof=text system media"`
}

// Send appends a message to the scene's history.
func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sceneID, ok := pathID(c, "sceneId", "scene ID")
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.SendMessage: invalid input")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: content is required")
		return
	}

	details, err := h.messageService.Send(c.Request.Context(), sceneID, userID, req.Content, req.Type)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMessageResponse(details))
}

// queryInt reads a non-negative integer query parameter, falling back
// to def when absent or malformed.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
