package messaging

import (
	"errors"
	"net/http"

	"p2pshare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	messagesGroup := protected.Group("/messages")
	{
		messagesGroup.POST("", h.SendMessage)
		messagesGroup.GET("/conversations", h.GetConversations)
	}
}

func (h *Handler) SendMessage(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message invalide")
		return
	}

	m, err := h.service.SendMessage(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrRecipientNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Destinataire non trouvé")
			return
		}
		response.Error(c, http.StatusBadRequest, "MESSAGE_FAILED", "Erreur lors de l'envoi du message")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      m.ID,
		"message": "Message envoyé",
	})
}

func (h *Handler) GetConversations(c *gin.Context) {
	userID := c.GetInt64("user_id")

	messages, err := h.service.GetConversations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "MESSAGES_FETCH_FAILED", "Erreur lors de la récupération des messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
