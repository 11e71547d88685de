package handlers

import (
	"net/http"

	"marketplace-service/internal/services"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// GetMessages godoc
// @Summary Get a user's direct messages
// @Description Messages the user sent or received, oldest first
// @Tags messages
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.Message "Message history"
// @Failure 400 {object} models.ErrorResponse "Invalid user ID"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /messages/{userId} [get]
func (h *MessageHandler) GetMessages(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	messages, err := h.messageService.History(c.Request.Context(), userID)
	if err != nil {
		storeError(c, "Messages not found", err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
