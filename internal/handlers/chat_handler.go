package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financeai/internal/models"
	"financeai/internal/services"
)

// ChatHandler answers advisory chat messages.
type ChatHandler struct {
	chatService services.ChatServicer
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService services.ChatServicer) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest is a single user message.
type ChatRequest struct {
	Message string `json:"message" binding:"max=2000"`
}

// ChatResponse is the advisor's reply and the path that produced it.
type ChatResponse struct {
	Success  bool              `json:"success" example:"true"`
	Response string            `json:"response"`
	Source   models.ChatSource `json:"source" example:"model"`
}

// Chat handles an advisory chat message
// @Summary     Ask the financial advisor
// @Description Answers from the generative backend, or from keyword replies when it is unavailable
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChatRequest true "Message"
// @Success     200 {object} ChatResponse "Reply"
// @Failure     400 {object} ErrorResponse "Message is required"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	reply, err := h.chatService.Chat(c.Request.Context(), userID, req.Message)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"response": reply.Text,
		"source":   reply.Source,
	})
}
