package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type ChatHandler struct {
	chatUC domain.ChatUsecase
}

// NewChatHandler registers the chat relay route (public, no auth required)
func NewChatHandler(public *gin.RouterGroup, chatUC domain.ChatUsecase) {
	handler := &ChatHandler{
		chatUC: chatUC,
	}

	public.POST("/ai-chat", handler.RelayChat)
}

// RelayChat godoc
// @Summary      Relay a chat conversation
// @Description  Forward the conversation history to the completion API and return the generated reply. The server stores no history; clients resend it each turn.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        chat  body      domain.ChatRequest  true  "Conversation history plus optional system prompt"
// @Success      200   {object}  response.Body
// @Failure      400   {object}  response.Body
// @Failure      502   {object}  response.Body
// @Failure      503   {object}  response.Body
// @Router       /ai-chat [post]
func (h *ChatHandler) RelayChat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("messages array required"))
		return
	}

	content, err := h.chatUC.Relay(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, response.Body{Content: content})
}
