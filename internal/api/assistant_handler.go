package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vfxfolio/internal/assistant"
)

// AssistantHandler 暴露站内脚本化助手。
type AssistantHandler struct {
	responder *assistant.Responder
}

// NewAssistantHandler 构造 AssistantHandler。
func NewAssistantHandler(responder *assistant.Responder) *AssistantHandler {
	return &AssistantHandler{responder: responder}
}

// Greeting 返回会话开场白。
func (h *AssistantHandler) Greeting(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reply": assistant.Greeting})
}

type assistantRequest struct {
	Message string `json:"message" binding:"required"`
}

// Message 对访客输入做关键词匹配并返回回复。
// Respond 内部带模拟打字延迟，客户端断开时提前返回。
func (h *AssistantHandler) Message(c *gin.Context) {
	var req assistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	reply, err := h.responder.Respond(c.Request.Context(), req.Message)
	if err != nil {
		// 只有上下文取消会走到这里，客户端已经不在了。
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
