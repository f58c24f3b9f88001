package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"vfxfolio/internal/mailer"
)

// ContactHandler 把访客留言转发给外部邮件服务。
type ContactHandler struct {
	mailer           mailer.Mailer
	redisClient      *redis.Client
	logger           *slog.Logger
	rateLimitPerHour int
}

// NewContactHandler 构造 ContactHandler。
func NewContactHandler(m mailer.Mailer, redisClient *redis.Client, logger *slog.Logger, rateLimitPerHour int) *ContactHandler {
	return &ContactHandler{
		mailer:           m,
		redisClient:      redisClient,
		logger:           logger,
		rateLimitPerHour: rateLimitPerHour,
	}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Submit 校验留言字段，按来源 IP 限流后同步转发。
// 上游失败时只返回笼统错误，不向访客暴露邮件服务细节。
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if h.redisClient != nil && h.rateLimitPerHour > 0 {
		key := fmt.Sprintf("rate:contact:%s", c.ClientIP())
		count, err := incrWithTTL(c.Request.Context(), h.redisClient, key, time.Hour)
		if err != nil {
			h.logger.Warn("contact rate limit check failed", "error", err)
		} else if count > int64(h.rateLimitPerHour) {
			Error(c, http.StatusTooManyRequests, "too many messages, please try again later")
			return
		}
	}

	err := h.mailer.Send(c.Request.Context(), mailer.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		h.logger.Error("contact relay failed", "error", err)
		Internal(c, "failed to send message, please try again later")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully!"})
}
