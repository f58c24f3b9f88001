package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vfxfolio/internal/notify"
)

// NotificationHandler 暴露后台的 toast 列表与手动关闭。
type NotificationHandler struct {
	notifier *notify.Notifier
}

// NewNotificationHandler 构造 NotificationHandler。
func NewNotificationHandler(notifier *notify.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// List 返回尚未过期的 toast。
func (h *NotificationHandler) List(c *gin.Context) {
	items, err := h.notifier.Active(c.Request.Context())
	if err != nil {
		Internal(c, "failed to load notifications")
		return
	}
	if items == nil {
		items = []notify.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Dismiss 提前移除一条 toast；不存在（或已过期）时返回 404。
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	found, err := h.notifier.Dismiss(c.Request.Context(), c.Param("id"))
	if err != nil {
		Internal(c, "failed to dismiss notification")
		return
	}
	if !found {
		NotFound(c, "notification not found")
		return
	}
	c.Status(http.StatusNoContent)
}
