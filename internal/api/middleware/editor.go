package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RoleChecker 判断用户是否持有编辑角色。
type RoleChecker interface {
	IsEditor(ctx context.Context, userID uint) (bool, error)
}

// RequireEditorMiddleware 把编辑接口限制在持有 admin 角色的会话。
// 每次请求都重查角色分配；查询失败与无角色同样拒绝（fail closed）。
func RequireEditorMiddleware(roles RoleChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("userID")
		userID, ok := value.(uint)
		if !exists || !ok {
			abortUnauthorized(c)
			return
		}

		isEditor, err := roles.IsEditor(c.Request.Context(), userID)
		if err != nil {
			LoggerFromContext(c).Warn("role query failed, denying editor access",
				slog.Uint64("user_id", uint64(userID)),
				slog.Any("error", err),
			)
			isEditor = false
		}
		if !isEditor {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
