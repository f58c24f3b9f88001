package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const passwordChangeRequiredMessage = "password change required"

// RequirePasswordChangeCompletedMiddleware 阻止一次性初始密码的会话进入编辑接口：
// cmd/admin 生成的账号在改密前只能走 /v1/auth/change-password。
// 仅依赖 access token 内的 must_change_password 声明，避免每次请求都查库。
func RequirePasswordChangeCompletedMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get("mustChangePassword")
		if ok {
			if mustChange, ok := value.(bool); ok && mustChange {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": passwordChangeRequiredMessage})
				return
			}
		}
		c.Next()
	}
}
