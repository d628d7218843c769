package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-api/internal/core/auth"
	"go-portfolio-api/internal/domain"
	resp "go-portfolio-api/internal/transport/http/response"
)

// RequireAdmin 必须挂在 Verify 之后。
// 每次都实时查一遍 user 集合（协议上不允许缓存角色），
// 查无此人或角色不是 admin 都按 403 拒绝。
func RequireAdmin(users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := auth.Email(Claims(c))
		if email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Forbidden())
			return
		}
		u, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp.Msg(err.Error()))
			return
		}
		if u == nil || u.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Forbidden())
			return
		}
		c.Next()
	}
}
