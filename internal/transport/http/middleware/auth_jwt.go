package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"go-portfolio-api/internal/core/auth"
	resp "go-portfolio-api/internal/transport/http/response"
)

const KeyClaims = "claims"

// Verify 校验 Bearer token。
// 头缺失/为空 → 401；签名或过期问题 → 403。头的存在性要先判，
// 不能直接切子串（原始实现在无头时会崩）。
func Verify(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if ah == "" || !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Forbidden())
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(ah, "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Forbidden())
			return
		}
		claims, err := j.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Forbidden())
			return
		}
		c.Set(KeyClaims, claims)
		c.Next()
	}
}

// Claims 取出 Verify 放入的解码结果；未经过 Verify 时返回 nil。
func Claims(c *gin.Context) jwt.MapClaims {
	if v, ok := c.Get(KeyClaims); ok {
		if m, ok := v.(jwt.MapClaims); ok {
			return m
		}
	}
	return nil
}
