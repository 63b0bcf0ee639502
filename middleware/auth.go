package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kingfer30/seedance-smoke/common/config"
	"github.com/kingfer30/seedance-smoke/common/ctxkey"
	"github.com/kingfer30/seedance-smoke/common/helper"
)

// TokenAuth accepts any bearer token unless MOCK_TOKEN pins one.
func TokenAuth() func(c *gin.Context) {
	return func(c *gin.Context) {
		authorization := c.Request.Header.Get("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			abortWithMessage(c, http.StatusUnauthorized, "missing_token", "未提供令牌, 请使用 Authorization: Bearer <token>")
			return
		}
		key := strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
		if key == "" {
			abortWithMessage(c, http.StatusUnauthorized, "missing_token", "令牌为空")
			return
		}
		if config.MockToken != "" && subtle.ConstantTimeCompare([]byte(key), []byte(config.MockToken)) != 1 {
			abortWithMessage(c, http.StatusUnauthorized, "invalid_token", "无效的令牌")
			return
		}
		c.Set(ctxkey.TokenName, helper.MaskKey(key))
		c.Next()
	}
}
