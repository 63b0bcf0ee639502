package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/kingfer30/seedance-smoke/common/helper"
	"github.com/kingfer30/seedance-smoke/common/logger"
	"github.com/kingfer30/seedance-smoke/relay/adaptor/openai"
	"github.com/kingfer30/seedance-smoke/service"
)

func abortWithMessage(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"error": gin.H{
			"message": service.RenderMessage(message, c.GetString(helper.RequestIdKey)),
			"type":    openai.ErrorType,
			"code":    code,
		},
	})
	logger.Error(c.Request.Context(), message)
	c.Abort()
}
