package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kingfer30/seedance-smoke/common/ctxkey"
	"github.com/kingfer30/seedance-smoke/common/helper"
)

func SetUpLogger(server *gin.Engine) {
	server.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		var requestID string
		var tokenName string
		var submissionId string
		if param.Keys != nil {
			requestID, _ = param.Keys[helper.RequestIdKey].(string)
			tokenName, _ = param.Keys[ctxkey.TokenName].(string)
			submissionId, _ = param.Keys[ctxkey.SubmissionId].(string)
		}
		if submissionId != "" {
			param.Path = param.Path + " -> " + submissionId
		}
		if param.StatusCode != http.StatusOK {
			return fmt.Sprintf("[GIN] %s | %s | %3d | %13v | %15s | %s | %7s %s | %s\n",
				param.TimeStamp.Format("2006/01/02 - 15:04:05"),
				requestID,
				param.StatusCode,
				param.Latency,
				param.ClientIP,
				tokenName,
				param.Method,
				param.Path,
				param.ErrorMessage,
			)
		}
		return fmt.Sprintf("[GIN] %s | %s | %3d | %13v | %15s | %s | %7s %s\n",
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			requestID,
			param.StatusCode,
			param.Latency,
			param.ClientIP,
			tokenName,
			param.Method,
			param.Path,
		)
	}))
}
