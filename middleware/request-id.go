package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kingfer30/seedance-smoke/common/ctxkey"
	"github.com/kingfer30/seedance-smoke/common/helper"
)

func RequestId() func(c *gin.Context) {
	return func(c *gin.Context) {
		id := c.GetHeader(helper.RequestIdKey)
		if id == "" {
			id = helper.GenRequestID()
		}
		c.Set(helper.RequestIdKey, id)
		c.Set(ctxkey.RequestStartTime, time.Now())
		ctx := context.WithValue(c.Request.Context(), helper.RequestIdKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(helper.RequestIdKey, id)
		c.Next()
	}
}
