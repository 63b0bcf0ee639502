package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/kingfer30/seedance-smoke/common/logger"
	"github.com/kingfer30/seedance-smoke/middleware"
	"github.com/kingfer30/seedance-smoke/relay/controller/validator"
)

func SetRouter(server *gin.Engine) {
	if err := validator.RegisterGinValidation(); err != nil {
		logger.FatalLog("failed to register validation: " + err.Error())
	}
	server.Use(middleware.RequestId())
	middleware.SetUpLogger(server)
	server.Use(gzip.Gzip(gzip.DefaultCompression))
	SetRelayRouter(server)
	SetMockRouter(server)
}
