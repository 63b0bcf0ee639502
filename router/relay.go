package router

import (
	"github.com/gin-gonic/gin"
	"github.com/kingfer30/seedance-smoke/controller"
	"github.com/kingfer30/seedance-smoke/middleware"
)

func SetRelayRouter(router *gin.Engine) {
	relayV1Router := router.Group("/v1")
	relayV1Router.Use(middleware.TokenAuth())
	{
		relayV1Router.POST("/videos/generations", controller.VideoGenerations)
	}
}

func SetMockRouter(router *gin.Engine) {
	mockRouter := router.Group("/mock")
	{
		mockRouter.GET("/submissions/:id", controller.GetSubmission)
	}
}
