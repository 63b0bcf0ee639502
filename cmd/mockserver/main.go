package main

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kingfer30/seedance-smoke/common"
	"github.com/kingfer30/seedance-smoke/common/config"
	"github.com/kingfer30/seedance-smoke/common/logger"
	"github.com/kingfer30/seedance-smoke/router"
)

func main() {
	config.Load()
	logger.SetupLogger(os.Stdout, os.Stderr)
	logger.SysLog("seedance mock server started")
	if config.EnvFileLoaded {
		logger.SysLog("loaded settings from .env")
	}
	if !config.DebugEnabled {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger.SysLog("running in debug mode")
	}
	if config.MockToken == "" {
		logger.SysLog("MOCK_TOKEN is not set, any bearer token is accepted")
	}

	if err := common.InitRedisClient(); err != nil {
		logger.FatalLog("failed to initialize Redis: " + err.Error())
	}

	server := gin.New()
	server.Use(gin.Recovery())
	router.SetRouter(server)

	port := strconv.Itoa(config.MockPort)
	logger.SysLogf("server listening on http://localhost:%s", port)
	if err := server.Run(":" + port); err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
