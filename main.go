package main

import (
	"context"
	"os"

	"github.com/kingfer30/seedance-smoke/common/client"
	"github.com/kingfer30/seedance-smoke/common/config"
	"github.com/kingfer30/seedance-smoke/common/helper"
	"github.com/kingfer30/seedance-smoke/common/logger"
	"github.com/kingfer30/seedance-smoke/relay/adaptor/seedance"
	"github.com/kingfer30/seedance-smoke/relay/controller"
	"github.com/kingfer30/seedance-smoke/relay/meta"
)

// usage: seedance-smoke [token]
func main() {
	config.Load()
	logger.SetupLogger(os.Stderr, os.Stderr)
	if config.EnvFileLoaded {
		logger.SysLog("loaded settings from .env")
	}
	client.Init()

	relayMeta := meta.New(config.BaseURL, resolveToken(os.Args[1:]))
	ctx := context.WithValue(context.Background(), helper.RequestIdKey, relayMeta.RequestId)

	imageFile, err := seedance.OpenAttachment(config.ImageFile, seedance.MediaTestImage)
	if err != nil {
		logger.FatalLog(err.Error())
	}
	defer imageFile.Close()
	controller.ProbeAttachment(ctx, config.ImageFile, imageFile)

	audioFile, err := seedance.OpenAttachment(config.AudioFile, seedance.MediaTestAudio)
	if err != nil {
		logger.FatalLog(err.Error())
	}
	defer audioFile.Close()

	videoRequest := seedance.NewMediaTestRequest(imageFile, audioFile)
	if err := controller.RelayVideoHelper(ctx, relayMeta, videoRequest, os.Stdout); err != nil {
		logger.FatalLog(err.Error())
	}
}

func resolveToken(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return config.DefaultToken
}
