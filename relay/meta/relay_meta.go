package meta

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kingfer30/seedance-smoke/common/ctxkey"
	"github.com/kingfer30/seedance-smoke/common/helper"
)

const VideoGenerationsPath = "/v1/videos/generations"

type Meta struct {
	// BaseURL is scheme://host[:port] of the video generation service
	BaseURL        string
	APIKey         string
	RequestURLPath string
	RequestId      string
	TokenName      string
	StartTime      time.Time
}

func New(baseURL string, apiKey string) *Meta {
	return &Meta{
		BaseURL:        strings.TrimSuffix(baseURL, "/"),
		APIKey:         apiKey,
		RequestURLPath: VideoGenerationsPath,
		RequestId:      helper.GenRequestID(),
		StartTime:      time.Now(),
	}
}

func GetByContext(c *gin.Context) *Meta {
	meta := Meta{
		APIKey:         strings.TrimPrefix(c.Request.Header.Get("Authorization"), "Bearer "),
		RequestURLPath: c.Request.URL.Path,
		RequestId:      c.GetString(helper.RequestIdKey),
		TokenName:      c.GetString(ctxkey.TokenName),
		StartTime:      c.GetTime(ctxkey.RequestStartTime),
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	meta.BaseURL = scheme + "://" + c.Request.Host
	return &meta
}

func (meta *Meta) FullRequestURL() string {
	return meta.BaseURL + meta.RequestURLPath
}
