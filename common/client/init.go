package client

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kingfer30/seedance-smoke/common/config"
	"github.com/kingfer30/seedance-smoke/common/logger"
)

var HTTPClient *http.Client

func Init() {
	var transport http.RoundTripper
	if config.RelayProxy != "" {
		logger.SysLog(fmt.Sprintf("using %s as api relay proxy", config.RelayProxy))
		proxyURL, err := url.Parse(config.RelayProxy)
		if err != nil {
			logger.FatalLog(fmt.Sprintf("RELAY_PROXY set but invalid: %s", config.RelayProxy))
		}
		transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
		}
	}

	// 0 表示不设超时, 与手工脚本一致: 请求一直阻塞到服务端返回或连接失败
	if config.RelayTimeout == 0 {
		HTTPClient = &http.Client{
			Transport: transport,
		}
	} else {
		HTTPClient = &http.Client{
			Timeout:   time.Duration(config.RelayTimeout) * time.Second,
			Transport: transport,
		}
	}
}

// Get returns the shared client, initialising it on first use.
func Get() *http.Client {
	if HTTPClient == nil {
		Init()
	}
	return HTTPClient
}
