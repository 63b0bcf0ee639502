package service

import (
	"regexp"
	"strings"

	"github.com/kingfer30/seedance-smoke/common/helper"
	"github.com/kingfer30/seedance-smoke/common/logger"
)

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+\S+`)
	// 本地绝对路径, 如 /mnt/f/tmp/xxx.png
	localPathPattern = regexp.MustCompile(`(?:^|\s)(/[^\s/]+){2,}/?`)
)

// 返回消息渲染
func RenderMessage(msg string, id string) string {
	if bearerPattern.MatchString(msg) || localPathPattern.MatchString(msg) {
		logger.SysLogf("scrubbing error message: %s", msg)
		msg = bearerPattern.ReplaceAllString(msg, "Bearer ***")
		msg = localPathPattern.ReplaceAllString(msg, " <path>")
		msg = strings.TrimSpace(msg)
	}
	//如果存在request id, 说明已经渲染过, 这里不再继续添加
	if !strings.Contains(msg, "(request id:") {
		msg = helper.MessageWithRequestId(msg, id)
	}
	return msg
}
