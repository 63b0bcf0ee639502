package seedance

const (
	ModelSeedance         = "seedance-2.0"
	ModelSeedancePro      = "seedance-2.0-pro"
	ModelSeedanceFast     = "seedance-2.0-fast"
	ModelJimengSeedance   = "jimeng-video-seedance-2.0"
	ModelJimengSeedanceFF = "jimeng-video-seedance-2.0-fast"
)

var ModelList = []string{
	ModelSeedance,
	ModelSeedancePro,
	ModelSeedanceFast,
	ModelJimengSeedance,
	ModelJimengSeedanceFF,
}

// 服务端在缺省时使用的参数
const (
	DefaultRatio      = "4:3"
	DefaultResolution = "720p"
	DefaultDuration   = 4
)

// 图片+音频混合上传用例
const (
	MediaTestTitle    = "[测试3] 图片+音频混合上传"
	MediaTestModel    = ModelSeedanceFast
	MediaTestPrompt   = "@1 图片中的人物随着音乐 @2 开始跳舞"
	MediaTestRatio    = "9:16"
	MediaTestDuration = 5
	MediaTestImage    = "image/png"
	MediaTestAudio    = "audio/wav"
)

func IsSeedanceModel(model string) bool {
	for _, m := range ModelList {
		if m == model {
			return true
		}
	}
	return false
}
