package config

import (
	"github.com/joho/godotenv"
	"github.com/kingfer30/seedance-smoke/common/env"
)

// 默认值与手工冒烟测试脚本保持一致
const (
	defaultBaseURL   = "http://localhost:8000"
	defaultToken     = "99999"
	defaultImageFile = "/mnt/f/tmp/2026年2月20日/11.png"
	defaultAudioFile = "/mnt/f/tmp/2026年2月20日/22.wav"
)

var (
	BaseURL      = defaultBaseURL
	DefaultToken = defaultToken
	ImageFile    = defaultImageFile
	AudioFile    = defaultAudioFile

	// RelayTimeout unit is second, 0 means no timeout
	RelayTimeout = 0
	RelayProxy   = ""
	DebugEnabled = false

	MockPort  = 8000
	MockToken = ""
	// SubmissionTTL unit is second
	SubmissionTTL = 600

	// 为空时提交记录只保存在内存
	RedisConnString = ""
	RedisMasterName = ""
	RedisPassword   = ""

	EnvFileLoaded = false
)

func init() {
	readEnv()
}

// Load merges a local .env file into the process environment and re-reads every setting.
func Load() {
	EnvFileLoaded = godotenv.Load() == nil
	readEnv()
}

func readEnv() {
	BaseURL = env.String("SEEDANCE_BASE_URL", defaultBaseURL)
	DefaultToken = env.String("SEEDANCE_TOKEN", defaultToken)
	ImageFile = env.String("SEEDANCE_IMAGE_FILE", defaultImageFile)
	AudioFile = env.String("SEEDANCE_AUDIO_FILE", defaultAudioFile)
	RelayTimeout = env.Int("RELAY_TIMEOUT", 0)
	RelayProxy = env.String("RELAY_PROXY", "")
	DebugEnabled = env.Bool("DEBUG", false)
	MockPort = env.Int("MOCK_PORT", 8000)
	MockToken = env.String("MOCK_TOKEN", "")
	SubmissionTTL = env.Int("MOCK_SUBMISSION_TTL", 600)
	RedisConnString = env.String("REDIS_CONN_STRING", "")
	RedisMasterName = env.String("REDIS_MASTER_NAME", "")
	RedisPassword = env.String("REDIS_PASSWORD", "")
}
