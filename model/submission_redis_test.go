package model

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/kingfer30/seedance-smoke/common"
	"github.com/kingfer30/seedance-smoke/common/config"
	"github.com/kingfer30/seedance-smoke/common/media"
	"github.com/kingfer30/seedance-smoke/relay/meta"
	relaymodel "github.com/kingfer30/seedance-smoke/relay/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)

	oldRDB, oldEnabled, oldTTL := common.RDB, common.RedisEnabled, config.SubmissionTTL
	common.RDB = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	common.RedisEnabled = true
	config.SubmissionTTL = 60
	t.Cleanup(func() {
		common.RDB, common.RedisEnabled, config.SubmissionTTL = oldRDB, oldEnabled, oldTTL
	})
	return mr
}

func redisSubmission(t *testing.T) *Submission {
	t.Helper()
	form := &relaymodel.VideoFormRequest{Model: "seedance-2.0-fast", Prompt: "@1 跳舞", Ratio: "9:16", Duration: 5}
	submission, err := NewSubmission(&meta.Meta{RequestId: "req-redis", TokenName: "***"}, form, []SubmittedFile{
		{Filename: "11.png", ContentType: "image/png", MaterialType: media.MaterialImage, MaterialCode: 1, Width: 90, Height: 160},
		{Filename: "22.wav", ContentType: "audio/wav", MaterialType: media.MaterialAudio, MaterialCode: 3, DurationMs: 1000},
	})
	require.NoError(t, err)
	return submission
}

func TestSubmissionRedisRoundTrip(t *testing.T) {
	mr := useRedis(t)
	submission := redisSubmission(t)

	require.NoError(t, SaveSubmission(submission))
	assert.True(t, mr.Exists("submission:"+submission.Id))

	got, ok := GetSubmission(submission.Id)
	require.True(t, ok)
	assert.Equal(t, submission, got)

	_, ok = GetSubmission("video-unknown")
	assert.False(t, ok)
}

func TestSubmissionRedisExpires(t *testing.T) {
	mr := useRedis(t)
	submission := redisSubmission(t)
	require.NoError(t, SaveSubmission(submission))

	assert.Equal(t, 60*time.Second, mr.TTL("submission:"+submission.Id))

	mr.FastForward(61 * time.Second)
	_, ok := GetSubmission(submission.Id)
	assert.False(t, ok)
}

func TestSubmissionRedisBrokenRecord(t *testing.T) {
	mr := useRedis(t)
	require.NoError(t, mr.Set("submission:video-broken", "{not json"))

	_, ok := GetSubmission("video-broken")
	assert.False(t, ok)
}
