package common

import (
	"testing"

	"github.com/kingfer30/seedance-smoke/common/config"
	"github.com/stretchr/testify/assert"
)

func TestInitRedisClientDisabled(t *testing.T) {
	old := config.RedisConnString
	config.RedisConnString = ""
	defer func() { config.RedisConnString = old }()

	RedisEnabled = true
	assert.NoError(t, InitRedisClient())
	assert.False(t, RedisEnabled)
}
