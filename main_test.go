package main

import (
	"testing"

	"github.com/kingfer30/seedance-smoke/common/config"
	"github.com/stretchr/testify/assert"
)

func TestResolveToken(t *testing.T) {
	old := config.DefaultToken
	config.DefaultToken = "99999"
	defer func() { config.DefaultToken = old }()

	t.Run("defaults when no argument is given", func(t *testing.T) {
		assert.Equal(t, "99999", resolveToken(nil))
		assert.Equal(t, "99999", resolveToken([]string{}))
	})

	t.Run("empty argument falls back to the default", func(t *testing.T) {
		assert.Equal(t, "99999", resolveToken([]string{""}))
	})

	t.Run("first argument wins", func(t *testing.T) {
		assert.Equal(t, "sk-abc", resolveToken([]string{"sk-abc", "ignored"}))
	})
}
