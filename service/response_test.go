package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMessage(t *testing.T) {
	t.Run("appends the request id once", func(t *testing.T) {
		msg := RenderMessage("files is required", "req-1")
		assert.Equal(t, "files is required (request id: req-1)", msg)
		assert.Equal(t, msg, RenderMessage(msg, "req-2"))
	})

	t.Run("hides credentials", func(t *testing.T) {
		msg := RenderMessage("upstream rejected Bearer sk-secret", "req-1")
		assert.NotContains(t, msg, "sk-secret")
		assert.Contains(t, msg, "Bearer ***")
	})

	t.Run("hides local paths", func(t *testing.T) {
		msg := RenderMessage("open /mnt/f/tmp/11.png: no such file", "req-1")
		assert.NotContains(t, msg, "/mnt/f/tmp")
		assert.Contains(t, msg, "<path>")
	})
}
