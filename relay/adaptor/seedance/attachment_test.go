package seedance

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/kingfer30/seedance-smoke/common/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAttachment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "22.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF-data"), 0o644))

	attachment, err := OpenAttachment(path, MediaTestAudio)
	require.NoError(t, err)
	defer attachment.Close()

	assert.Equal(t, "22.wav", attachment.Filename)
	assert.Equal(t, "audio/wav", attachment.MimeType)
	assert.Equal(t, media.MaterialAudio, attachment.MaterialType)
	data, err := io.ReadAll(attachment.Reader)
	require.NoError(t, err)
	assert.Equal(t, "RIFF-data", string(data))
}

func TestOpenAttachmentSniffsMissingMimeType(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))))
	path := filepath.Join(t.TempDir(), "picture")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	attachment, err := OpenAttachment(path, "")
	require.NoError(t, err)
	defer attachment.Close()

	assert.Equal(t, "image/png", attachment.MimeType)
	assert.Equal(t, media.MaterialImage, attachment.MaterialType)
	data, err := io.ReadAll(attachment.Reader)
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), data)
}

func TestOpenAttachmentMissingFile(t *testing.T) {
	_, err := OpenAttachment(filepath.Join(t.TempDir(), "11.png"), MediaTestImage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "11.png")
}

func TestNewMediaTestRequest(t *testing.T) {
	request := testRequest()
	assert.Equal(t, "seedance-2.0-fast", request.Model)
	assert.Equal(t, "9:16", request.Ratio)
	assert.Equal(t, 5, request.Duration)
	assert.Empty(t, request.Resolution)
	require.Len(t, request.Files, 2)
	assert.Equal(t, "11.png", request.Files[0].Filename)
	assert.Equal(t, "22.wav", request.Files[1].Filename)
}
