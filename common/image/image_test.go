package image_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	img "github.com/kingfer30/seedance-smoke/common/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	m := image.NewRGBA(image.Rect(0, 0, width, height))
	m.Set(0, 0, color.Black)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, m))
	return buf.Bytes()
}

func TestGetImageSize(t *testing.T) {
	data := encodePNG(t, 64, 48)

	width, height, format, err := img.GetImageSize(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 64, width)
	assert.Equal(t, 48, height)
	assert.Equal(t, "png", format)

	width, height, _, err = img.GetImageSizeFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, 64, width)
	assert.Equal(t, 48, height)
}

func TestGetImageSizeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "11.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, 9, 16), 0o644))

	width, height, format, err := img.GetImageSizeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9, width)
	assert.Equal(t, 16, height)
	assert.Equal(t, "png", format)

	_, _, _, err = img.GetImageSizeFromFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestGetImageSizeRejectsGarbage(t *testing.T) {
	_, _, _, err := img.GetImageSize(bytes.NewReader([]byte("RIFF....WAVEfmt ")))
	assert.Error(t, err)
}
