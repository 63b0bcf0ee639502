package image

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // 导入BMP编解码器
	_ "golang.org/x/image/tiff" // 导入TIFF编解码器
	_ "golang.org/x/image/webp" // 导入WebP编解码器
)

// GetImageSize decodes only the image header.
func GetImageSize(r io.Reader) (width int, height int, format string, err error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, "", err
	}
	return cfg.Width, cfg.Height, format, nil
}

func GetImageSizeFromBytes(data []byte) (width int, height int, format string, err error) {
	return GetImageSize(bytes.NewReader(data))
}

func GetImageSizeFromFile(path string) (width int, height int, format string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, "", err
	}
	defer file.Close()
	return GetImageSize(file)
}
