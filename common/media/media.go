package media

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type MaterialType string

const (
	MaterialImage MaterialType = "image"
	MaterialVideo MaterialType = "video"
	MaterialAudio MaterialType = "audio"
)

// Code is the numeric material type used in upstream draft payloads.
func (t MaterialType) Code() int {
	switch t {
	case MaterialImage:
		return 1
	case MaterialVideo:
		return 2
	case MaterialAudio:
		return 3
	}
	return 0
}

var mimeToMaterialType = map[string]MaterialType{
	"image/jpeg":      MaterialImage,
	"image/png":       MaterialImage,
	"image/webp":      MaterialImage,
	"image/gif":       MaterialImage,
	"image/bmp":       MaterialImage,
	"video/mp4":       MaterialVideo,
	"video/quicktime": MaterialVideo,
	"video/x-m4v":     MaterialVideo,
	"audio/mpeg":      MaterialAudio,
	"audio/wav":       MaterialAudio,
	"audio/x-wav":     MaterialAudio,
	"audio/mp3":       MaterialAudio,
}

var extToMaterialType = map[string]MaterialType{
	".jpg":  MaterialImage,
	".jpeg": MaterialImage,
	".png":  MaterialImage,
	".webp": MaterialImage,
	".gif":  MaterialImage,
	".bmp":  MaterialImage,
	".mp4":  MaterialVideo,
	".mov":  MaterialVideo,
	".m4v":  MaterialVideo,
	".mp3":  MaterialAudio,
	".wav":  MaterialAudio,
}

var extToContentType = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".m4v":  "video/x-m4v",
	".mp3":  "audio/mp3",
	".wav":  "audio/wav",
}

// DetectMaterialType 优先通过 MIME 类型判断, 兜底通过文件扩展名, 都失败时视为图片
func DetectMaterialType(filename string, mimeType string) MaterialType {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if t, ok := mimeToMaterialType[mimeType]; ok {
		return t
	}
	if t, ok := extToMaterialType[strings.ToLower(filepath.Ext(filename))]; ok {
		return t
	}
	return MaterialImage
}

// ContentTypeByExtension returns "" when the extension is unknown.
func ContentTypeByExtension(filename string) string {
	return extToContentType[strings.ToLower(filepath.Ext(filename))]
}

// DetectContentType resolves a MIME type from the file name, falling back to sniffing the leading bytes.
func DetectContentType(filename string, head []byte) string {
	if contentType := ContentTypeByExtension(filename); contentType != "" {
		return contentType
	}
	mtype := mimetype.Detect(head)
	contentType := mtype.String()
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return NormalizeContentType(contentType)
}

func NormalizeContentType(contentType string) string {
	switch contentType {
	case "audio/mpeg":
		return "audio/mp3"
	case "audio/x-wav", "audio/wave", "audio/vnd.wave":
		return "audio/wav"
	case "audio/x-flac":
		return "audio/flac"
	}
	return contentType
}

// CheckLegalMaterial 检查多媒体文件是否合法(接口是否支持上传)
func CheckLegalMaterial(contentType string) (MaterialType, error) {
	if t, ok := mimeToMaterialType[NormalizeContentType(contentType)]; ok {
		return t, nil
	}
	if t, ok := mimeToMaterialType[contentType]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unsupport media type: %s", contentType)
}

// AudioDuration 解析音频时长(毫秒), WAV 精确解析, 其他格式按 128kbps 估算
func AudioDuration(data []byte) int {
	if len(data) >= 44 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE" {
		byteRate := binary.LittleEndian.Uint32(data[28:32])
		if byteRate > 0 {
			offset := 12
			for offset < len(data)-8 {
				chunkId := string(data[offset : offset+4])
				chunkSize := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
				if chunkId == "data" {
					return roundMs(float64(chunkSize) / float64(byteRate))
				}
				offset += 8 + int(chunkSize)
			}
			return roundMs(float64(len(data)-44) / float64(byteRate))
		}
	}
	return roundMs(float64(len(data)) / (128 * 1000 / 8))
}

func roundMs(seconds float64) int {
	return int(math.Round(seconds * 1000))
}
