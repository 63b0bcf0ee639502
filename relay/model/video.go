package model

import (
	"io"
	"mime/multipart"

	"github.com/kingfer30/seedance-smoke/common/media"
)

// VideoRequest is the client side of POST /v1/videos/generations.
// Duration travels as a string-encoded integer in the form body.
type VideoRequest struct {
	Model      string            `json:"model" binding:"required,seedance_model"`
	Prompt     string            `json:"prompt" binding:"required"`
	Ratio      string            `json:"ratio,omitempty" binding:"omitempty,oneof=1:1 4:3 3:4 16:9 9:16"`
	Resolution string            `json:"resolution,omitempty" binding:"omitempty,oneof=480p 720p 1080p"`
	Duration   int               `json:"duration,omitempty" binding:"gt=0"`
	Files      []VideoAttachment `json:"-" binding:"required,min=1"`
}

// VideoFormRequest is what the endpoint binds from the multipart body.
type VideoFormRequest struct {
	Model      string                  `form:"model" binding:"required,seedance_model"`
	Prompt     string                  `form:"prompt" binding:"required"`
	Ratio      string                  `form:"ratio" binding:"omitempty,oneof=1:1 4:3 3:4 16:9 9:16"`
	Resolution string                  `form:"resolution" binding:"omitempty,oneof=480p 720p 1080p"`
	Duration   int                     `form:"duration" binding:"omitempty,gt=0"`
	Files      []*multipart.FileHeader `form:"files" binding:"required,min=1"`
}

// VideoAttachment is one file part. Its position in VideoRequest.Files is the
// N of the @N marker that refers to it in the prompt.
type VideoAttachment struct {
	Filename     string
	MimeType     string
	MaterialType media.MaterialType
	Reader       io.Reader
	Closer       io.Closer
}

func (a *VideoAttachment) Close() error {
	if a == nil || a.Closer == nil {
		return nil
	}
	return a.Closer.Close()
}

type VideoResponse struct {
	Created any         `json:"created"`
	Data    []VideoData `json:"data"`
}

type VideoData struct {
	Url           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt"`
}
