package controller

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kingfer30/seedance-smoke/common/ctxkey"
	"github.com/kingfer30/seedance-smoke/common/helper"
	"github.com/kingfer30/seedance-smoke/common/image"
	"github.com/kingfer30/seedance-smoke/common/logger"
	"github.com/kingfer30/seedance-smoke/common/media"
	dbmodel "github.com/kingfer30/seedance-smoke/model"
	"github.com/kingfer30/seedance-smoke/relay/adaptor/openai"
	"github.com/kingfer30/seedance-smoke/relay/adaptor/seedance"
	relaycontroller "github.com/kingfer30/seedance-smoke/relay/controller"
	"github.com/kingfer30/seedance-smoke/relay/meta"
	"github.com/kingfer30/seedance-smoke/relay/model"
	"github.com/kingfer30/seedance-smoke/service"
	"github.com/pkg/errors"
)

// 单个素材上限 20M
const maxMaterialSize = 20 << 20

// VideoGenerations answers like the real service without generating anything:
// it checks the upload, records it and returns a fake video url.
func VideoGenerations(c *gin.Context) {
	ctx := c.Request.Context()
	relayMeta := meta.GetByContext(c)

	form, err := relaycontroller.GetAndValidateVideoForm(c)
	if err != nil {
		respondError(c, openai.ErrorWrapper(err, "invalid_video_request", http.StatusBadRequest))
		return
	}

	materials := make([]dbmodel.SubmittedFile, 0, len(form.Files))
	for i, fileHeader := range form.Files {
		material, err := inspectMaterial(fileHeader)
		if err != nil {
			respondError(c, openai.ErrorWrapper(errors.Wrapf(err, "files[%d]", i), "invalid_material", http.StatusBadRequest))
			return
		}
		logger.Debugf(ctx, "@%d => %s (%s, %d bytes)", i+1, material.Filename, material.ContentType, material.Size)
		materials = append(materials, *material)
	}

	submission, err := dbmodel.NewSubmission(relayMeta, form, materials)
	if err != nil {
		respondError(c, openai.ErrorWrapper(err, "save_submission_failed", http.StatusInternalServerError))
		return
	}
	for _, n := range seedance.MissingReferences(submission.Prompt, len(materials)) {
		logger.Warnf(ctx, "prompt refers to @%d but only %d file(s) were uploaded", n, len(materials))
	}
	if err := dbmodel.SaveSubmission(submission); err != nil {
		respondError(c, openai.ErrorWrapper(err, "save_submission_failed", http.StatusInternalServerError))
		return
	}
	c.Set(ctxkey.SubmissionId, submission.Id)
	logger.Infof(ctx, "accepted %s from %s: model=%s ratio=%s resolution=%s duration=%d files=%d",
		submission.Id, submission.TokenName, submission.Model, submission.Ratio, submission.Resolution, submission.Duration, len(materials))

	c.JSON(http.StatusOK, model.VideoResponse{
		Created: submission.CreatedAt,
		Data: []model.VideoData{
			{
				Url:           fmt.Sprintf("%s/mock/videos/%s.mp4", relayMeta.BaseURL, submission.Id),
				RevisedPrompt: seedance.RenderPrompt(submission.Prompt, submission.MaterialList()),
			},
		},
	})
}

func inspectMaterial(fileHeader *multipart.FileHeader) (*dbmodel.SubmittedFile, error) {
	if fileHeader.Size > maxMaterialSize {
		return nil, errors.Errorf("%s is larger than %d bytes", fileHeader.Filename, maxMaterialSize)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxMaterialSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "read uploaded file")
	}
	if len(data) > maxMaterialSize {
		return nil, errors.Errorf("%s is larger than %d bytes", fileHeader.Filename, maxMaterialSize)
	}

	contentType := media.NormalizeContentType(fileHeader.Header.Get("Content-Type"))
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = media.DetectContentType(fileHeader.Filename, data)
	}
	if _, err := media.CheckLegalMaterial(contentType); err != nil {
		return nil, err
	}

	material := &dbmodel.SubmittedFile{
		Filename:     fileHeader.Filename,
		ContentType:  contentType,
		MaterialType: media.DetectMaterialType(fileHeader.Filename, contentType),
		Size:         int64(len(data)),
	}
	material.MaterialCode = material.MaterialType.Code()
	switch material.MaterialType {
	case media.MaterialImage:
		width, height, _, err := image.GetImageSize(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "decode image %s", fileHeader.Filename)
		}
		material.Width, material.Height = width, height
	case media.MaterialAudio:
		material.DurationMs = int64(media.AudioDuration(data))
	}
	return material, nil
}

func respondError(c *gin.Context, err *model.ErrorWithStatusCode) {
	err.Error.Message = service.RenderMessage(err.Error.Message, c.GetString(helper.RequestIdKey))
	c.JSON(err.StatusCode, gin.H{
		"error": err.Error,
	})
}
