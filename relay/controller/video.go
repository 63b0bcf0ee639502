package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kingfer30/seedance-smoke/common/client"
	"github.com/kingfer30/seedance-smoke/common/image"
	"github.com/kingfer30/seedance-smoke/common/logger"
	"github.com/kingfer30/seedance-smoke/common/media"
	"github.com/kingfer30/seedance-smoke/common/video"
	"github.com/kingfer30/seedance-smoke/relay/adaptor/seedance"
	"github.com/kingfer30/seedance-smoke/relay/controller/validator"
	"github.com/kingfer30/seedance-smoke/relay/meta"
	relaymodel "github.com/kingfer30/seedance-smoke/relay/model"
)

// RelayVideoHelper sends one video generation request and writes the report to w.
// Non-200 answers and empty results are reported, not returned as errors; only
// local, transport and decoding failures are.
func RelayVideoHelper(ctx context.Context, meta *meta.Meta, videoRequest *relaymodel.VideoRequest, w io.Writer) error {
	if err := validator.ValidateVideoRequest(videoRequest); err != nil {
		return fmt.Errorf("invalid video request: %w", err)
	}
	checkPromptReferences(ctx, videoRequest)

	adaptor := &seedance.Adaptor{}
	adaptor.Init(meta, client.Get())

	renderRequest(w, adaptor.GetRequestURL(), videoRequest)

	requestBody, contentType, err := adaptor.ConvertVideoRequest(videoRequest)
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "converted request: %d bytes, %s", requestBody.Len(), contentType)

	resp, err := adaptor.DoRequest(ctx, requestBody, contentType)
	if err != nil {
		logger.Errorf(ctx, "DoRequest failed: %s", err.Error())
		return err
	}
	result, err := adaptor.DoResponse(resp)
	if err != nil {
		return err
	}
	logger.Infof(ctx, "%s answered %s in %s", adaptor.GetRequestURL(), result.Status, sinceStart(meta))

	return renderResult(ctx, w, result)
}

func checkPromptReferences(ctx context.Context, videoRequest *relaymodel.VideoRequest) {
	for _, n := range seedance.MissingReferences(videoRequest.Prompt, len(videoRequest.Files)) {
		logger.Warnf(ctx, "prompt refers to @%d but only %d file(s) are attached", n, len(videoRequest.Files))
	}
	for i, file := range videoRequest.Files {
		logger.Debugf(ctx, "@%d => %s (%s, %s)", i+1, file.Filename, file.MimeType, file.MaterialType)
	}
}

func renderRequest(w io.Writer, url string, videoRequest *relaymodel.VideoRequest) {
	files := make([]string, 0, len(videoRequest.Files))
	for _, file := range videoRequest.Files {
		materialType := file.MaterialType
		if materialType == "" {
			materialType = media.DetectMaterialType(file.Filename, file.MimeType)
		}
		files = append(files, fmt.Sprintf("%s (%s)", file.Filename, materialType))
	}
	rule := strings.Repeat("=", 42)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, " %s\n", seedance.MediaTestTitle)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "POST %s\n", url)
	fmt.Fprintf(w, "  model=%s\n", videoRequest.Model)
	fmt.Fprintf(w, "  files=%s\n", strings.Join(files, " + "))
	fmt.Fprintln(w)
}

func renderResult(ctx context.Context, w io.Writer, result *seedance.VideoResult) error {
	fmt.Fprintf(w, "HTTP %d\n", result.StatusCode)
	fmt.Fprintln(w)

	if isErrorHappened(result) {
		fmt.Fprintln(w, "请求失败:")
		fmt.Fprintln(w, string(result.Body))
		return nil
	}

	videoResponse, err := result.Decode()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "created: %s\n", formatCreated(videoResponse.Created))
	if len(videoResponse.Data) == 0 {
		fmt.Fprintln(w, "data 为空，未生成视频")
		fmt.Fprintf(w, "原始响应: %s\n", string(result.Body))
		return nil
	}
	for _, item := range videoResponse.Data {
		fmt.Fprintf(w, "revised_prompt: %s\n", item.RevisedPrompt)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Video URL:")
		fmt.Fprintln(w, item.Url)
		if !video.IsVideoUrl(item.Url) {
			logger.Warnf(ctx, "returned url does not look like a video file: %s", item.Url)
		}
	}
	return nil
}

func formatCreated(created any) string {
	if created == nil {
		return ""
	}
	return fmt.Sprint(created)
}

func sinceStart(meta *meta.Meta) string {
	if meta.StartTime.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%dms", time.Since(meta.StartTime).Milliseconds())
}

// ProbeAttachment logs what the server will see for a local image attachment.
func ProbeAttachment(ctx context.Context, path string, attachment *relaymodel.VideoAttachment) {
	if attachment.MaterialType != media.MaterialImage {
		return
	}
	width, height, format, err := image.GetImageSizeFromFile(path)
	if err != nil {
		logger.Warnf(ctx, "cannot read image size of %s: %s", path, err.Error())
		return
	}
	logger.Debugf(ctx, "%s is a %dx%d %s image", attachment.Filename, width, height, format)
}
