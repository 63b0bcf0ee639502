package seedance

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/kingfer30/seedance-smoke/common/media"
	relaymodel "github.com/kingfer30/seedance-smoke/relay/model"
	"github.com/pkg/errors"
)

const sniffLen = 512

// OpenAttachment opens a local file for upload. An empty mimeType is resolved
// from the extension or the first bytes of the file. The caller closes it.
func OpenAttachment(path string, mimeType string) (*relaymodel.VideoAttachment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open attachment %s", path)
	}
	filename := filepath.Base(path)

	var reader io.Reader = file
	if mimeType == "" {
		buffered := bufio.NewReaderSize(file, sniffLen)
		head, err := buffered.Peek(sniffLen)
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			_ = file.Close()
			return nil, errors.Wrapf(err, "failed to read attachment %s", path)
		}
		mimeType = media.DetectContentType(filename, head)
		reader = buffered
	}

	return &relaymodel.VideoAttachment{
		Filename:     filename,
		MimeType:     mimeType,
		MaterialType: media.DetectMaterialType(filename, mimeType),
		Reader:       reader,
		Closer:       file,
	}, nil
}

// NewMediaTestRequest is the image + audio request of the smoke test.
// The image must come first: the prompt refers to it as @1 and to the audio as @2.
func NewMediaTestRequest(image *relaymodel.VideoAttachment, audio *relaymodel.VideoAttachment) *relaymodel.VideoRequest {
	return &relaymodel.VideoRequest{
		Model:    MediaTestModel,
		Prompt:   MediaTestPrompt,
		Ratio:    MediaTestRatio,
		Duration: MediaTestDuration,
		Files:    []relaymodel.VideoAttachment{*image, *audio},
	}
}
