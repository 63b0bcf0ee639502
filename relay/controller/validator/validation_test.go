package validator

import (
	"mime/multipart"
	"strings"
	"testing"

	"github.com/kingfer30/seedance-smoke/relay/adaptor/seedance"
	relaymodel "github.com/kingfer30/seedance-smoke/relay/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *relaymodel.VideoRequest {
	return &relaymodel.VideoRequest{
		Model:    seedance.MediaTestModel,
		Prompt:   seedance.MediaTestPrompt,
		Ratio:    seedance.MediaTestRatio,
		Duration: seedance.MediaTestDuration,
		Files: []relaymodel.VideoAttachment{
			{Filename: "11.png", MimeType: "image/png", Reader: strings.NewReader("x")},
		},
	}
}

func TestValidateVideoRequest(t *testing.T) {
	require.NoError(t, ValidateVideoRequest(validRequest()))

	tests := []struct {
		name    string
		mutate  func(r *relaymodel.VideoRequest)
		message string
	}{
		{"unknown model", func(r *relaymodel.VideoRequest) { r.Model = "sora-2" }, "model sora-2 is not a seedance model"},
		{"missing prompt", func(r *relaymodel.VideoRequest) { r.Prompt = "" }, "prompt is required"},
		{"bad ratio", func(r *relaymodel.VideoRequest) { r.Ratio = "2:1" }, "ratio 2:1 is not supported"},
		{"bad resolution", func(r *relaymodel.VideoRequest) { r.Resolution = "4k" }, "resolution 4k is not supported"},
		{"zero duration", func(r *relaymodel.VideoRequest) { r.Duration = 0 }, "duration must be greater than 0"},
		{"no files", func(r *relaymodel.VideoRequest) { r.Files = nil }, "files is required"},
		{"empty files", func(r *relaymodel.VideoRequest) { r.Files = []relaymodel.VideoAttachment{} }, "files needs at least 1 item(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validRequest()
			tt.mutate(request)
			err := ValidateVideoRequest(request)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	assert.Error(t, ValidateVideoRequest(nil))
}

func TestValidateVideoRequestAcceptsOptionalFields(t *testing.T) {
	request := validRequest()
	request.Ratio = ""
	request.Resolution = "1080p"
	assert.NoError(t, ValidateVideoRequest(request))
}

func TestValidateVideoForm(t *testing.T) {
	form := &relaymodel.VideoFormRequest{
		Model:  seedance.ModelSeedance,
		Prompt: "跳舞",
		Files:  []*multipart.FileHeader{{Filename: "11.png"}},
	}
	assert.NoError(t, ValidateVideoForm(form))

	form.Duration = -1
	err := ValidateVideoForm(form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration")

	assert.Error(t, ValidateVideoForm(nil))
}

func TestRegisterGinValidation(t *testing.T) {
	assert.NoError(t, RegisterGinValidation())
}
