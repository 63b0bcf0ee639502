package common

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadForm struct {
	Model    string                  `form:"model"`
	Duration int                     `form:"duration"`
	Stream   bool                    `form:"stream"`
	Tags     []string                `form:"tags"`
	Files    []*multipart.FileHeader `form:"files"`
	Cover    *multipart.FileHeader   `form:"cover"`
	Ignored  string                  `form:"-"`
}

func newMultipartRequest(t *testing.T, build func(w *multipart.Writer)) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	build(writer)
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, "/v1/videos/generations", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func writeFile(t *testing.T, w *multipart.Writer, field, name, content string) {
	t.Helper()
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
}

func TestBindMultipartFormKeepsFileOrder(t *testing.T) {
	req := newMultipartRequest(t, func(w *multipart.Writer) {
		_ = w.WriteField("model", "seedance-2.0-fast")
		_ = w.WriteField("duration", " 5 ")
		_ = w.WriteField("stream", "true")
		_ = w.WriteField("tags", "a")
		_ = w.WriteField("tags", "b")
		writeFile(t, w, "files", "11.png", "img")
		writeFile(t, w, "files", "22.wav", "wav")
		writeFile(t, w, "files[1]", "44.mp4", "mp4")
		writeFile(t, w, "files[0]", "33.jpg", "jpg")
		writeFile(t, w, "cover", "cover.png", "cover")
	})

	var form uploadForm
	require.NoError(t, BindMultipartForm(req, &form))

	assert.Equal(t, "seedance-2.0-fast", form.Model)
	assert.Equal(t, 5, form.Duration)
	assert.True(t, form.Stream)
	assert.Equal(t, []string{"a", "b"}, form.Tags)
	require.Len(t, form.Files, 4)
	names := make([]string, 0, len(form.Files))
	for _, f := range form.Files {
		names = append(names, f.Filename)
	}
	assert.Equal(t, []string{"11.png", "22.wav", "33.jpg", "44.mp4"}, names)
	require.NotNil(t, form.Cover)
	assert.Equal(t, "cover.png", form.Cover.Filename)
}

func TestBindMultipartFormRejectsBadInteger(t *testing.T) {
	req := newMultipartRequest(t, func(w *multipart.Writer) {
		_ = w.WriteField("duration", "five")
	})
	var form uploadForm
	err := BindMultipartForm(req, &form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration")
}

func TestBindMultipartFormNeedsStructPointer(t *testing.T) {
	req := newMultipartRequest(t, func(w *multipart.Writer) {})
	assert.Error(t, BindMultipartForm(req, uploadForm{}))
	s := "x"
	assert.Error(t, BindMultipartForm(req, &s))
}

func TestUnmarshalBodyReusable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("json body can be read twice", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"model":"seedance-2.0"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		var first, second struct {
			Model string `json:"model"`
		}
		require.NoError(t, UnmarshalBodyReusable(c, &first))
		require.NoError(t, UnmarshalBodyReusable(c, &second))
		assert.Equal(t, "seedance-2.0", first.Model)
		assert.Equal(t, first, second)
	})

	t.Run("multipart body", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = newMultipartRequest(t, func(w *multipart.Writer) {
			_ = w.WriteField("model", "seedance-2.0-pro")
			writeFile(t, w, "files", "11.png", "img")
		})

		var form uploadForm
		require.NoError(t, UnmarshalBodyReusable(c, &form))
		assert.Equal(t, "seedance-2.0-pro", form.Model)
		require.Len(t, form.Files, 1)
		assert.Equal(t, "11.png", form.Files[0].Filename)
	})
}
