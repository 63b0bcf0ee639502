package seedance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/kingfer30/seedance-smoke/common/helper"
	"github.com/kingfer30/seedance-smoke/common/logger"
	"github.com/kingfer30/seedance-smoke/relay/meta"
	relaymodel "github.com/kingfer30/seedance-smoke/relay/model"
	"github.com/pkg/errors"
)

type Adaptor struct {
	meta   *meta.Meta
	client *http.Client
}

func (a *Adaptor) Init(meta *meta.Meta, httpClient *http.Client) {
	a.meta = meta
	a.client = httpClient
	if a.client == nil {
		a.client = http.DefaultClient
	}
}

func (a *Adaptor) GetRequestURL() string {
	return a.meta.FullRequestURL()
}

func (a *Adaptor) SetupRequestHeader(req *http.Request, contentType string) {
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+a.meta.APIKey)
	if a.meta.RequestId != "" {
		req.Header.Set(helper.RequestIdKey, a.meta.RequestId)
	}
}

// ConvertVideoRequest encodes the request as multipart/form-data: the text
// fields first, then every attachment under the shared "files" field in order.
func (a *Adaptor) ConvertVideoRequest(request *relaymodel.VideoRequest) (*bytes.Buffer, string, error) {
	if request == nil {
		return nil, "", errors.New("request is nil")
	}
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := [][2]string{
		{"model", request.Model},
		{"prompt", request.Prompt},
		{"ratio", request.Ratio},
		{"duration", strconv.Itoa(request.Duration)},
	}
	if request.Resolution != "" {
		fields = append(fields, [2]string{"resolution", request.Resolution})
	}
	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, "", errors.Wrapf(err, "failed to write %s field", field[0])
		}
	}

	for i := range request.Files {
		file := &request.Files[i]
		part, err := writer.CreatePart(filePartHeader("files", file.Filename, file.MimeType))
		if err != nil {
			return nil, "", errors.Wrapf(err, "failed to create form file %s", file.Filename)
		}
		if file.Reader == nil {
			return nil, "", errors.Errorf("attachment %s has no content", file.Filename)
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return nil, "", errors.Wrapf(err, "failed to copy file data %s", file.Filename)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "failed to close multipart writer")
	}
	return body, writer.FormDataContentType(), nil
}

func (a *Adaptor) DoRequest(ctx context.Context, requestBody io.Reader, contentType string) (*http.Response, error) {
	fullRequestURL := a.GetRequestURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullRequestURL, requestBody)
	if err != nil {
		return nil, errors.Wrap(err, "new request failed")
	}
	a.SetupRequestHeader(req, contentType)
	logger.Debugf(ctx, "POST %s with token %s", fullRequestURL, helper.MaskKey(a.meta.APIKey))

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request failed")
	}
	return resp, nil
}

// VideoResult keeps the raw body next to the decoded payload so callers can
// echo what the server actually sent.
type VideoResult struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (a *Adaptor) DoResponse(resp *http.Response) (*VideoResult, error) {
	defer resp.Body.Close()
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body failed")
	}
	return &VideoResult{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       responseBody,
	}, nil
}

func (r *VideoResult) Decode() (*relaymodel.VideoResponse, error) {
	var videoResponse relaymodel.VideoResponse
	decoder := json.NewDecoder(bytes.NewReader(r.Body))
	decoder.UseNumber()
	if err := decoder.Decode(&videoResponse); err != nil {
		return nil, errors.Wrap(err, "unmarshal response body failed")
	}
	// 整个响应体必须是单个 JSON 值
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("unmarshal response body failed: trailing data")
	}
	return &videoResponse, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func filePartHeader(fieldName string, filename string, contentType string) textproto.MIMEHeader {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(fieldName), quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)
	return h
}
