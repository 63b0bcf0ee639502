package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kingfer30/seedance-smoke/common/ctxkey"
)

// 表单内存上限 32M, 超出部分落盘
const maxMultipartMemory = 32 << 20

func GetRequestBody(c *gin.Context) ([]byte, error) {
	requestBody, _ := c.Get(ctxkey.KeyRequestBody)
	if requestBody != nil {
		return requestBody.([]byte), nil
	}
	requestBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	_ = c.Request.Body.Close()
	c.Set(ctxkey.KeyRequestBody, requestBody)
	return requestBody.([]byte), nil
}

func UnmarshalBodyReusable(c *gin.Context, v any) error {
	requestBody, err := GetRequestBody(c)
	if err != nil {
		return err
	}
	contentType := c.Request.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		err = json.Unmarshal(requestBody, v)
	} else if strings.HasPrefix(contentType, "multipart/form-data") {
		//这里需要重新绑定, 因为它读的request的
		c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		err = BindMultipartForm(c.Request, v)
	} else {
		c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		err = c.ShouldBind(v)
	}
	// Reset request body
	c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
	return err
}

// BindMultipartForm fills dest from a multipart request using `form` tags.
// File slices keep part order: the bare field name first, in the order the
// client sent it, then indexed names such as "files[0]" by index.
func BindMultipartForm(r *http.Request, dest any) error {
	val := reflect.ValueOf(dest)
	if val.Kind() != reflect.Ptr {
		return fmt.Errorf("dest must be a pointer to struct")
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("dest must point to a struct")
	}

	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return err
		}
	}

	typ := val.Type()
	fileHeaderType := reflect.TypeOf((*multipart.FileHeader)(nil))

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)
		if !fieldVal.CanSet() {
			continue
		}

		tag := field.Tag.Get("form")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = field.Name
		}
		tag = strings.Split(tag, ",")[0]

		// 文件数组字段
		if field.Type.Kind() == reflect.Slice && field.Type.Elem() == fileHeaderType {
			files := collectFiles(r.MultipartForm, tag)
			if len(files) == 0 {
				continue
			}
			slice := reflect.MakeSlice(field.Type, len(files), len(files))
			for idx, fh := range files {
				slice.Index(idx).Set(reflect.ValueOf(fh))
			}
			fieldVal.Set(slice)
			continue
		}

		// 单个文件字段, 允许文件不存在(非必填字段)
		if field.Type == fileHeaderType {
			if headers := r.MultipartForm.File[tag]; len(headers) > 0 {
				fieldVal.Set(reflect.ValueOf(headers[0]))
			}
			continue
		}

		values := r.MultipartForm.Value[tag]
		if len(values) == 0 {
			continue
		}

		switch fieldVal.Kind() {
		case reflect.String:
			fieldVal.SetString(values[0])
		case reflect.Int, reflect.Int32, reflect.Int64:
			intVal, err := strconv.ParseInt(strings.TrimSpace(values[0]), 10, 64)
			if err != nil {
				return fmt.Errorf("field '%s' is not an integer: %s", tag, values[0])
			}
			fieldVal.SetInt(intVal)
		case reflect.Bool:
			boolVal, _ := strconv.ParseBool(values[0])
			fieldVal.SetBool(boolVal)
		case reflect.Slice:
			if field.Type.Elem().Kind() == reflect.String {
				slice := reflect.MakeSlice(field.Type, len(values), len(values))
				for i, v := range values {
					slice.Index(i).SetString(v)
				}
				fieldVal.Set(slice)
			}
		}
	}

	return nil
}

func collectFiles(form *multipart.Form, tag string) []*multipart.FileHeader {
	var files []*multipart.FileHeader
	files = append(files, form.File[tag]...)

	type indexed struct {
		index   int
		headers []*multipart.FileHeader
	}
	var extra []indexed
	for key, headers := range form.File {
		if !strings.HasPrefix(key, tag+"[") || !strings.HasSuffix(key, "]") {
			continue
		}
		index, err := strconv.Atoi(key[len(tag)+1 : len(key)-1])
		if err != nil {
			continue
		}
		extra = append(extra, indexed{index: index, headers: headers})
	}
	sort.Slice(extra, func(i, j int) bool {
		return extra[i].index < extra[j].index
	})
	for _, e := range extra {
		files = append(files, e.headers...)
	}
	return files
}
