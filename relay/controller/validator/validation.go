package validator

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kingfer30/seedance-smoke/relay/adaptor/seedance"
	relaymodel "github.com/kingfer30/seedance-smoke/relay/model"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func isSeedanceModel(fl validator.FieldLevel) bool {
	return seedance.IsSeedanceModel(fl.Field().String())
}

// get shares gin's `binding` tag so one set of rules serves client and endpoint.
func get() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")
		_ = validate.RegisterValidation("seedance_model", isSeedanceModel)
	})
	return validate
}

// RegisterGinValidation teaches gin's own binding engine the custom tags.
func RegisterGinValidation() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("seedance_model", isSeedanceModel)
	}
	return nil
}

func ValidateVideoRequest(videoRequest *relaymodel.VideoRequest) error {
	if videoRequest == nil {
		return fmt.Errorf("video request is nil")
	}
	return translate(get().Struct(videoRequest))
}

func ValidateVideoForm(form *relaymodel.VideoFormRequest) error {
	if form == nil {
		return fmt.Errorf("video form is nil")
	}
	return translate(get().Struct(form))
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s needs at least %s item(s)", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s %v is not supported, supported: %s", field, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
		case "seedance_model":
			msgs = append(msgs, fmt.Sprintf("model %v is not a seedance model, supported: %s", fe.Value(), strings.Join(seedance.ModelList, ", ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", field, fe.Tag()))
		}
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
