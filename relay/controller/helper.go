package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kingfer30/seedance-smoke/common"
	"github.com/kingfer30/seedance-smoke/relay/adaptor/seedance"
	"github.com/kingfer30/seedance-smoke/relay/controller/validator"
	relaymodel "github.com/kingfer30/seedance-smoke/relay/model"
)

// GetAndValidateVideoForm binds the multipart body of a video generation call.
func GetAndValidateVideoForm(c *gin.Context) (*relaymodel.VideoFormRequest, error) {
	videoForm := &relaymodel.VideoFormRequest{}
	err := common.UnmarshalBodyReusable(c, videoForm)
	if err != nil {
		return nil, err
	}
	err = validator.ValidateVideoForm(videoForm)
	if err != nil {
		return nil, err
	}
	return videoForm, nil
}

func isErrorHappened(result *seedance.VideoResult) bool {
	if result == nil {
		return true
	}
	return result.StatusCode != http.StatusOK
}
