package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	dbmodel "github.com/kingfer30/seedance-smoke/model"
	"github.com/kingfer30/seedance-smoke/relay/adaptor/openai"
)

func GetSubmission(c *gin.Context) {
	id := c.Param("id")
	submission, ok := dbmodel.GetSubmission(id)
	if !ok {
		respondError(c, openai.ErrorWrapper(fmt.Errorf("submission %s not found or expired", id), "submission_not_found", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    submission,
	})
}
