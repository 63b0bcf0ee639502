package model

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/kingfer30/seedance-smoke/common"
	"github.com/kingfer30/seedance-smoke/common/config"
	"github.com/kingfer30/seedance-smoke/common/helper"
	"github.com/kingfer30/seedance-smoke/common/logger"
	"github.com/kingfer30/seedance-smoke/common/media"
	"github.com/kingfer30/seedance-smoke/relay/adaptor/seedance"
	"github.com/kingfer30/seedance-smoke/relay/meta"
	relaymodel "github.com/kingfer30/seedance-smoke/relay/model"
	"github.com/patrickmn/go-cache"
)

// Submission is what the mock endpoint recorded for one accepted request.
type Submission struct {
	Id         string          `json:"id"`
	RequestId  string          `json:"request_id"`
	TokenName  string          `json:"token_name"`
	Model      string          `json:"model"`
	Prompt     string          `json:"prompt"`
	Ratio      string          `json:"ratio"`
	Resolution string          `json:"resolution"`
	Duration   int             `json:"duration"`
	Materials  []SubmittedFile `json:"materials"`
	CreatedAt  int64           `json:"created_at"`
}

type SubmittedFile struct {
	Filename     string             `json:"filename"`
	ContentType  string             `json:"content_type"`
	MaterialType media.MaterialType `json:"material_type"`
	MaterialCode int                `json:"material_code"`
	Size         int64              `json:"size"`
	Width        int                `json:"width,omitempty"`
	Height       int                `json:"height,omitempty"`
	DurationMs   int64              `json:"duration_ms,omitempty"`
}

var (
	storeOnce sync.Once
	store     *cache.Cache
)

func submissionStore() *cache.Cache {
	storeOnce.Do(func() {
		ttl := time.Duration(config.SubmissionTTL) * time.Second
		store = cache.New(ttl, 2*ttl)
	})
	return store
}

// NewSubmission copies the bound form and fills the server side defaults.
func NewSubmission(relayMeta *meta.Meta, form *relaymodel.VideoFormRequest, materials []SubmittedFile) (*Submission, error) {
	submission := &Submission{}
	if err := copier.Copy(submission, form); err != nil {
		return nil, fmt.Errorf("copy video form: %w", err)
	}
	submission.Id = "video-" + helper.GenRequestID()
	submission.RequestId = relayMeta.RequestId
	submission.TokenName = relayMeta.TokenName
	submission.Ratio = helper.AssignOrDefault(submission.Ratio, seedance.DefaultRatio)
	submission.Resolution = helper.AssignOrDefault(submission.Resolution, seedance.DefaultResolution)
	if submission.Duration <= 0 {
		submission.Duration = seedance.DefaultDuration
	}
	submission.Materials = materials
	submission.CreatedAt = helper.GetTimestamp()
	return submission, nil
}

func (s *Submission) MaterialList() []seedance.Material {
	materials := make([]seedance.Material, 0, len(s.Materials))
	for _, file := range s.Materials {
		materials = append(materials, seedance.Material{Type: file.MaterialType, Name: file.Filename})
	}
	return materials
}

func submissionKey(id string) string {
	return fmt.Sprintf("submission:%s", id)
}

// SaveSubmission stores s in Redis when enabled, in memory otherwise.
func SaveSubmission(s *Submission) error {
	if !common.RedisEnabled {
		submissionStore().Set(s.Id, s, cache.DefaultExpiration)
		return nil
	}
	jsonBytes, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return common.RedisSet(submissionKey(s.Id), string(jsonBytes), time.Duration(config.SubmissionTTL)*time.Second)
}

func GetSubmission(id string) (*Submission, bool) {
	if common.RedisEnabled {
		submissionObjectString, err := common.RedisGet(submissionKey(id))
		if err != nil {
			return nil, false
		}
		var submission Submission
		if err := json.Unmarshal([]byte(submissionObjectString), &submission); err != nil {
			logger.SysError("broken submission in Redis: " + err.Error())
			return nil, false
		}
		return &submission, true
	}
	v, ok := submissionStore().Get(id)
	if !ok {
		return nil, false
	}
	submission, ok := v.(*Submission)
	return submission, ok
}
