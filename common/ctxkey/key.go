package ctxkey

const (
	KeyRequestBody   = "key_request_body"
	TokenName        = "token_name"
	RequestStartTime = "request_start_time"
	SubmissionId     = "submission_id"
)
