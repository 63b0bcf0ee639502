package helper

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const RequestIdKey = "X-Oneapi-Request-Id"

func GenRequestID() string {
	return uuid.NewString()
}

func GetTimestamp() int64 {
	return time.Now().Unix()
}

func AssignOrDefault(value string, defaultValue string) string {
	if len(value) != 0 {
		return value
	}
	return defaultValue
}

func MessageWithRequestId(message string, id string) string {
	return fmt.Sprintf("%s (request id: %s)", message, id)
}

// MaskKey keeps the head and tail of a credential for log lines.
func MaskKey(key string) string {
	if len(key) <= 6 {
		return "***"
	}
	return key[:3] + "***" + key[len(key)-3:]
}
