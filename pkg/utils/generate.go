package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a random id for correlating a request with its logs.
func GenerateRequestID() string {
	return uuid.New().String()
}
