package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID generates a unique request ID for tracking
func GenerateRequestID() string {
	return uuid.New().String()
}

// NewEntityID generates a unique identifier for domain entities
// (postings, applicants, complaints).
func NewEntityID(prefix string) string {
	return prefix + "_" + uuid.New().String()
}

// ClampInt limits v to the [min, max] range.
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
