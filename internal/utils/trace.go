package utils

import (
	"regexp"

	"github.com/google/uuid"
)

// traceIDPattern limits caller-supplied trace ids to what is safe to echo in
// a header and to write into a log line.
var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// NewTraceID returns a time-ordered UUIDv7, or a random UUIDv4 when the
// clock source fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// ValidTraceID reports whether id may be reused as a request's trace id.
func ValidTraceID(id string) bool {
	return traceIDPattern.MatchString(id)
}
