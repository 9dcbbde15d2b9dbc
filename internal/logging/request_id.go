package logging

import "github.com/google/uuid"

// GenerateRequestID generates a unique request ID for tying together the
// log lines of one operation; `oba config check` tags each invocation with
// one.
func GenerateRequestID() string {
	return uuid.NewString()
}
