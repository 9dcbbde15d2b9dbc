package acl

import "errors"

var (
	// ErrInvalidRight is returned when a rule names a right ParseRights
	// doesn't recognize.
	ErrInvalidRight = errors.New("invalid right")

	// ErrInvalidScope is returned when a rule names a scope ParseScope
	// doesn't recognize.
	ErrInvalidScope = errors.New("invalid scope")

	// ErrInvalidConfig is a sentinel for a caller of ValidateConfig to wrap
	// when the errors it collects should abort further use of the config.
	// Nothing in this package returns it.
	ErrInvalidConfig = errors.New("invalid ACL configuration")
)
