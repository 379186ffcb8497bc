package vkstart

import "github.com/cockroachdb/errors"

// The failures StartUp can end with. Returned errors carry context and are
// marked with one of these, test for them with errors.Is.
var (
	// ErrUnsupportedCapability a requested validation layer is not available on the host
	ErrUnsupportedCapability = errors.New("unsupported capability")
	// ErrInstanceCreationFailed the backend rejected the capability request
	ErrInstanceCreationFailed = errors.New("instance creation failed")
	// ErrDiagnosticsSetupFailed the diagnostics channel could not be registered
	ErrDiagnosticsSetupFailed = errors.New("diagnostics setup failed")
	// ErrInvalidState an operation was called in the wrong lifecycle state
	ErrInvalidState = errors.New("invalid lifecycle state")
)
