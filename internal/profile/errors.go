package profile

import "errors"

// Sentinel errors that can be checked with errors.Is()
var (
	// ErrInvalidName indicates a profile name that cannot key the store;
	// the empty string doubles as the "no active profile" sentinel
	ErrInvalidName = errors.New("profile name must not be empty")

	// ErrDuplicateName indicates a profile with that name already exists
	ErrDuplicateName = errors.New("profile already exists")

	// ErrNotFound indicates no profile with that name is configured
	ErrNotFound = errors.New("profile not found")

	// ErrWriteFailed indicates persisted state could not be written;
	// in-memory changes must not be assumed durable
	ErrWriteFailed = errors.New("failed to write profile store")

	// ErrInvalidFormat indicates an import file is not a valid profile export
	ErrInvalidFormat = errors.New("invalid configuration file format")
)
