package core

import "errors"

// Error taxonomy shared by the drawing core and its collaborators
// Callers wrap these with context and test with errors.Is
var (
	// ErrInvalidState marks an operation on an entity that is not in a usable state:
	// drawing a detached figure, selecting a container index that does not exist
	ErrInvalidState = errors.New("invalid state")

	// ErrNotFound marks a persisted container whose storage key is absent
	ErrNotFound = errors.New("not found")

	// ErrCorrupt marks persisted data that does not decode into a valid container
	ErrCorrupt = errors.New("corrupt data")
)
