package scene

import "errors"

// Validation errors returned by New. They are wrapped with the offending
// body's name; test with errors.Is.
var (
	ErrEmptyName     = errors.New("body has no name")
	ErrDuplicateBody = errors.New("duplicate body name")
	ErrUnknownParent = errors.New("unknown parent")
	ErrCycle         = errors.New("parent chain forms a cycle")
)
