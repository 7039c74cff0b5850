package amk

import "fmt"

// UnknownTarget is returned when a target name cannot be resolved in the
// project. Any UnknownTarget matches any other with [errors.Is].
type UnknownTarget string

func (e UnknownTarget) Error() string {
	return fmt.Sprintf("unknown target '%s'", string(e))
}

func (UnknownTarget) Is(target error) bool {
	_, ok := target.(UnknownTarget)
	return ok
}

// OperationError wraps the failure of a single operation within a target.
// Op is the index of the operation in the target's sequence.
type OperationError struct {
	Target string
	Op     int
	Desc   string
	Err    error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("target '%s' op %d %s: %s", e.Target, e.Op, e.Desc, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }
