package scramble

import (
	"errors"
	"fmt"
)

var (
	ErrIndex            = errors.New("scramble: index out of range")
	ErrNotFound         = errors.New("scramble: letter not found exactly once")
	ErrAmbiguousInverse = errors.New("scramble: ambiguous rotate-by-letter inverse")
	ErrUnknownOperation = errors.New("scramble: unknown operation")
)

// StepError reports the program step that aborted a run.
type StepError struct {
	Index int
	Mode  RunMode
	Op    Operation
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step %d (%s): %v", e.Mode, e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Kind returns a stable label for the underlying error sentinel.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIndex):
		return "index"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrAmbiguousInverse):
		return "ambiguous_inverse"
	case errors.Is(err, ErrUnknownOperation):
		return "unknown_operation"
	default:
		return "internal"
	}
}
