package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks an out-of-domain input to an algorithm or the runner.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResultMismatch marks reference and accelerated outputs that disagree.
	// It is recorded on comparison records, never returned by the comparator.
	ErrResultMismatch = errors.New("results differ between implementations")

	// ErrAcceleratedUnavailable is returned when the accelerated suite could not be loaded.
	ErrAcceleratedUnavailable = errors.New("accelerated implementation not available")

	// ErrInconsistentResult is returned when a pure function returned different values
	// across iterations of one benchmark.
	ErrInconsistentResult = errors.New("inconsistent result across iterations")
)

// ArgumentError represents an out-of-domain input.
type ArgumentError struct {
	Op     string
	Param  string
	Value  int
	Reason string
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument %s=%d (%s)", e.Op, e.Param, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// NewArgumentError creates a new ArgumentError
func NewArgumentError(op, param string, value int, reason string) *ArgumentError {
	return &ArgumentError{
		Op:     op,
		Param:  param,
		Value:  value,
		Reason: reason,
	}
}

// Kind classifies an error for user-facing output.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindResultMismatch
	KindAcceleratedUnavailable
	KindInconsistentResult
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindResultMismatch:
		return "result_mismatch"
	case KindAcceleratedUnavailable:
		return "accelerated_unavailable"
	case KindInconsistentResult:
		return "inconsistent_result"
	default:
		return "unknown"
	}
}

// Classify maps an error chain onto the taxonomy.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrResultMismatch):
		return KindResultMismatch
	case errors.Is(err, ErrAcceleratedUnavailable):
		return KindAcceleratedUnavailable
	case errors.Is(err, ErrInconsistentResult):
		return KindInconsistentResult
	default:
		return KindUnknown
	}
}

// Describe returns a single-line message suitable for the interactive menu.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return fmt.Sprintf("Error: %s expects %s, got %s=%d", argErr.Op, argErr.Reason, argErr.Param, argErr.Value)
	}

	switch Classify(err) {
	case KindAcceleratedUnavailable:
		return "Warning: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
