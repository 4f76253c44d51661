package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/vbaemu/internal/value"
)

var (
	// ErrInvalidArgument matches every *InvalidArgumentError via errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownFunction is returned by Invoke when a name does not resolve.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrNoReporter is returned by side-effect units evaluated without a Reporter.
	ErrNoReporter = errors.New("no action reporter in execution environment")
)

// Runtime error numbers of the emulated language that an InvalidArgumentError
// can carry.
const (
	CodeInvalidCall      = 5
	CodeTypeMismatch     = 13
	CodeInvalidUseOfNull = 94
	CodeWrongArgCount    = 450
)

// InvalidArgumentError is a contract violation detected by a unit.
type InvalidArgumentError struct {
	Function string
	// Position is the 1-based argument position, or 0 for arity errors.
	Position int
	Code     int
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	if e.Position == 0 {
		return fmt.Sprintf("%s: %s (runtime error %d)", e.Function, e.Reason, e.Code)
	}
	return fmt.Sprintf("%s: argument %d: %s (runtime error %d)", e.Function, e.Position, e.Reason, e.Code)
}

// Is makes errors.Is(err, ErrInvalidArgument) true for any InvalidArgumentError.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// CallError attributes a failure to the function and arguments of a call.
type CallError struct {
	Function string
	Args     []value.Value
	Err      error
}

func (e *CallError) Error() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s): %v", e.Function, strings.Join(parts, ", "), e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}
