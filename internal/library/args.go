package library

import (
	"fmt"

	"github.com/vk/vbaemu/internal/value"
)

// checkArity verifies that between lo and hi arguments were supplied.
func checkArity(fn string, args []value.Value, lo, hi int) error {
	if len(args) >= lo && len(args) <= hi {
		return nil
	}
	var want string
	switch {
	case lo == hi:
		want = fmt.Sprintf("exactly %d", lo)
	default:
		want = fmt.Sprintf("%d to %d", lo, hi)
	}
	return &InvalidArgumentError{
		Function: fn,
		Code:     CodeWrongArgCount,
		Reason:   fmt.Sprintf("requires %s arguments, got %d", want, len(args)),
	}
}

// intArg returns the Integer at position i (0-based). No coercion is applied.
func intArg(fn string, args []value.Value, i int) (int64, error) {
	n, ok := args[i].Integer()
	if !ok {
		return 0, &InvalidArgumentError{
			Function: fn,
			Position: i + 1,
			Code:     CodeTypeMismatch,
			Reason:   fmt.Sprintf("expected Integer, got %s", args[i].Kind()),
		}
	}
	return n, nil
}

// textArg returns the text representation of the scalar at position i.
func textArg(fn string, args []value.Value, i int) (string, error) {
	s, ok := args[i].Text()
	if !ok {
		return "", &InvalidArgumentError{
			Function: fn,
			Position: i + 1,
			Code:     CodeTypeMismatch,
			Reason:   fmt.Sprintf("%s has no text representation", args[i].Kind()),
		}
	}
	return s, nil
}

// nonNullArg rejects Null at position i for functions that do not propagate it.
func nonNullArg(fn string, args []value.Value, i int) error {
	if args[i].IsNull() {
		return &InvalidArgumentError{
			Function: fn,
			Position: i + 1,
			Code:     CodeInvalidUseOfNull,
			Reason:   "invalid use of Null",
		}
	}
	return nil
}
