package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/vbaemu/internal/ctxlog"
	"github.com/vk/vbaemu/internal/registry"
	"github.com/vk/vbaemu/internal/value"
	"golang.org/x/text/encoding/charmap"
)

// Len returns the number of characters in a string or elements in an array.
type Len struct{}

func (Len) Name() string { return "Len" }

func (u Len) Evaluate(ctx context.Context, env *registry.Env, args []value.Value) (value.Value, error) {
	if err := checkArity(u.Name(), args, 1, 1); err != nil {
		return value.Null, err
	}
	switch arg := args[0]; arg.Kind() {
	case value.KindNull:
		return value.Null, nil
	case value.KindText:
		s, _ := arg.Str()
		return value.Int(int64(len([]rune(s)))), nil
	case value.KindArray:
		return value.Int(int64(len(arg.Elements()))), nil
	default:
		return value.Null, &InvalidArgumentError{
			Function: u.Name(),
			Position: 1,
			Code:     CodeTypeMismatch,
			Reason:   fmt.Sprintf("cannot measure the length of %s", arg.Kind()),
		}
	}
}

// Mid extracts a substring: Mid(string, start[, length]).
//
// The rules are applied in order and the first one that fires decides the
// result. Positions are 1-based and count characters, not bytes.
type Mid struct{}

func (Mid) Name() string { return "Mid" }

func (u Mid) Evaluate(ctx context.Context, env *registry.Env, args []value.Value) (value.Value, error) {
	logger := ctxlog.FromContext(ctx).With("unit", u.Name())
	if err := checkArity(u.Name(), args, 2, 3); err != nil {
		return value.Null, err
	}
	if args[0].IsNull() {
		logger.Debug("Null string, returning Null.")
		return value.Null, nil
	}
	s, err := textArg(u.Name(), args, 0)
	if err != nil {
		return value.Null, err
	}
	start, err := intArg(u.Name(), args, 1)
	if err != nil {
		return value.Null, err
	}

	runes := []rune(s)
	n := int64(len(runes))
	if start > n {
		logger.Debug("Start beyond end of string, returning empty string.", "start", start, "len", n)
		return value.Text(""), nil
	}
	// The language leaves start <= 0 unspecified; it is clamped to 1.
	if start <= 0 {
		start = 1
	}
	if len(args) == 2 {
		logger.Debug("No length, returning rest of string.", "start", start)
		return value.Text(string(runes[start-1:])), nil
	}

	length, err := intArg(u.Name(), args, 2)
	if err != nil {
		return value.Null, err
	}
	// start+length-1 > n, rearranged so a huge length cannot overflow.
	if length > n-start+1 {
		logger.Debug("Length runs past end of string, returning rest of string.", "start", start, "length", length)
		return value.Text(string(runes[start-1:])), nil
	}
	if length <= 0 {
		return value.Text(""), nil
	}
	logger.Debug("Returning substring.", "start", start, "length", length)
	return value.Text(string(runes[start-1 : start-1+length])), nil
}

// Left returns the leftmost characters of a string: Left(string, length).
type Left struct{}

func (Left) Name() string { return "Left" }

func (u Left) Evaluate(ctx context.Context, env *registry.Env, args []value.Value) (value.Value, error) {
	return edge(u.Name(), args, func(runes []rune, n int) []rune { return runes[:n] })
}

// Right returns the rightmost characters of a string: Right(string, length).
type Right struct{}

func (Right) Name() string { return "Right" }

func (u Right) Evaluate(ctx context.Context, env *registry.Env, args []value.Value) (value.Value, error) {
	return edge(u.Name(), args, func(runes []rune, n int) []rune { return runes[len(runes)-n:] })
}

// edge implements the shared rules of Left and Right: Null propagates, a
// negative length is invalid, and a length past the end returns the whole
// string.
func edge(fn string, args []value.Value, take func(runes []rune, n int) []rune) (value.Value, error) {
	if err := checkArity(fn, args, 2, 2); err != nil {
		return value.Null, err
	}
	if args[0].IsNull() {
		return value.Null, nil
	}
	s, err := textArg(fn, args, 0)
	if err != nil {
		return value.Null, err
	}
	length, err := intArg(fn, args, 1)
	if err != nil {
		return value.Null, err
	}
	if length < 0 {
		return value.Null, &InvalidArgumentError{Function: fn, Position: 2, Code: CodeInvalidCall, Reason: "length must not be negative"}
	}
	runes := []rune(s)
	if length >= int64(len(runes)) {
		return value.Text(s), nil
	}
	return value.Text(string(take(runes, int(length)))), nil
}

// LCase converts a string to lower case.
type LCase struct{}

func (LCase) Name() string { return "LCase" }

func (u LCase) Evaluate(ctx context.Context, env *registry.Env, args []value.Value) (value.Value, error) {
	return mapText(u.Name(), args, strings.ToLower)
}

// UCase converts a string to upper case.
type UCase struct{}

func (UCase) Name() string { return "UCase" }

func (u UCase) Evaluate(ctx context.Context, env *registry.Env, args []value.Value) (value.Value, error) {
	return mapText(u.Name(), args, strings.ToUpper)
}

func mapText(fn string, args []value.Value, f func(string) string) (value.Value, error) {
	if err := checkArity(fn, args, 1, 1); err != nil {
		return value.Null, err
	}
	if args[0].IsNull() {
		return value.Null, nil
	}
	s, err := textArg(fn, args, 0)
	if err != nil {
		return value.Null, err
	}
	return value.Text(f(s)), nil
}

// StrReverse reverses the characters of a string. Null is not accepted.
type StrReverse struct{}

func (StrReverse) Name() string { return "StrReverse" }

func (u StrReverse) Evaluate(ctx context.Context, env *registry.Env, args []value.Value) (value.Value, error) {
	if err := checkArity(u.Name(), args, 1, 1); err != nil {
		return value.Null, err
	}
	if err := nonNullArg(u.Name(), args, 0); err != nil {
		return value.Null, err
	}
	s, err := textArg(u.Name(), args, 0)
	if err != nil {
		return value.Null, err
	}
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return value.Text(string(runes)), nil
}

// Chr returns the character for an ANSI (Windows-1252) character code.
type Chr struct{}

func (Chr) Name() string { return "Chr" }

func (u Chr) Evaluate(ctx context.Context, env *registry.Env, args []value.Value) (value.Value, error) {
	if err := checkArity(u.Name(), args, 1, 1); err != nil {
		return value.Null, err
	}
	if err := nonNullArg(u.Name(), args, 0); err != nil {
		return value.Null, err
	}
	code, err := intArg(u.Name(), args, 0)
	if err != nil {
		return value.Null, err
	}
	if code < 0 || code > 255 {
		return value.Null, &InvalidArgumentError{
			Function: u.Name(),
			Position: 1,
			Code:     CodeInvalidCall,
			Reason:   fmt.Sprintf("character code %d out of range 0-255", code),
		}
	}
	return value.Text(string(charmap.Windows1252.DecodeByte(byte(code)))), nil
}

// Asc returns the ANSI character code of the first character of a string.
// Characters with no Windows-1252 encoding map to '?'.
type Asc struct{}

func (Asc) Name() string { return "Asc" }

func (u Asc) Evaluate(ctx context.Context, env *registry.Env, args []value.Value) (value.Value, error) {
	if err := checkArity(u.Name(), args, 1, 1); err != nil {
		return value.Null, err
	}
	if err := nonNullArg(u.Name(), args, 0); err != nil {
		return value.Null, err
	}
	s, err := textArg(u.Name(), args, 0)
	if err != nil {
		return value.Null, err
	}
	if s == "" {
		return value.Null, &InvalidArgumentError{Function: u.Name(), Position: 1, Code: CodeInvalidCall, Reason: "empty string"}
	}
	r := []rune(s)[0]
	b, ok := charmap.Windows1252.EncodeRune(r)
	if !ok {
		b = '?'
	}
	return value.Int(int64(b)), nil
}
