package value

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the tag of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindText
	KindArray
)

// String returns the macro-language name of the kind, as used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Double"
	case KindBool:
		return "Boolean"
	case KindText:
		return "String"
	case KindArray:
		return "Array"
	default:
		return "Unknown"
	}
}

// Value is an immutable tagged value. The zero Value is Null.
type Value struct {
	kind  Kind
	i     int64
	f     float64
	b     bool
	s     string
	elems []Value
}

// Null is the "no string" sentinel, distinct from the empty string.
var Null = Value{}

// Int returns an Integer value.
func Int(i int64) Value { return Value{kind: KindInteger, i: i} }

// Float returns a Double value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool returns a Boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Text returns a String value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Array returns an Array value holding a copy of elems.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, elems: append([]Value(nil), elems...)}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Integer returns the integer payload and whether v is an Integer.
func (v Value) Integer() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.i, true
}

// Number returns v as a float64 for Integer and Double values.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// Boolean returns the boolean payload and whether v is a Boolean.
func (v Value) Boolean() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Str returns the string payload and whether v is a String. It never coerces.
func (v Value) Str() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.s, true
}

// Elements returns a copy of the elements of an Array value, or nil.
func (v Value) Elements() []Value {
	if v.kind != KindArray {
		return nil
	}
	return append([]Value(nil), v.elems...)
}

// Text returns the text representation of a scalar value. Null converts to
// the empty string. Arrays have no text representation and report false.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindNull:
		return "", true
	case KindText:
		return v.s, true
	case KindInteger:
		return strconv.FormatInt(v.i, 10), true
	case KindFloat:
		return formatDouble(v.f), true
	case KindBool:
		if v.b {
			return "True", true
		}
		return "False", true
	}
	return "", false
}

// formatDouble mirrors the way the macro language prints a Double: plain
// decimal notation in the common range, scientific with an upper-case
// exponent outside it.
func formatDouble(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e15 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'E', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindInteger:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindBool:
		return v.b == other.b
	case KindText:
		return v.s == other.s
	case KindArray:
		if len(v.elems) != len(other.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(other.elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders v for logs and reports: text is quoted, Null is spelled out.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return strconv.Quote(v.s)
	case KindNull:
		return "Null"
	case KindArray:
		parts := make([]string, len(v.elems))
		for i, e := range v.elems {
			parts[i] = e.String()
		}
		return "Array(" + strings.Join(parts, ", ") + ")"
	}
	s, _ := v.Text()
	return s
}
