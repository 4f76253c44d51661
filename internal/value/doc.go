// Package value defines the tagged value model shared by the emulator. Every
// argument handed to an intrinsic function and every result it returns is a
// Value carrying exactly one Kind.
//
// Coercions are explicit: callers ask for the text representation of a value
// with Text rather than relying on implicit conversion, so each intrinsic
// decides which kinds it accepts at each argument position.
package value
