// Package callexpr evaluates macro call sites written as expressions, such as
// Mid("Hello", 2, 3) or MsgBox("a${vbCrLf}b", vbOKOnly).
//
// Expressions are parsed with the HCL native syntax. Before evaluation the
// syntax tree is walked to collect every called function and every referenced
// root name; each is then bound case-insensitively to the Function Registry
// and the Constant Table, so MID(...) and vbcrlf resolve the same way the
// macro language resolves identifiers. Intrinsics are exposed to HCL through
// cty function adapters, and unit failures surface as diagnostics that carry
// the source range of the failing call.
//
// String literals use HCL escapes, so a backslash must be doubled:
// Shell("C:\\Windows\\System32\\calc.exe"). A single backslash followed by
// a letter is a parse error.
//
// Every string that passes through the frontend is normalized to Unicode NFC,
// both literals and constants. Len("e\u0301") therefore yields 1 here while
// library.Invoke, which receives the value untouched, yields 2, and recorded
// actions hold the composed form.
package callexpr
