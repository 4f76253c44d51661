// Package vbaconst holds the Constant Table: the macro language's predefined
// symbolic constants (message-box style flags, control characters, the null
// string sentinel and the object-error base), keyed case-insensitively.
package vbaconst
