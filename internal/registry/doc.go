// Package registry provides the Function Registry consulted by the
// interpreter when it evaluates a call.
//
// The Registry maps case-insensitive function names to Units, the callable
// emulations of the language's built-in functions. It performs no evaluation
// itself: it is pure indirection from a name to a Unit. Names are normalized
// to lowercase at registration time, and a later registration under the same
// name replaces the earlier one.
//
// A Registry is an explicit object, constructed once during initialization and
// passed to whoever evaluates calls, so tests can build a fresh one each.
package registry
