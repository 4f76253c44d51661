// Package app contains the core application logic. It wires a registry,
// constant table and action log into one emulator instance, applies the
// optional profile and evaluates a script of call expressions, decoupled
// from any specific entrypoint like a CLI.
package app
