// Package action provides the behavioral evidence sink consumed by the
// intrinsic functions.
//
// # Purpose
//
// Emulated calls with security-relevant side effects (process launch, user
// facing message display) do not perform the side effect. Instead they append
// a Record describing it, and the collected records become the triage report.
//
// # Concurrency Model
//
// Log serializes appends with a mutex so records from concurrently evaluated
// call sites are never interleaved or lost, and insertion order is preserved
// for later audit. Readers receive copies and never observe a partially
// appended record.
package action
