// Package library implements the intrinsic functions of the emulated macro
// language and the bootstrap that registers them together with the predefined
// constants.
//
// Every intrinsic is a registry.Unit. Each one validates its own argument
// count and the kinds it accepts at each position, returning an
// *InvalidArgumentError on a contract violation. Value-domain edge cases such
// as Null propagation or out-of-range positions are ordinary language
// semantics and yield a value, never an error.
//
// Units with security-relevant side effects (MsgBox, Shell) perform no real
// interaction: they append an action.Record to the Reporter found in the
// registry.Env and return the documented fixed result. Environ likewise reads
// only the emulated environment carried in the registry.Env.
package library
