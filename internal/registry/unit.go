package registry

import (
	"context"

	"github.com/vk/vbaemu/internal/action"
	"github.com/vk/vbaemu/internal/value"
)

// Env is the ambient execution state the interpreter hands to every Unit.
type Env struct {
	// Reporter receives behavioral records from units with side effects.
	Reporter action.Reporter
	// Environment is the emulated process environment, keyed by upper-case
	// variable name. Units never read the host environment.
	Environment map[string]string
}

// Unit is the emulation of one intrinsic function.
//
// Evaluate receives arguments that have already been evaluated to concrete
// values. It must not modify args, must not block, and must not perform real
// I/O. Contract violations are returned as errors; value-domain edge cases
// produce a value.
type Unit interface {
	Name() string
	Evaluate(ctx context.Context, env *Env, args []value.Value) (value.Value, error)
}

// Module is implemented by packages that contribute units to a Registry.
type Module interface {
	Register(r *Registry)
}
