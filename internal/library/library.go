package library

import (
	"context"

	"github.com/vk/vbaemu/internal/ctxlog"
	"github.com/vk/vbaemu/internal/registry"
	"github.com/vk/vbaemu/internal/value"
	"github.com/vk/vbaemu/internal/vbaconst"
)

// Units returns one instance of every intrinsic function, in name order.
func Units() []registry.Unit {
	return []registry.Unit{
		Asc{},
		Chr{},
		Environ{},
		LCase{},
		Left{},
		Len{},
		Mid{},
		MsgBox{},
		Right{},
		Shell{},
		StrReverse{},
		UCase{},
	}
}

// Module implements the registry.Module interface for the intrinsic library.
type Module struct{}

// Register registers every intrinsic under its lowercase name.
func (m *Module) Register(r *registry.Registry) {
	for _, u := range Units() {
		r.Register(u.Name(), u)
	}
}

// Bootstrap runs every module's Register against reg and loads every
// predefined constant into consts. With no modules the intrinsic library is
// registered. Calling it again overwrites the entries with identical ones.
func Bootstrap(reg *registry.Registry, consts *vbaconst.Table, modules ...registry.Module) {
	if len(modules) == 0 {
		modules = []registry.Module{&Module{}}
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	consts.Load(vbaconst.Predefined)
}

// Invoke resolves name in reg and evaluates it with already-evaluated args.
// Any failure is returned as a *CallError naming the function and arguments.
func Invoke(ctx context.Context, reg *registry.Registry, env *registry.Env, name string, args []value.Value) (value.Value, error) {
	unit, ok := reg.Resolve(name)
	if !ok {
		return value.Null, &CallError{Function: name, Args: args, Err: ErrUnknownFunction}
	}
	return Call(ctx, unit, env, args)
}

// Call evaluates an already resolved unit, wrapping any failure in a
// *CallError.
func Call(ctx context.Context, unit registry.Unit, env *registry.Env, args []value.Value) (value.Value, error) {
	logger := ctxlog.FromContext(ctx)
	result, err := unit.Evaluate(ctx, env, args)
	if err != nil {
		logger.Debug("Intrinsic call failed.", "function", unit.Name(), "error", err)
		return value.Null, &CallError{Function: unit.Name(), Args: args, Err: err}
	}
	logger.Debug("Intrinsic call evaluated.", "function", unit.Name(), "result", result.String())
	return result, nil
}
