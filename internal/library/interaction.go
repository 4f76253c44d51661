package library

import (
	"context"

	"github.com/vk/vbaemu/internal/action"
	"github.com/vk/vbaemu/internal/ctxlog"
	"github.com/vk/vbaemu/internal/registry"
	"github.com/vk/vbaemu/internal/value"
)

const (
	// vbOK is the MsgBox result for an acknowledged OK button.
	vbOK = 1
	// vbMinimizedFocus is the default Shell window style.
	vbMinimizedFocus = 2
)

// MsgBox records the prompt as a "Display Message" action and returns vbOK.
// MsgBox(prompt[, buttons[, title[, helpfile, context]]])
type MsgBox struct{}

func (MsgBox) Name() string { return "MsgBox" }

func (u MsgBox) Evaluate(ctx context.Context, env *registry.Env, args []value.Value) (value.Value, error) {
	if err := checkArity(u.Name(), args, 1, 5); err != nil {
		return value.Null, err
	}
	if env == nil || env.Reporter == nil {
		return value.Null, ErrNoReporter
	}
	ctxlog.FromContext(ctx).Debug("Message box displayed.", "unit", u.Name(), "prompt", args[0].String())
	env.Reporter.ReportAction(action.CategoryDisplayMessage, args[0], u.Name())
	return value.Int(vbOK), nil
}

// Shell records the command as an "Execute Command" action. No process is
// started, so it returns 0, the documented result of a failed launch.
// Shell(pathname[, windowstyle])
type Shell struct{}

func (Shell) Name() string { return "Shell" }

func (u Shell) Evaluate(ctx context.Context, env *registry.Env, args []value.Value) (value.Value, error) {
	if err := checkArity(u.Name(), args, 1, 2); err != nil {
		return value.Null, err
	}
	style := int64(vbMinimizedFocus)
	if len(args) > 1 {
		s, err := intArg(u.Name(), args, 1)
		if err != nil {
			return value.Null, err
		}
		style = s
	}
	if env == nil || env.Reporter == nil {
		return value.Null, ErrNoReporter
	}
	ctxlog.FromContext(ctx).Info("Shell command intercepted.", "unit", u.Name(), "command", args[0].String(), "window_style", style)
	env.Reporter.ReportAction(action.CategoryExecuteCommand, args[0], u.Name())
	return value.Int(0), nil
}
