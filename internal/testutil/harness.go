// Package testutil provides shared helpers for tests that exercise the
// intrinsic library against a fresh registry.
package testutil

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/vk/vbaemu/internal/action"
	"github.com/vk/vbaemu/internal/ctxlog"
	"github.com/vk/vbaemu/internal/library"
	"github.com/vk/vbaemu/internal/registry"
	"github.com/vk/vbaemu/internal/value"
	"github.com/vk/vbaemu/internal/vbaconst"
)

// Harness bundles an isolated, fully bootstrapped emulator core.
type Harness struct {
	Ctx       context.Context
	Registry  *registry.Registry
	Constants *vbaconst.Table
	Actions   *action.Log
	Env       *registry.Env
	Logs      *SafeBuffer
}

// NewHarness builds a fresh registry, constant table and action log for one
// test. Debug logs are captured and dumped when VBAEMU_TEST_LOGS=true.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	logs := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h := &Harness{
		Ctx:       ctxlog.WithLogger(context.Background(), logger),
		Registry:  registry.New(),
		Constants: vbaconst.New(),
		Actions:   action.NewLog(),
		Logs:      logs,
	}
	h.Env = &registry.Env{Reporter: h.Actions, Environment: library.DefaultEnvironment()}
	library.Bootstrap(h.Registry, h.Constants)

	t.Cleanup(func() {
		if os.Getenv("VBAEMU_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return h
}

// Call resolves and evaluates a function the way the interpreter would.
func (h *Harness) Call(name string, args ...value.Value) (value.Value, error) {
	return library.Invoke(h.Ctx, h.Registry, h.Env, name, args)
}
