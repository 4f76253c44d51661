package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/vbaemu/internal/ctxlog"
	"github.com/vk/vbaemu/internal/library"
	"github.com/vk/vbaemu/internal/registry"
	"github.com/vk/vbaemu/internal/vbaconst"
)

// Apply writes the profile's constants into consts, its environment
// variables into env and registers every alias in reg. Aliases must name a
// function that is already registered.
func (p *Profile) Apply(ctx context.Context, reg *registry.Registry, consts *vbaconst.Table, env *registry.Env) error {
	logger := ctxlog.FromContext(ctx)

	for _, c := range p.Constants {
		consts.Set(c.Name, c.Value)
	}
	if len(p.Environment) > 0 && env.Environment == nil {
		env.Environment = make(map[string]string, len(p.Environment))
	}
	for _, v := range p.Environment {
		env.Environment[strings.ToUpper(v.Name)] = v.Value
	}
	for _, a := range p.Aliases {
		unit, ok := reg.Resolve(a.Function)
		if !ok {
			return fmt.Errorf("alias %q at %s targets %q: %w", a.Name, a.DeclRange, a.Function, library.ErrUnknownFunction)
		}
		reg.Register(a.Name, unit)
	}

	logger.Info("Profile applied.", "constants", len(p.Constants), "aliases", len(p.Aliases), "environment", len(p.Environment))
	return nil
}
