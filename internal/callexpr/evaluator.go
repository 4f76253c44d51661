package callexpr

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/vbaemu/internal/ctxlog"
	"github.com/vk/vbaemu/internal/registry"
	"github.com/vk/vbaemu/internal/value"
	"github.com/vk/vbaemu/internal/vbaconst"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// keywords are macro-language literals that HCL only knows in lower case.
var keywords = map[string]cty.Value{
	"null":  cty.NullVal(cty.DynamicPseudoType),
	"true":  cty.True,
	"false": cty.False,
}

// Evaluator binds call expressions to a registry and constant table.
type Evaluator struct {
	registry  *registry.Registry
	constants *vbaconst.Table
	env       *registry.Env
}

// NewEvaluator creates an Evaluator. env is handed to every unit invoked.
func NewEvaluator(reg *registry.Registry, consts *vbaconst.Table, env *registry.Env) *Evaluator {
	return &Evaluator{registry: reg, constants: consts, env: env}
}

// Parse parses a single call expression whose first character sits at the
// given line of filename.
func Parse(src, filename string, line int) (hcl.Expression, hcl.Diagnostics) {
	return hclsyntax.ParseExpression([]byte(src), filename, hcl.Pos{Line: line, Column: 1, Byte: 0})
}

// Eval evaluates expr. Names of functions and constants are matched
// case-insensitively; names that do not resolve are left unbound, so HCL
// reports them with their source range.
func (e *Evaluator) Eval(ctx context.Context, expr hcl.Expression) (value.Value, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	evalCtx := e.bind(ctx, expr)

	result, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		logger.Debug("Call expression failed.", "range", expr.Range().String(), "error", diags.Error())
		return value.Null, diags
	}

	v, err := value.FromCty(result)
	if err != nil {
		return value.Null, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported result value",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		})
	}
	return v, diags
}

// EvalString parses and evaluates src in one step.
func (e *Evaluator) EvalString(ctx context.Context, src, filename string, line int) (value.Value, hcl.Diagnostics) {
	expr, diags := Parse(src, filename, line)
	if diags.HasErrors() {
		return value.Null, diags
	}
	return e.Eval(ctx, expr)
}

// Unresolved returns the called functions in c that have no registered unit.
func (e *Evaluator) Unresolved(c *Container) []string {
	var missing []string
	for _, name := range c.CalledFunctions() {
		if _, ok := e.registry.Resolve(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func (e *Evaluator) bind(ctx context.Context, expr hcl.Expression) *hcl.EvalContext {
	logger := ctxlog.FromContext(ctx)
	roots, funcs := extractNames(expr)

	evalCtx := &hcl.EvalContext{
		Variables: make(map[string]cty.Value, len(roots)),
		Functions: make(map[string]function.Function, len(funcs)),
	}
	for _, name := range funcs {
		if unit, ok := e.registry.Resolve(name); ok {
			evalCtx.Functions[name] = unitFunction(ctx, unit, e.env)
		}
	}
	for _, name := range roots {
		if v, ok := e.constants.Lookup(name); ok {
			evalCtx.Variables[name] = value.ToCty(v)
		} else if kw, ok := keywords[strings.ToLower(name)]; ok {
			evalCtx.Variables[name] = kw
		}
	}
	logger.Debug("Call expression bound.", "functions", len(evalCtx.Functions), "names", len(evalCtx.Variables))
	return evalCtx
}
