package callexpr

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/vbaemu/internal/library"
	"github.com/vk/vbaemu/internal/registry"
	"github.com/vk/vbaemu/internal/value"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// unitFunction adapts a registry.Unit to a cty function. All arguments are
// accepted as dynamically typed and nullable; kind checks belong to the unit.
func unitFunction(ctx context.Context, unit registry.Unit, env *registry.Env) function.Function {
	return function.New(&function.Spec{
		VarParam: &function.Parameter{
			Name:             "args",
			Type:             cty.DynamicPseudoType,
			AllowNull:        true,
			AllowDynamicType: true,
		},
		Type: function.StaticReturnType(cty.DynamicPseudoType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			vals := make([]value.Value, len(args))
			for i, arg := range args {
				v, err := value.FromCty(arg)
				if err != nil {
					return cty.NilVal, function.NewArgError(i, err)
				}
				vals[i] = v
			}
			result, err := library.Call(ctx, unit, env, vals)
			if err != nil {
				return cty.NilVal, err
			}
			return value.ToCty(result), nil
		},
	})
}

// CallFailure returns the function name and error behind the first failed
// call in diags, or a nil error when no call failed. Unit failures are
// *library.CallError values that render the call with its arguments.
func CallFailure(diags hcl.Diagnostics) (string, error) {
	for _, diag := range diags {
		if extra, ok := diag.Extra.(hclsyntax.FunctionCallDiagExtra); ok && extra.FunctionCallError() != nil {
			return extra.CalledFunctionName(), extra.FunctionCallError()
		}
	}
	return "", nil
}
