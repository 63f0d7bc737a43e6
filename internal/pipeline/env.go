package pipeline

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/specialistvlad/codegengo/internal/model"
	"github.com/specialistvlad/codegengo/internal/options"
)

// helperFunctions is the fixed helper set available to every output-path
// expression.
var helperFunctions = map[string]function.Function{
	"upper":   stdlib.UpperFunc,
	"lower":   stdlib.LowerFunc,
	"replace": stdlib.ReplaceFunc,
	"substr":  stdlib.SubstrFunc,
	"format":  stdlib.FormatFunc,
	"join":    stdlib.JoinFunc,
	"split":   stdlib.SplitFunc,
	"trim":    stdlib.TrimSpaceFunc,
	"coalesce": function.New(&function.Spec{
		VarParam: &function.Parameter{Name: "vals", Type: cty.DynamicPseudoType, AllowNull: true},
		Type:     func(args []cty.Value) (cty.Type, error) { return cty.DynamicPseudoType, nil },
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			for _, arg := range args {
				if !arg.IsNull() {
					return arg, nil
				}
			}
			return cty.NullVal(cty.DynamicPseudoType), nil
		},
	}),
}

// buildEnv constructs the variable environment an output-path expression is
// evaluated against: the model's own named values, the model's identity
// (fqn, name, module, kind), and the global options. Fixed names win on
// collision with model vars.
func buildEnv(m *model.Model, opts options.Map) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(m.Vars)+5)
	for k, v := range m.Vars {
		vars[k] = v
	}
	vars["fqn"] = cty.StringVal(m.Fqn)
	vars["name"] = cty.StringVal(m.Name())
	vars["module"] = cty.StringVal(m.Module)
	vars["kind"] = cty.StringVal(m.Kind)
	vars["options"] = optionsValue(opts)

	return &hcl.EvalContext{
		Variables: vars,
		Functions: helperFunctions,
	}
}

// withGenerator returns a child environment carrying the per-generator
// naming variable.
func withGenerator(env *hcl.EvalContext, generatorName string) *hcl.EvalContext {
	child := env.NewChild()
	child.Variables = map[string]cty.Value{
		"generator": cty.StringVal(generatorName),
	}
	return child
}

// optionsValue converts the raw option map into a cty map value.
func optionsValue(opts options.Map) cty.Value {
	if len(opts) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	values := make(map[string]cty.Value, len(opts))
	for k, v := range opts {
		values[k] = cty.StringVal(v)
	}
	return cty.MapVal(values)
}

// evalPath evaluates a compiled output-path expression in the given
// environment. A null result, or an expression error, is distinguished from
// an empty path: null means the generator opts out for this model.
func evalPath(expr hcl.Expression, env *hcl.EvalContext) (string, bool, error) {
	val, diags := expr.Value(env)
	if diags.HasErrors() {
		return "", false, diags
	}
	if val.IsNull() {
		return "", false, nil
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", false, fmt.Errorf("output path expression must produce a string: %w", err)
	}
	path := val.AsString()
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}
