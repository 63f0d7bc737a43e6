// This file contains the logic for converting an arbitrary cty.Value into its
// native Go representation (interface{}). Templates consume native values,
// while path expressions are evaluated in the cty value space.

package model

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// CtyToNative recursively converts a cty.Value to its most natural Go
// counterpart.
func CtyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		// Prefer an int when the number is integral; templates mostly
		// consume counts and indices.
		var i int64
		if err := gocty.FromCtyValue(v, &i); err == nil {
			return int(i), nil
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert cty.Number: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0)
		it := v.ElementIterator()
		for it.Next() {
			_, val := it.Element()
			nativeVal, err := CtyToNative(val)
			if err != nil {
				return nil, err
			}
			slice = append(slice, nativeVal)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		goMap := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, val := it.Element()
			keyStr := key.AsString()
			nativeVal, err := CtyToNative(val)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", keyStr, err)
			}
			goMap[keyStr] = nativeVal
		}
		return goMap, nil

	default:
		return nil, fmt.Errorf("unsupported cty type: %s", ty.FriendlyName())
	}
}

// NativeToCty converts a native Go value into its corresponding cty.Value.
func NativeToCty(v any) (cty.Value, error) {
	if v == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}

// NativeVars converts the model's vars to their native Go representation.
func (m *Model) NativeVars() (map[string]any, error) {
	out := make(map[string]any, len(m.Vars))
	for name, val := range m.Vars {
		nativeVal, err := CtyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("var '%s': %w", name, err)
		}
		out[name] = nativeVal
	}
	return out, nil
}
