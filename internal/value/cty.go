package value

import (
	"errors"
	"fmt"
	"math"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ErrOverflow is returned by FromCty for numbers outside the Double range.
var ErrOverflow = errors.New("overflow")

// FromCty converts a cty value produced by the expression frontend into a
// Value. Whole numbers that fit in an int64 become Integer values; every
// other number becomes a Double.
func FromCty(v cty.Value) (Value, error) {
	if !v.IsKnown() {
		return Null, fmt.Errorf("cannot convert unknown value of type %s", v.Type().FriendlyName())
	}
	if v.IsNull() {
		return Null, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return Text(v.AsString()), nil
	case ty == cty.Number:
		if v.AsBigFloat().IsInt() {
			var i int64
			if err := gocty.FromCtyValue(v, &i); err == nil {
				return Int(i), nil
			}
		}
		f, _ := v.AsBigFloat().Float64()
		if math.IsInf(f, 0) {
			return Null, fmt.Errorf("%w: %s does not fit in a Double (runtime error 6)", ErrOverflow, v.AsBigFloat().Text('g', 10))
		}
		return Float(f), nil
	case ty == cty.Bool:
		return Bool(v.True()), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		elems := make([]Value, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, ev := it.Element()
			e, err := FromCty(ev)
			if err != nil {
				return Null, fmt.Errorf("in element %d: %w", len(elems), err)
			}
			elems = append(elems, e)
		}
		return Array(elems...), nil
	}
	return Null, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}

// ToCty converts v into its cty equivalent. Null maps to a dynamically typed
// null so it can flow through any function parameter that allows nulls.
func ToCty(v Value) cty.Value {
	switch v.kind {
	case KindInteger:
		return cty.NumberIntVal(v.i)
	case KindFloat:
		return cty.NumberFloatVal(v.f)
	case KindBool:
		return cty.BoolVal(v.b)
	case KindText:
		return cty.StringVal(v.s)
	case KindArray:
		if len(v.elems) == 0 {
			return cty.EmptyTupleVal
		}
		elems := make([]cty.Value, len(v.elems))
		for i, e := range v.elems {
			elems[i] = ToCty(e)
		}
		return cty.TupleVal(elems)
	}
	return cty.NullVal(cty.DynamicPseudoType)
}
