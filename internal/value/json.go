package value

import (
	"encoding/json"
	"math"
	"strconv"
)

// MarshalJSON encodes v as the closest JSON value; Null becomes null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInteger:
		return json.Marshal(v.i)
	case KindFloat:
		// JSON has no Inf or NaN; those are written as text.
		if math.IsInf(v.f, 0) || math.IsNaN(v.f) {
			return json.Marshal(strconv.FormatFloat(v.f, 'g', -1, 64))
		}
		return json.Marshal(v.f)
	case KindBool:
		return json.Marshal(v.b)
	case KindText:
		return json.Marshal(v.s)
	case KindArray:
		if v.elems == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.elems)
	}
	return []byte("null"), nil
}
