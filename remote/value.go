// Package remote consumes already-fetched remote configuration values and
// feeds them into a generated group's dispatch tables.
//
// The provider collaborator owns fetching, retry and activation; this
// package sees only a stream of (key, value) pairs. Values are dynamically
// typed (cty) and expose the textual/integer/floating/boolean projections
// the dispatch closures expect.
package remote

import (
	"fmt"
	"math"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Value is one typed remote configuration value.
type Value struct {
	v cty.Value
}

// Pair is one (key, value) entry from the provider.
type Pair struct {
	Key   string
	Value Value
}

// StringVal wraps a string.
func StringVal(s string) Value { return Value{cty.StringVal(s)} }

// IntVal wraps an integer.
func IntVal(i int64) Value { return Value{cty.NumberIntVal(i)} }

// FloatVal wraps a float.
func FloatVal(f float64) Value { return Value{cty.NumberFloatVal(f)} }

// BoolVal wraps a bool.
func BoolVal(b bool) Value { return Value{cty.BoolVal(b)} }

// FromGo converts an arbitrary Go value (scalars, slices, maps, structs)
// into a Value.
func FromGo(v any) (Value, error) {
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return Value{}, fmt.Errorf("implying type for %T: %w", v, err)
	}

	cv, err := gocty.ToCtyValue(v, ty)
	if err != nil {
		return Value{}, fmt.Errorf("converting %T: %w", v, err)
	}

	return Value{cv}, nil
}

// FromJSON decodes a JSON document into a Value, preserving its structure.
func FromJSON(raw []byte) (Value, error) {
	ty, err := ctyjson.ImpliedType(raw)
	if err != nil {
		return Value{}, fmt.Errorf("implying JSON type: %w", err)
	}

	cv, err := ctyjson.Unmarshal(raw, ty)
	if err != nil {
		return Value{}, fmt.Errorf("decoding JSON value: %w", err)
	}

	return Value{cv}, nil
}

// Text returns the canonical textual projection: strings verbatim, numbers
// in decimal, bools lowercase, structured values re-encoded as JSON.
func (v Value) Text() string {
	cv := v.v
	if cv == cty.NilVal || cv.IsNull() || !cv.IsKnown() {
		return ""
	}

	switch {
	case cv.Type() == cty.String:
		return cv.AsString()

	case cv.Type() == cty.Number:
		return cv.AsBigFloat().Text('f', -1)

	case cv.Type() == cty.Bool:
		if cv.True() {
			return "true"
		}
		return "false"

	default:
		raw, err := ctyjson.Marshal(cv, cv.Type())
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

// Int returns the integer projection, or zero when the value has no
// numeric interpretation.
func (v Value) Int() int64 {
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return int64(f)
}

// Float returns the floating projection, or zero when the value has no
// numeric interpretation.
func (v Value) Float() float64 {
	if v.v == cty.NilVal {
		return 0
	}

	n, err := convert.Convert(v.v, cty.Number)
	if err != nil || n.IsNull() || !n.IsKnown() {
		return 0
	}

	f, _ := n.AsBigFloat().Float64()
	return f
}

// Bool returns the boolean projection. When the value does not convert to
// a bool it falls back to string equality against the textual projection:
// "true" in any case, or "1".
func (v Value) Bool() bool {
	if v.v == cty.NilVal {
		return false
	}

	b, err := convert.Convert(v.v, cty.Bool)
	if err == nil && !b.IsNull() && b.IsKnown() {
		return b.True()
	}

	t := v.Text()
	return strings.EqualFold(t, "true") || t == "1"
}

// attrs decodes a structured value into its (subKey, subValue) record. It
// accepts object- and map-typed values directly, and strings holding a
// JSON object. Anything else fails.
func (v Value) attrs() (map[string]Value, error) {
	cv := v.v
	if cv == cty.NilVal || cv.IsNull() || !cv.IsKnown() {
		return nil, fmt.Errorf("value is not a structured record")
	}

	if cv.Type() == cty.String {
		nested, err := FromJSON([]byte(cv.AsString()))
		if err != nil {
			return nil, err
		}

		return nested.attrs()
	}

	if !cv.Type().IsObjectType() && !cv.Type().IsMapType() {
		return nil, fmt.Errorf("value of type %s is not a structured record", cv.Type().FriendlyName())
	}

	out := make(map[string]Value, cv.LengthInt())
	for k, sub := range cv.AsValueMap() {
		out[k] = Value{sub}
	}

	return out, nil
}
