// Package typemap is the generation-time half of the type dispatch table:
// a closed mapping from semantic type to the Go type it is stored in and
// the registration call the emitter writes for it. The runtime half (parse
// and serialize policy) lives in the field package; both sides must agree,
// which the closed table here enforces by construction.
package typemap

import (
	"go/types"

	"rcgen/internal/schema"
)

// Strategy describes how one semantic type renders in generated code.
type Strategy struct {
	// GoType is the field's Go type literal.
	GoType string
	// Bind is the field.Group registration method the emitter calls.
	Bind string
	// ZeroLit is the zero-value literal, used for documentation output.
	ZeroLit string
}

// table is the single source of truth for codegen strategies.
var table = map[schema.SemanticType]Strategy{
	schema.TypeInt32:        {GoType: "int32", Bind: "Int32", ZeroLit: "0"},
	schema.TypeInt64:        {GoType: "int64", Bind: "Int64", ZeroLit: "0"},
	schema.TypeFloat32:      {GoType: "float32", Bind: "Float32", ZeroLit: "0"},
	schema.TypeString:       {GoType: "string", Bind: "String", ZeroLit: `""`},
	schema.TypeBool:         {GoType: "bool", Bind: "Bool", ZeroLit: "false"},
	schema.TypeInt32Array:   {GoType: "[]int32", Bind: "Int32Slice", ZeroLit: "nil"},
	schema.TypeFloat32Array: {GoType: "[]float32", Bind: "Float32Slice", ZeroLit: "nil"},
}

// Lookup returns the strategy for a semantic type.
func Lookup(t schema.SemanticType) (Strategy, bool) {
	s, ok := table[t]
	return s, ok
}

// FromGoType maps a host member's go/types.Type onto a semantic type.
// Named types resolve through their underlying type, so `type Volume
// float32` is a Float32 field. Anything outside the closed set returns
// false, which callers turn into a fatal generation diagnostic.
func FromGoType(t types.Type) (schema.SemanticType, bool) {
	switch tt := t.Underlying().(type) {
	case *types.Basic:
		return fromBasic(tt)

	case *types.Slice:
		elem, ok := tt.Elem().Underlying().(*types.Basic)
		if !ok {
			return schema.TypeInvalid, false
		}

		switch elem.Kind() {
		case types.Int32:
			return schema.TypeInt32Array, true
		case types.Float32:
			return schema.TypeFloat32Array, true
		default:
			return schema.TypeInvalid, false
		}

	default:
		return schema.TypeInvalid, false
	}
}

func fromBasic(b *types.Basic) (schema.SemanticType, bool) {
	switch b.Kind() {
	case types.Int32:
		return schema.TypeInt32, true
	case types.Int64:
		return schema.TypeInt64, true
	case types.Float32:
		return schema.TypeFloat32, true
	case types.String:
		return schema.TypeString, true
	case types.Bool:
		return schema.TypeBool, true
	default:
		return schema.TypeInvalid, false
	}
}
