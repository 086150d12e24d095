package discover

import (
	"go/types"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcgen/internal/diagnostic"
	"rcgen/internal/schema"
)

func member(name string, t types.Type, exported bool, tag string) Member {
	return Member{
		Name:     name,
		Type:     t,
		Exported: exported,
		Tag:      reflect.StructTag(tag),
	}
}

func TestResolveAutoScan(t *testing.T) {
	members := []Member{
		member("WaitTime", types.Typ[types.Int32], true, ""),
		member("Volume", types.Typ[types.Float32], true, ""),
		member("hidden", types.Typ[types.Bool], false, ""),
		member("Slots", types.NewSlice(types.Typ[types.Int32]), true, ""),
	}

	fields, diags := Resolve("G", members)
	require.False(t, diags.HasErrors())

	// Every public member in, every private one out.
	require.Len(t, fields, 3)
	assert.Equal(t, "WaitTime", fields[0].Name)
	assert.Equal(t, schema.TypeInt32, fields[0].Type)
	assert.True(t, fields[0].Persist)
	assert.True(t, fields[0].Sync)
	assert.Equal(t, schema.TypeInt32Array, fields[2].Type)
}

func TestResolveAutoScanUnsupportedTypeFatal(t *testing.T) {
	members := []Member{
		member("WaitTime", types.Typ[types.Int32], true, ""),
		member("Bad", types.Typ[types.Float64], true, ""),
	}

	_, diags := Resolve("G", members)
	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeUnsupportedType, diags.Errors[0].Code)
	assert.Equal(t, "Bad", diags.Errors[0].Field)
}

func TestResolveManualMode(t *testing.T) {
	members := []Member{
		member("WaitTime", types.Typ[types.Int32], true, `rc:"waitTime"`),
		member("Volume", types.Typ[types.Float32], true, ""),
		member("Secret", types.Typ[types.String], true, `rc:",nopersist,nosync"`),
	}

	fields, diags := Resolve("G", members)
	require.False(t, diags.HasErrors())

	// One tag flips the whole group: untagged Volume is out.
	require.Len(t, fields, 2)
	assert.Equal(t, "WaitTime", fields[0].Name)
	assert.Equal(t, "waitTime", fields[0].RemoteKey)

	assert.Equal(t, "Secret", fields[1].Name)
	assert.Empty(t, fields[1].RemoteKey)
	assert.False(t, fields[1].Persist)
	assert.False(t, fields[1].Sync)

	// The silent exclusion is surfaced as a warning.
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUntaggedSibling, diags.Warnings[0].Code)
	assert.Equal(t, "Volume", diags.Warnings[0].Field)
}

func TestResolveManualSkipTag(t *testing.T) {
	members := []Member{
		member("WaitTime", types.Typ[types.Int32], true, `rc:""`),
		member("Ignored", types.Typ[types.Int32], true, `rc:"-"`),
	}

	fields, diags := Resolve("G", members)
	require.False(t, diags.HasErrors())
	require.Len(t, fields, 1)
	assert.Equal(t, "WaitTime", fields[0].Name)
}

func TestResolveManualUnexportedTagged(t *testing.T) {
	members := []Member{
		member("WaitTime", types.Typ[types.Int32], true, `rc:""`),
		member("secret", types.Typ[types.Int32], false, `rc:""`),
	}

	fields, diags := Resolve("G", members)
	require.False(t, diags.HasErrors())
	require.Len(t, fields, 1)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnexportedTagged, diags.Warnings[0].Code)
}

func TestResolveManualUnsupportedTaggedTypeFatal(t *testing.T) {
	members := []Member{
		member("Bad", types.NewMap(types.Typ[types.String], types.Typ[types.Int32]), true, `rc:""`),
	}

	_, diags := Resolve("G", members)
	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeUnsupportedType, diags.Errors[0].Code)
}
