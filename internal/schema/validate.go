package schema

import (
	"fmt"

	"rcgen/internal/diagnostic"
)

// ApplyOverrides merges manifest field definitions into a discovered
// group. Overrides naming a field that discovery did not include are
// errors: a stale manifest entry usually means the member was renamed or
// dropped the tag.
func ApplyOverrides(g *Group, defs []FieldDef) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, def := range defs {
		f := g.FieldByName(def.Name)
		if f == nil {
			diags.AddError(diagnostic.CodeUnknownOverride,
				fmt.Sprintf("manifest overrides field %q, which is not part of the group", def.Name),
				g.Name, def.Name)
			continue
		}

		if def.Key != "" {
			f.RemoteKey = def.Key
		}

		if def.Persist != nil {
			f.Persist = *def.Persist
		}

		if def.Sync != nil {
			f.Sync = *def.Sync
		}

		if def.Default != "" {
			f.Default = def.Default
		}
	}

	return diags
}

// Validate checks a group's structural invariants: at least one field,
// unique field names, unique remote keys among synced fields, and valid
// semantic types. All failures are fatal to generation.
func Validate(g *Group) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if len(g.Fields) == 0 {
		diags.AddError(diagnostic.CodeEmptyGroup,
			"group has no included fields", g.Name, "")
		return diags
	}

	names := make(map[string]bool, len(g.Fields))
	keys := make(map[string]string, len(g.Fields))

	for i := range g.Fields {
		f := &g.Fields[i]

		if f.Type == TypeInvalid {
			diags.AddError(diagnostic.CodeUnsupportedType,
				"field has no semantic type", g.Name, f.Name)
		}

		if names[f.Name] {
			diags.AddError(diagnostic.CodeDuplicateField,
				fmt.Sprintf("field %q declared more than once", f.Name), g.Name, f.Name)
		}
		names[f.Name] = true

		if !f.Sync {
			continue
		}

		if prev, dup := keys[f.Key()]; dup {
			diags.AddError(diagnostic.CodeDuplicateKey,
				fmt.Sprintf("remote key %q bound to both %q and %q", f.Key(), prev, f.Name),
				g.Name, f.Name)
		}
		keys[f.Key()] = f.Name
	}

	return diags
}
