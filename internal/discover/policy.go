package discover

import (
	"fmt"

	"rcgen/internal/diagnostic"
	"rcgen/internal/schema"
	"rcgen/internal/typemap"
)

// Resolve applies the inclusion policy to a resolved member list and
// returns the group's fields in declaration order.
//
// Zero tagged members: auto-scan mode, every exported member included
// with default metadata; an exported member with an unsupported type is a
// fatal, named type error. One or more tagged members: manual mode, only
// tagged members included, overrides applied; untagged exported siblings
// are skipped with a warning each.
func Resolve(groupName string, members []Member) ([]schema.Field, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	tagged := 0
	for i := range members {
		if _, ok := memberTag(&members[i]); ok {
			tagged++
		}
	}

	if tagged == 0 {
		return autoScan(groupName, members, &diags), diags
	}

	return manual(groupName, members, &diags), diags
}

func autoScan(groupName string, members []Member, diags *diagnostic.Diagnostics) []schema.Field {
	var fields []schema.Field

	for i := range members {
		m := &members[i]
		if !m.Exported {
			continue
		}

		sem, ok := typemap.FromGoType(m.Type)
		if !ok {
			diags.AddError(diagnostic.CodeUnsupportedType,
				fmt.Sprintf("member %q has unsupported type %s", m.Name, m.Type),
				groupName, m.Name)
			continue
		}

		fields = append(fields, schema.Field{
			Name:    m.Name,
			Type:    sem,
			Persist: true,
			Sync:    true,
		})
	}

	return fields
}

func manual(groupName string, members []Member, diags *diagnostic.Diagnostics) []schema.Field {
	var fields []schema.Field

	for i := range members {
		m := &members[i]

		info, ok := memberTag(m)
		if !ok {
			if m.Exported {
				diags.AddWarning(diagnostic.CodeUntaggedSibling,
					fmt.Sprintf("member %q is excluded: a tagged sibling switched the group to manual mode", m.Name),
					groupName, m.Name)
			}
			continue
		}

		if info.skip {
			continue
		}

		if !m.Exported {
			diags.AddWarning(diagnostic.CodeUnexportedTagged,
				fmt.Sprintf("member %q is tagged but unexported; ignored", m.Name),
				groupName, m.Name)
			continue
		}

		sem, ok := typemap.FromGoType(m.Type)
		if !ok {
			diags.AddError(diagnostic.CodeUnsupportedType,
				fmt.Sprintf("member %q has unsupported type %s", m.Name, m.Type),
				groupName, m.Name)
			continue
		}

		fields = append(fields, schema.Field{
			Name:      m.Name,
			Type:      sem,
			RemoteKey: info.key,
			Persist:   !info.nopersist,
			Sync:      !info.nosync,
		})
	}

	return fields
}
