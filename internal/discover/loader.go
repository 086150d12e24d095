package discover

import (
	"fmt"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Member is one resolved struct member: the pre-resolved
// {name, type, metadata} record the inclusion policy consumes.
type Member struct {
	// Name is the member name.
	Name string
	// Type is the resolved Go type.
	Type types.Type
	// Exported mirrors the member's accessibility.
	Exported bool
	// Tag is the raw struct tag.
	Tag reflect.StructTag
}

// Loader loads host packages and resolves struct member lists.
type Loader struct {
	// Dir is the working directory for package loading; empty means the
	// process working directory.
	Dir string
}

// LoadStruct loads the package matching pattern and returns the member
// list of the named struct type, including unexported members so the
// policy can apply the accessibility rule itself.
func (l *Loader) LoadStruct(pattern, typeName string) ([]Member, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  l.Dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", pattern, err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		obj := pkg.Types.Scope().Lookup(typeName)
		if obj == nil {
			continue
		}

		st, ok := obj.Type().Underlying().(*types.Struct)
		if !ok {
			return nil, fmt.Errorf("type %s.%s is not a struct", pkg.PkgPath, typeName)
		}

		return structMembers(st), nil
	}

	return nil, fmt.Errorf("type %s not found in %s", typeName, pattern)
}

func structMembers(st *types.Struct) []Member {
	members := make([]Member, 0, st.NumFields())

	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)

		members = append(members, Member{
			Name:     f.Name(),
			Type:     f.Type(),
			Exported: f.Exported(),
			Tag:      reflect.StructTag(st.Tag(i)),
		})
	}

	return members
}
