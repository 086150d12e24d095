package schema

// DefaultPrefix is the storage key prefix applied when a group does not
// override it.
const DefaultPrefix = "rc_"

// SemanticType identifies how a field's values parse, serialize, persist
// and project. The set is closed: any other host type fails generation.
type SemanticType int

const (
	TypeInvalid SemanticType = iota
	TypeInt32
	TypeInt64
	TypeFloat32
	TypeString
	TypeBool
	TypeInt32Array
	TypeFloat32Array
)

// String returns the manifest spelling of the type.
func (t SemanticType) String() string {
	switch t {
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeFloat32:
		return "float32"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeInt32Array:
		return "int32[]"
	case TypeFloat32Array:
		return "float32[]"
	default:
		return "invalid"
	}
}

// IsArray reports whether the type is array-shaped.
func (t SemanticType) IsArray() bool {
	return t == TypeInt32Array || t == TypeFloat32Array
}

// ParseSemanticType parses the manifest spelling of a semantic type.
func ParseSemanticType(s string) (SemanticType, bool) {
	for t := TypeInt32; t <= TypeFloat32Array; t++ {
		if t.String() == s {
			return t, true
		}
	}

	return TypeInvalid, false
}

// Field is one configuration value: a name unique within its group, a
// semantic type, and sync/persist flags. The field set is fixed at
// generation time; only values are mutable at runtime.
type Field struct {
	// Name is the struct member name, unique within the group.
	Name string
	// Type is the semantic type driving the dispatch table entry.
	Type SemanticType
	// RemoteKey is the provider-side key; defaults to Name. Must be unique
	// among fields with Sync set.
	RemoteKey string
	// Persist includes the field in bulk save/load.
	Persist bool
	// Sync includes the field in the setter dispatch tables.
	Sync bool
	// Default is an optional Go literal assigned before registration.
	Default string
}

// Key returns the effective remote key.
func (f *Field) Key() string {
	if f.RemoteKey != "" {
		return f.RemoteKey
	}

	return f.Name
}

// Group is a named namespace of fields sharing one storage key prefix.
type Group struct {
	// Name is the unique group identifier.
	Name string
	// Package is the Go package the generated file belongs to.
	Package string
	// SourcePackage is the package pattern holding the backing struct.
	SourcePackage string
	// SourceType is the backing struct type name.
	SourceType string
	// KeyPrefix is fixed for the group's lifetime; generated code closes
	// over it. Empty means DefaultPrefix.
	KeyPrefix string
	// Fields in declaration order. Order only affects deterministic
	// output, never dispatch semantics.
	Fields []Field
}

// Prefix returns the effective storage key prefix.
func (g *Group) Prefix() string {
	if g.KeyPrefix != "" {
		return g.KeyPrefix
	}

	return DefaultPrefix
}

// FieldByName returns the field with the given name, or nil.
func (g *Group) FieldByName(name string) *Field {
	for i := range g.Fields {
		if g.Fields[i].Name == name {
			return &g.Fields[i]
		}
	}

	return nil
}
