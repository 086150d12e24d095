package field

import (
	"fmt"
	"sort"
	"strings"

	"rcgen/storage"
)

// DefaultPrefix is the storage key prefix used when GroupOpts leaves
// Prefix empty.
const DefaultPrefix = "rc_"

// truncateAt bounds the value column of DebugExport.
const truncateAt = 300

// truncateMark replaces the tail of over-long DebugExport values.
const truncateMark = " ...[truncated]"

// TypedValue is the provider-side projection contract: one remote value
// exposing textual, integer, floating and boolean views.
type TypedValue interface {
	Text() string
	Int() int64
	Float() float64
	Bool() bool
}

// Opts carries per-field registration overrides. The zero value gives the
// defaults: remote key equal to the field name, persisted, synced.
type Opts struct {
	// RemoteKey overrides the remote key, which defaults to the field name.
	RemoteKey string
	// NoPersist excludes the field from BulkSave and BulkLoad.
	NoPersist bool
	// NoSync excludes the field from the setter dispatch tables.
	NoSync bool
}

// entry is one registered field: metadata plus the typed closures built at
// registration. Immutable afterwards.
type entry struct {
	name      string
	remoteKey string
	persist   bool
	sync      bool

	setRaw   func(raw string)
	setTyped func(v TypedValue)
	get      func() any
	text     func() string
	save     func(s storage.Storage, key string) error
	load     func(s storage.Storage, key string) error
}

// GroupOpts configures a Group at construction.
type GroupOpts struct {
	// Prefix is the storage key prefix, fixed for the group's lifetime.
	// Empty means DefaultPrefix.
	Prefix string
	// Reporter receives runtime faults. Nil means a discarding default;
	// SetReporter can install one later.
	Reporter Reporter
}

// Group is the registration table and dispatch surface for one
// configuration group. Generated code constructs it at package init and
// registers every field with a literal typed call; after init the tables
// are read-only.
type Group struct {
	name    string
	prefix  string
	rep     Reporter
	binding storage.Binding

	entries []*entry          // registration order, for deterministic bulk ops
	setters map[string]*entry // remote key -> entry, sync fields only
	getters map[string]*entry // field name -> entry, all fields
}

// NewGroup creates an empty group.
func NewGroup(name string, opts GroupOpts) *Group {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	rep := opts.Reporter
	if rep == nil {
		rep = nopReporter
	}

	return &Group{
		name:    name,
		prefix:  prefix,
		rep:     rep,
		setters: make(map[string]*entry),
		getters: make(map[string]*entry),
	}
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// Prefix returns the storage key prefix.
func (g *Group) Prefix() string { return g.prefix }

// SetReporter installs the host's fault channel.
func (g *Group) SetReporter(r Reporter) {
	if r == nil {
		r = nopReporter
	}

	g.rep = r
}

// Bind attaches the storage backend. Save and load are no-ops (with one
// reported error) until a backend is bound.
func (g *Group) Bind(s storage.Storage) { g.binding.Bind(s) }

// ResetStorage detaches the storage backend.
func (g *Group) ResetStorage() { g.binding.Reset() }

// register adds a completed entry, wiring it into the dispatch tables.
// Duplicate field names, or duplicate remote keys among synced fields, are
// programmer errors caught before first use: registration panics. The
// generator rejects both at generation time, so generated code never
// trips this.
func (g *Group) register(e *entry) {
	if _, dup := g.getters[e.name]; dup {
		panic(fmt.Sprintf("field: group %s: duplicate field %q", g.name, e.name))
	}

	if e.sync {
		if prev, dup := g.setters[e.remoteKey]; dup {
			panic(fmt.Sprintf("field: group %s: remote key %q bound to both %q and %q",
				g.name, e.remoteKey, prev.name, e.name))
		}

		g.setters[e.remoteKey] = e
	}

	g.getters[e.name] = e
	g.entries = append(g.entries, e)
}

func newEntry(name string, o Opts) *entry {
	remoteKey := o.RemoteKey
	if remoteKey == "" {
		remoteKey = name
	}

	return &entry{
		name:      name,
		remoteKey: remoteKey,
		persist:   !o.NoPersist,
		sync:      !o.NoSync,
	}
}

// Int32 registers an int32 field backed by ptr.
func (g *Group) Int32(name string, ptr *int32, o Opts) {
	e := newEntry(name, o)
	e.setRaw = func(raw string) { *ptr = ParseInt32(raw, *ptr) }
	e.setTyped = func(v TypedValue) { *ptr = int32(v.Int()) }
	e.get = func() any { return *ptr }
	e.text = func() string { return FormatInt32(*ptr) }
	e.save = func(s storage.Storage, key string) error { return s.SetInt(key, *ptr) }
	e.load = func(s storage.Storage, key string) error {
		v, err := s.GetInt(key, *ptr)
		if err != nil {
			return err
		}
		*ptr = v
		return nil
	}
	g.register(e)
}

// Int64 registers an int64 field backed by ptr.
func (g *Group) Int64(name string, ptr *int64, o Opts) {
	e := newEntry(name, o)
	e.setRaw = func(raw string) { *ptr = ParseInt64(raw, *ptr) }
	e.setTyped = func(v TypedValue) { *ptr = v.Int() }
	e.get = func() any { return *ptr }
	e.text = func() string { return FormatInt64(*ptr) }
	e.save = func(s storage.Storage, key string) error { return s.SetLong(key, *ptr) }
	e.load = func(s storage.Storage, key string) error {
		v, err := s.GetLong(key, *ptr)
		if err != nil {
			return err
		}
		*ptr = v
		return nil
	}
	g.register(e)
}

// Float32 registers a float32 field backed by ptr.
func (g *Group) Float32(name string, ptr *float32, o Opts) {
	e := newEntry(name, o)
	e.setRaw = func(raw string) { *ptr = ParseFloat32(raw, *ptr) }
	e.setTyped = func(v TypedValue) { *ptr = float32(v.Float()) }
	e.get = func() any { return *ptr }
	e.text = func() string { return FormatFloat32(*ptr) }
	e.save = func(s storage.Storage, key string) error { return s.SetFloat(key, *ptr) }
	e.load = func(s storage.Storage, key string) error {
		v, err := s.GetFloat(key, *ptr)
		if err != nil {
			return err
		}
		*ptr = v
		return nil
	}
	g.register(e)
}

// String registers a string field backed by ptr.
func (g *Group) String(name string, ptr *string, o Opts) {
	e := newEntry(name, o)
	e.setRaw = func(raw string) { *ptr = raw }
	e.setTyped = func(v TypedValue) { *ptr = v.Text() }
	e.get = func() any { return *ptr }
	e.text = func() string { return *ptr }
	e.save = func(s storage.Storage, key string) error { return s.SetString(key, *ptr) }
	e.load = func(s storage.Storage, key string) error {
		v, err := s.GetString(key, *ptr)
		if err != nil {
			return err
		}
		*ptr = v
		return nil
	}
	g.register(e)
}

// Bool registers a bool field backed by ptr.
func (g *Group) Bool(name string, ptr *bool, o Opts) {
	e := newEntry(name, o)
	e.setRaw = func(raw string) { *ptr = ParseBool(raw) }
	e.setTyped = func(v TypedValue) { *ptr = v.Bool() }
	e.get = func() any { return *ptr }
	e.text = func() string { return FormatBool(*ptr) }
	e.save = func(s storage.Storage, key string) error { return s.SetBool(key, *ptr) }
	e.load = func(s storage.Storage, key string) error {
		v, err := s.GetBool(key, *ptr)
		if err != nil {
			return err
		}
		*ptr = v
		return nil
	}
	g.register(e)
}

// Int32Slice registers an []int32 field backed by ptr. The value persists
// as a comma-joined string.
func (g *Group) Int32Slice(name string, ptr *[]int32, o Opts) {
	e := newEntry(name, o)
	e.setRaw = func(raw string) { *ptr = ParseInt32Slice(raw) }
	e.setTyped = func(v TypedValue) { *ptr = ParseInt32Slice(v.Text()) }
	e.get = func() any { return *ptr }
	e.text = func() string { return FormatInt32Slice(*ptr) }
	e.save = func(s storage.Storage, key string) error {
		return s.SetString(key, FormatInt32Slice(*ptr))
	}
	e.load = func(s storage.Storage, key string) error {
		v, err := s.GetString(key, FormatInt32Slice(*ptr))
		if err != nil {
			return err
		}
		*ptr = ParseInt32Slice(v)
		return nil
	}
	g.register(e)
}

// Float32Slice registers a []float32 field backed by ptr. The value
// persists as a comma-joined string.
func (g *Group) Float32Slice(name string, ptr *[]float32, o Opts) {
	e := newEntry(name, o)
	e.setRaw = func(raw string) { *ptr = ParseFloat32Slice(raw) }
	e.setTyped = func(v TypedValue) { *ptr = ParseFloat32Slice(v.Text()) }
	e.get = func() any { return *ptr }
	e.text = func() string { return FormatFloat32Slice(*ptr) }
	e.save = func(s storage.Storage, key string) error {
		return s.SetString(key, FormatFloat32Slice(*ptr))
	}
	e.load = func(s storage.Storage, key string) error {
		v, err := s.GetString(key, FormatFloat32Slice(*ptr))
		if err != nil {
			return err
		}
		*ptr = ParseFloat32Slice(v)
		return nil
	}
	g.register(e)
}

// ApplyRaw dispatches a textual remote value to the field registered under
// remoteKey. It returns false when no handler exists, which is not an
// error: the caller decides whether a miss matters.
func (g *Group) ApplyRaw(remoteKey, raw string) bool {
	e, ok := g.setters[remoteKey]
	if !ok {
		return false
	}

	e.setRaw(raw)
	return true
}

// ApplyTyped dispatches a typed remote value to the field registered under
// remoteKey, using the typed projection instead of text parsing.
func (g *Group) ApplyTyped(remoteKey string, v TypedValue) bool {
	e, ok := g.setters[remoteKey]
	if !ok {
		return false
	}

	e.setTyped(v)
	return true
}

// SetField assigns a typed value to the field named name (not its remote
// key) and reports whether it was handled.
func (g *Group) SetField(name string, v TypedValue) bool {
	e, ok := g.getters[name]
	if !ok {
		return false
	}

	e.setTyped(v)
	return true
}

// GetField returns the current value of the field named name.
func (g *Group) GetField(name string) (any, bool) {
	e, ok := g.getters[name]
	if !ok {
		return nil, false
	}

	return e.get(), true
}

// Fields returns all registered field names in registration order.
func (g *Group) Fields() []string {
	names := make([]string, len(g.entries))
	for i, e := range g.entries {
		names[i] = e.name
	}

	return names
}

// BulkSave writes every persisted field under prefix+name and flushes.
// Unbound storage aborts with a single reported error and zero writes. A
// failure mid-sequence is reported once and aborts the remaining writes:
// a half-written, unflushed batch is meaningless, so save is
// all-or-nothing against its flush.
func (g *Group) BulkSave() {
	s, err := g.binding.Backend()
	if err != nil {
		g.rep.Report(fmt.Errorf("group %s: bulk save: %w", g.name, err))
		return
	}

	for _, e := range g.entries {
		if !e.persist {
			continue
		}

		if err := e.save(s, g.prefix+e.name); err != nil {
			g.rep.Report(fmt.Errorf("group %s: bulk save aborted at field %s: %w", g.name, e.name, err))
			return
		}
	}

	if err := s.Flush(); err != nil {
		g.rep.Report(fmt.Errorf("group %s: bulk save flush: %w", g.name, err))
	}
}

// BulkLoad reads every persisted field under prefix+name, using the
// current value as the fallback default. Unbound storage aborts with a
// single reported error. Unlike BulkSave, each field is independently
// fault-isolated: a failed read is reported, that field keeps its value,
// and loading continues — one corrupt entry must not block the rest.
func (g *Group) BulkLoad() {
	s, err := g.binding.Backend()
	if err != nil {
		g.rep.Report(fmt.Errorf("group %s: bulk load: %w", g.name, err))
		return
	}

	for _, e := range g.entries {
		if !e.persist {
			continue
		}

		if err := e.load(s, g.prefix+e.name); err != nil {
			g.rep.Report(fmt.Errorf("group %s: bulk load field %s: %w", g.name, e.name, err))
		}
	}
}

// DebugExport dumps all fields as "<name>: <value>" lines, sorted by
// field name. Values longer than 300 runes are truncated with a marker.
func (g *Group) DebugExport() string {
	names := g.Fields()
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		v := g.getters[name].text()
		if r := []rune(v); len(r) > truncateAt {
			v = string(r[:truncateAt]) + truncateMark
		}

		lines[i] = name + ": " + v
	}

	return strings.Join(lines, "\n")
}
