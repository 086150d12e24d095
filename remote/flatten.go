package remote

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"rcgen/field"
)

// DefaultMarker is the suffix naming convention that marks a remote key as
// a nested group: "AdSettings" carries a record whose sub-keys flatten to
// "Ad"-prefixed field keys.
const DefaultMarker = "Settings"

// Flattener reconciles a hierarchical remote namespace with a group's flat
// field key space.
type Flattener struct {
	// Group receives the flattened dispatches.
	Group *field.Group
	// Marker overrides DefaultMarker when non-empty.
	Marker string
	// Reporter receives schema-drift warnings and decode faults. Nil
	// discards them.
	Reporter field.Reporter
}

func (f *Flattener) marker() string {
	if f.Marker != "" {
		return f.Marker
	}

	return DefaultMarker
}

func (f *Flattener) report(err error) {
	if f.Reporter != nil {
		f.Reporter.Report(err)
	}
}

// Apply dispatches every provider pair into the group.
//
// A key carrying the group marker suffix is decoded as a structured record
// and each sub-entry dispatched under stripMarker(key)+SubKey with its
// canonical textual form. Any other key dispatches directly: the raw
// setter table first, then the typed table when the raw lookup misses.
// Keys matching neither path are reported as unrecognized — schema drift,
// not an error.
func (f *Flattener) Apply(pairs []Pair) {
	for _, p := range pairs {
		f.apply(p)
	}
}

func (f *Flattener) apply(p Pair) {
	marker := f.marker()

	if strings.HasSuffix(p.Key, marker) && len(p.Key) > len(marker) {
		f.applyGroup(p, strings.TrimSuffix(p.Key, marker))
		return
	}

	if f.Group.ApplyRaw(p.Key, p.Value.Text()) {
		return
	}

	if f.Group.ApplyTyped(p.Key, p.Value) {
		return
	}

	f.report(fmt.Errorf("unrecognized remote key %q", p.Key))
}

// applyGroup flattens one structured record. An undecodable value is
// reported once and the whole group skipped; an unmapped sub-key is
// reported per sub-key without stopping the rest.
func (f *Flattener) applyGroup(p Pair, prefix string) {
	record, err := p.Value.attrs()
	if err != nil {
		f.report(fmt.Errorf("remote group %q: %w", p.Key, err))
		return
	}

	subKeys := make([]string, 0, len(record))
	for k := range record {
		subKeys = append(subKeys, k)
	}
	sort.Strings(subKeys)

	for _, sub := range subKeys {
		flatKey := prefix + upperFirst(sub)
		if !f.Group.ApplyRaw(flatKey, record[sub].Text()) {
			f.report(fmt.Errorf("remote group %q: sub-key %q has no field mapping (flat key %q)", p.Key, sub, flatKey))
		}
	}
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
