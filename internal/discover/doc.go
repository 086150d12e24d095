// Package discover resolves a host struct type into the member list the
// inclusion policy runs over.
//
// Symbol resolution is delegated entirely to go/packages; this package
// never re-implements it. The policy is per group and all-or-nothing:
// zero rc-tagged members puts the group in auto-scan mode (every exported
// member with a supported type is included with defaults), while a single
// tag switches the whole group to manual mode, silently excluding every
// untagged sibling. Manual mode emits a warning per excluded sibling so
// the switch is at least visible at generation time.
package discover
