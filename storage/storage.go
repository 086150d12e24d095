// Package storage defines the persistence contract that generated
// configuration groups depend on but do not implement.
//
// A backend is any key-value store with typed get/set operations and a
// flush. Hosts bind one backend per group through the Binding lifecycle;
// an unbound binding is a reportable condition, never a crash.
package storage

import "errors"

// ErrUnbound is returned when a storage operation is attempted before a
// backend has been bound.
var ErrUnbound = errors.New("storage backend is not bound")

// Storage is the collaborator-implemented persistence backend.
//
// Getters take a default and return it (with the error) when the key is
// missing, the stored value has the wrong type, or the backend fails.
// Array-typed fields persist through the string operations.
type Storage interface {
	SetInt(key string, v int32) error
	GetInt(key string, def int32) (int32, error)

	SetLong(key string, v int64) error
	GetLong(key string, def int64) (int64, error)

	SetFloat(key string, v float32) error
	GetFloat(key string, def float32) (float32, error)

	SetString(key string, v string) error
	GetString(key string, def string) (string, error)

	SetBool(key string, v bool) error
	GetBool(key string, def bool) (bool, error)

	Flush() error
}

// Binding is the explicit mutable storage binding held by a generated
// group. The zero value is unbound.
type Binding struct {
	backend Storage
}

// Bind attaches a backend. Rebinding replaces the previous backend.
func (b *Binding) Bind(s Storage) {
	b.backend = s
}

// Reset detaches the current backend, returning the binding to its
// unbound state.
func (b *Binding) Reset() {
	b.backend = nil
}

// Bound reports whether a backend is attached.
func (b *Binding) Bound() bool {
	return b.backend != nil
}

// Backend returns the attached backend, or ErrUnbound.
func (b *Binding) Backend() (Storage, error) {
	if b.backend == nil {
		return nil, ErrUnbound
	}

	return b.backend, nil
}
