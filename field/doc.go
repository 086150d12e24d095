// Package field implements the runtime registration table behind generated
// configuration groups.
//
// rcgen emits one literal registration call per field; registration builds
// the three dispatch tables (remote key to raw setter, remote key to typed
// setter, field name to getter) once at process start. Tables are immutable
// after init and safe for concurrent reads. Field values follow a
// single-writer model: concurrent writers to the same field are a host
// responsibility.
//
// Runtime faults never unwind into the caller; they are reported through
// the group's Reporter and the operation completes.
package field
