// Package schema holds the in-memory representation of configuration
// groups: the pure data model the generator consumes, the YAML manifest
// that names groups and overrides field metadata, and structural
// validation.
package schema
