// Package gen emits the generated accessor file for each configuration
// group: a package-level Values struct, its Group registration table, and
// one literal, typed registration call per field. Output goes through
// text/template and go/format.
package gen
