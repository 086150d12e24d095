package gen

import "text/template"

// groupTemplate renders one generated group file. Registration order
// follows schema field order, so output is deterministic for a given
// schema.
var groupTemplate = template.Must(template.New("group").Parse(`// Code generated by rcgen. DO NOT EDIT.

package {{.Package}}

import (
	"{{.RuntimePath}}"
)

// Values holds the live {{printf "%q" .GroupName}} configuration. Hosts read
// fields directly; remote sync and persistence go through Group.
var Values {{.SourceType}}

// Group is the dispatch and persistence surface for Values.
var Group = field.NewGroup({{printf "%q" .GroupName}}, field.GroupOpts{Prefix: {{printf "%q" .Prefix}}})

func init() {
{{- range .Defaults}}
	Values.{{.Field}} = {{.Literal}}
{{- end}}
{{- range .Binds}}
	Group.{{.Method}}({{printf "%q" .Name}}, &Values.{{.Name}}, {{.Opts}})
{{- end}}
}
`))

// templateData holds all data needed for the group template.
type templateData struct {
	Package     string
	GroupName   string
	Prefix      string
	RuntimePath string
	SourceType  string
	Defaults    []assignData
	Binds       []bindData
}

// assignData is one default-value assignment.
type assignData struct {
	Field   string
	Literal string
}

// bindData is one field registration call.
type bindData struct {
	Method string
	Name   string
	Opts   string
}
