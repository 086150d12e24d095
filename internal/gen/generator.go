package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"unicode"

	"rcgen/internal/schema"
	"rcgen/internal/typemap"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// RuntimePath is the import path of the field runtime package.
	RuntimePath string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RuntimePath: "rcgen/field",
	}
}

// Generator generates Go code from resolved configuration groups.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g. "ads_rc.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate emits one file per group. Groups are expected to be validated;
// a field without a codegen strategy here is a bug, not user error.
func (g *Generator) Generate(groups []*schema.Group) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, grp := range groups {
		file, err := g.generateGroup(grp)
		if err != nil {
			return nil, fmt.Errorf("generating group %s: %w", grp.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateGroup(grp *schema.Group) (*GeneratedFile, error) {
	data := &templateData{
		Package:     grp.Package,
		GroupName:   grp.Name,
		Prefix:      grp.Prefix(),
		RuntimePath: g.config.RuntimePath,
		SourceType:  grp.SourceType,
	}

	for i := range grp.Fields {
		f := &grp.Fields[i]

		strat, ok := typemap.Lookup(f.Type)
		if !ok {
			return nil, fmt.Errorf("field %s: no strategy for type %s", f.Name, f.Type)
		}

		if f.Default != "" {
			data.Defaults = append(data.Defaults, assignData{
				Field:   f.Name,
				Literal: f.Default,
			})
		}

		data.Binds = append(data.Binds, bindData{
			Method: strat.Bind,
			Name:   f.Name,
			Opts:   optsLiteral(f),
		})
	}

	var buf bytes.Buffer
	if err := groupTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	filename := snake(grp.Name) + "_rc.go"

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

// optsLiteral renders the field.Opts literal for one field, naming only
// the non-default members.
func optsLiteral(f *schema.Field) string {
	var parts []string

	if f.RemoteKey != "" && f.RemoteKey != f.Name {
		parts = append(parts, fmt.Sprintf("RemoteKey: %q", f.RemoteKey))
	}

	if !f.Persist {
		parts = append(parts, "NoPersist: true")
	}

	if !f.Sync {
		parts = append(parts, "NoSync: true")
	}

	if len(parts) == 0 {
		return "field.Opts{}"
	}

	return "field.Opts{" + strings.Join(parts, ", ") + "}"
}

// snake converts a CamelCase group name to snake_case for the filename.
func snake(name string) string {
	var b strings.Builder

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}
