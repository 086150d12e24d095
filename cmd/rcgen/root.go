package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rcgen/internal/diagnostic"
	"rcgen/internal/discover"
	"rcgen/internal/gen"
	"rcgen/internal/schema"
)

type options struct {
	manifest string
	outDir   string
	verbose  bool
	dump     bool
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "rcgen",
		Short:         "Generate remote-config accessor code from a schema manifest",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.manifest, "manifest", "m", "rcgen.yaml", "path to the schema manifest")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenerateCmd(opts), newCheckCmd(opts))

	return root
}

func newGenerateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Resolve the manifest and write generated group files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "output directory for generated files")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "dump the resolved schema before generating")

	return cmd
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve and validate the manifest without writing files",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(opts.verbose)

			_, err := resolveManifest(opts.manifest, log)
			if err != nil {
				return err
			}

			log.Info().Msg("schema is valid")
			return nil
		},
	}
}

func runGenerate(opts *options) error {
	log := newLogger(opts.verbose)

	groups, err := resolveManifest(opts.manifest, log)
	if err != nil {
		return err
	}

	if opts.dump {
		spew.Fdump(os.Stderr, groups)
	}

	files, err := gen.NewGenerator(gen.DefaultGeneratorConfig()).Generate(groups)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if err := gen.WriteFiles(files, opts.outDir); err != nil {
		return err
	}

	for _, f := range files {
		log.Info().Str("file", f.Filename).Msg("generated")
	}

	return nil
}

// resolveManifest runs the full analysis pipeline: manifest, member
// discovery, inclusion policy, overrides, validation. Warnings are logged;
// any error diagnostic aborts.
func resolveManifest(path string, log zerolog.Logger) ([]*schema.Group, error) {
	manifest, err := schema.LoadManifest(path)
	if err != nil {
		return nil, err
	}

	loader := &discover.Loader{}

	var (
		groups []*schema.Group
		diags  diagnostic.Diagnostics
	)

	for _, def := range manifest.Groups {
		log.Debug().Str("group", def.Name).Str("source", def.Source).Msg("resolving group")

		members, err := loader.LoadStruct(def.Source, def.Type)
		if err != nil {
			diags.AddError(diagnostic.CodeMissingType, err.Error(), def.Name, "")
			continue
		}

		fields, d := discover.Resolve(def.Name, members)
		diags.Merge(d)

		group := &schema.Group{
			Name:          def.Name,
			Package:       def.Package,
			SourcePackage: def.Source,
			SourceType:    def.Type,
			KeyPrefix:     def.Prefix,
			Fields:        fields,
		}

		diags.Merge(schema.ApplyOverrides(group, def.Fields))
		diags.Merge(schema.Validate(group))

		groups = append(groups, group)
	}

	for _, w := range diags.Warnings {
		log.Warn().Msg(w.String())
	}

	if diags.HasErrors() {
		for _, e := range diags.Errors {
			log.Error().Msg(e.String())
		}

		return nil, errors.New("schema resolution failed")
	}

	return groups, nil
}
