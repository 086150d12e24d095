// Package main provides the CLI entrypoint for rcgen.
//
// rcgen is a codegen tool for remotely-synchronized configuration:
//   - Parses host Go packages (go/types) to resolve field declarations
//   - Applies the auto-scan/manual inclusion policy from rc struct tags
//   - Merges manifest overrides and validates the schema
//   - Generates the per-group registration file feeding the runtime
//     dispatch tables
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
