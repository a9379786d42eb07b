package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "scopescript",
	Short: "scopescript evaluation core driver",
	Long: `scopescript runs a pre-built program AST through the evaluation core.

The core consumes a JSON-encoded forest of statement nodes and produces
an ordered sequence of output strings, terminating either with an "ok"
result or an "error" result whose output holds a single diagnostic
line.

This CLI is a host program: it never implements interpreter semantics
itself, only wiring - read bytes, decode the AST, call the driver,
print the result.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
