package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/scopescript-go/scopescript/internal/ast"
	"github.com/scopescript-go/scopescript/internal/config"
	"github.com/scopescript-go/scopescript/internal/interp"
	"github.com/scopescript-go/scopescript/pkg/result"
	"github.com/spf13/cobra"
)

var (
	configPath string
	asJSON     bool
)

var runCmd = &cobra.Command{
	Use:   "run [program.ssjson]",
	Short: "Run a program AST through the evaluation core",
	Long: `Execute a scopescript program from a JSON AST document or stdin.

Examples:
  # Run a program AST from a file
  scopescript run program.ssjson

  # Read the program AST from stdin
  cat program.ssjson | scopescript run

  # Print the {"kind", "output"} result record as JSON
  scopescript run --json program.ssjson`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (maxCallDepth, ...)")
	runCmd.Flags().BoolVar(&asJSON, "json", false, "print the result record as JSON instead of plain output lines")
}

func runProgram(_ *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("failed to read program: %w", err)
	}

	program, err := ast.DecodeProgram(data)
	if err != nil {
		return fmt.Errorf("failed to decode program AST: %w", err)
	}

	maxDepth := interp.DefaultMaxCallDepth
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
		if cfg.MaxCallDepth > 0 {
			maxDepth = cfg.MaxCallDepth
		}
	}

	res := interp.NewWithMaxCallDepth(maxDepth).Run(program)

	if asJSON {
		doc, err := result.FromInterp(res).MarshalSSJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(doc))
		return nil
	}

	for _, line := range res.Output {
		fmt.Print(line)
	}
	if res.Kind == interp.ResultError {
		return fmt.Errorf("execution failed")
	}
	return nil
}
