package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oberon-go/oberonc/internal/interp"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Interpret a program directly",
	Long: `Run lexes, parses, and semantically analyzes a program, then
interprets it directly without going through LLVM IR.

Examples:
  oberon run hello.mod
  oberon run -e 'MODULE M; BEGIN WriteLn("hi") END M.'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of reading from a file")
}

func runRun(_ *cobra.Command, args []string) error {
	src, filename, err := readInput(evalExpr, args)
	if err != nil {
		return err
	}

	module, err := compileModule(src, filename)
	if err != nil {
		return err
	}

	interpreter := interp.New(os.Stdout)
	if err := interpreter.Run(module); err != nil {
		fmt.Fprintf(os.Stderr, "runtime error: %v\n", err)
		return fmt.Errorf("execution failed")
	}
	return nil
}
