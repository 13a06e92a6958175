package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oberon-go/oberonc/internal/ir"
)

var emitIROutput string

var emitIRCmd = &cobra.Command{
	Use:   "emit-ir [file]",
	Short: "Compile a program to textual LLVM IR",
	Long: `Emit-ir lexes, parses, and semantically analyzes a program, then
lowers it to textual LLVM IR (.ll) suitable for "lli" or "llc".

Examples:
  oberon emit-ir hello.mod
  oberon emit-ir -o hello.ll hello.mod`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEmitIR,
}

func init() {
	rootCmd.AddCommand(emitIRCmd)
	emitIRCmd.Flags().StringVarP(&emitIROutput, "output", "o", "", "write IR to this file instead of stdout")
}

func runEmitIR(_ *cobra.Command, args []string) error {
	src, filename, err := readInput(evalExpr, args)
	if err != nil {
		return err
	}

	module, err := compileModule(src, filename)
	if err != nil {
		return err
	}

	text, err := ir.New(module).Emit()
	if err != nil {
		return &InternalError{Err: err}
	}

	if emitIROutput == "" {
		fmt.Print(text)
		return nil
	}
	if err := writeFileAtomic(emitIROutput, []byte(text)); err != nil {
		return fmt.Errorf("failed to write %s: %w", emitIROutput, err)
	}
	return nil
}

// writeFileAtomic writes data to path by writing to a temp file in
// path's own directory (so the final rename is same-filesystem) and
// renaming it into place, so a failed write never leaves a partial
// .ll behind (spec.md §5).
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
