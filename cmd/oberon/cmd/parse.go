package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cerrors "github.com/oberon-go/oberonc/internal/errors"
	"github.com/oberon-go/oberonc/internal/lexer"
	"github.com/oberon-go/oberonc/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParseCmd(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	src := string(content)

	l := lexer.New(src)
	p := parser.New(l)
	module := p.ParseModule()
	if perr := p.Err(); perr != nil {
		ce := cerrors.New(cerrors.StageParse, perr.Pos, perr.Message, src, filename)
		fmt.Fprintln(os.Stderr, ce.Format())
		return fmt.Errorf("parsing failed")
	}

	fmt.Println(module.String())
	return nil
}
