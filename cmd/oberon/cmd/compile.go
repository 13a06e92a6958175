package cmd

import (
	"fmt"
	"os"

	cerrors "github.com/oberon-go/oberonc/internal/errors"
	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/lexer"
	"github.com/oberon-go/oberonc/internal/parser"
	"github.com/oberon-go/oberonc/internal/semantic"
)

// compileModule runs the lex/parse/analyze pipeline shared by run and
// emit-ir, printing any diagnostic with source context before returning
// a plain error for cobra to surface as a non-zero exit.
func compileModule(src, filename string) (*ast.Module, error) {
	l := lexer.New(src)
	p := parser.New(l)
	module := p.ParseModule()
	if lerrs := l.Errors(); len(lerrs) > 0 {
		for _, e := range lerrs {
			ce := cerrors.New(cerrors.StageLex, e.Pos, e.Message, src, filename)
			fmt.Fprintln(os.Stderr, ce.Format())
		}
		return nil, fmt.Errorf("lexing failed with %d error(s)", len(lerrs))
	}
	if perr := p.Err(); perr != nil {
		ce := cerrors.New(cerrors.StageParse, perr.Pos, perr.Message, src, filename)
		fmt.Fprintln(os.Stderr, ce.Format())
		return nil, fmt.Errorf("parsing failed")
	}

	analyzer := semantic.NewAnalyzer()
	if err := analyzer.Analyze(module); err != nil {
		for _, e := range analyzer.Errors() {
			ce := cerrors.New(cerrors.StageSemantic, e.Pos, e.Message, src, filename)
			fmt.Fprintln(os.Stderr, ce.Format())
		}
		return nil, fmt.Errorf("semantic analysis failed with %d error(s)", len(analyzer.Errors()))
	}

	return module, nil
}

func readInput(evalExpr string, args []string) (src, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
