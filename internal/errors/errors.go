// Package errors renders a compiler diagnostic (from the lexer, parser,
// or semantic analyzer) with source context and a caret pointing at the
// offending column, colorizing the output with fatih/color when writing
// to a terminal.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/oberon-go/oberonc/internal/token"
)

// Stage identifies which pipeline phase raised a CompilerError, per
// spec.md §7's three-way taxonomy (lexical, syntax, semantic).
type Stage string

const (
	StageLex      Stage = "lexical error"
	StageParse    Stage = "syntax error"
	StageSemantic Stage = "semantic error"
)

// CompilerError is a single diagnostic with enough context to render a
// source-pointing message: file name, source text, and position.
type CompilerError struct {
	Stage   Stage
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New builds a CompilerError for the given stage.
func New(stage Stage, pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Stage: stage, Message: message, Source: source, File: file, Pos: pos}
}

func (e *CompilerError) Error() string { return e.Format() }

var (
	boldRed = color.New(color.Bold, color.FgRed)
	bold    = color.New(color.Bold)
)

// Format renders the error as a header line, the offending source line,
// a caret under the offending column, and the message. Colorization is
// controlled globally by color.NoColor (set by the CLI from -no-color or
// a non-terminal stdout), mirroring the teacher's Format(color bool) but
// delegated to fatih/color's own terminal detection instead of a
// hand-rolled bool.
func (e *CompilerError) Format() string {
	var sb strings.Builder

	header := fmt.Sprintf("%s: %s:%d:%d", e.Stage, e.displayFile(), e.Pos.Line, e.Pos.Column)
	sb.WriteString(boldRed.Sprint(header))
	sb.WriteString("\n")

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		sb.WriteString(boldRed.Sprint("^"))
		sb.WriteString("\n")
	}

	sb.WriteString(bold.Sprint(e.Message))
	return sb.String()
}

func (e *CompilerError) displayFile() string {
	if e.File == "" {
		return "<stdin>"
	}
	return e.File
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
