// Command oberon is the CLI entry point for the Oberon-subset compiler
// and interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/oberon-go/oberonc/cmd/oberon/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cmd.ExitCode(err))
}
