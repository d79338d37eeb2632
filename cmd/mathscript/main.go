// Command mathscript is the MathScript interpreter's command line front
// end: run a file or drop into a REPL.
package main

import (
	"fmt"
	"os"

	"github.com/mathscript-lang/mathscript/cmd/mathscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
