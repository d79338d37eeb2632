package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/xyproto/env/v2"

	"github.com/mathscript-lang/mathscript/pkg/mathscript"
)

const ansiClear = "\033[0m"
const ansiPrompt = "\033[1;36m"
const ansiError = "\033[31m"

// runREPL implements the bare interactive loop: read a line, run it as a
// whole program, print its result, repeat. Every line is its own Run call
// (the language has no persistent top-level environment across lines, the
// same way exec spins up a fresh interpreter per invocation), which keeps
// the REPL's semantics identical to running a one-line file.
func runREPL(goos string) error {
	if err := enableVirtualTerminal(); err != nil {
		// Not fatal: fall back to plain output rather than failing the REPL.
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	color := isatty.IsTerminal(os.Stdout.Fd()) && !env.Bool("NO_COLOR")
	debugTag := ""
	if mode := env.Str("MATHSCRIPT_DEBUG", ""); mode != "" {
		debugTag = fmt.Sprintf("[DEBUG:%s]", strings.ToUpper(mode))
	}

	fmt.Printf("mathscript v%s%s on %s\n", mathscript.Version, debugTag, goos)

	opts := optionsFromEnv()
	reader := bufio.NewReader(os.Stdin)

	for {
		if color {
			fmt.Print(ansiPrompt + "mathscript> " + ansiClear)
		} else {
			fmt.Print("mathscript> ")
		}

		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" && err != nil {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		result, runErr := mathscript.Run("<stdin>", line, opts)
		if runErr != nil {
			if color {
				fmt.Println(ansiError + runErr.Error() + ansiClear)
			} else {
				fmt.Println(runErr.Error())
			}
			continue
		}
		if result != nil {
			fmt.Println(result.String())
		}
	}
}
