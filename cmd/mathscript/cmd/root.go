package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mathscript-lang/mathscript/pkg/mathscript"
)

var (
	debugMode   string
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "mathscript [file]",
	Short: "MathScript interpreter",
	Long: `mathscript is the reference interpreter for MathScript, a small
dynamically-typed language for mathematical expressions: integers,
arbitrary-precision decimals, complex numbers, booleans, strings, tuples,
first-class functions with default arguments, conditionals and loops, plus
a built-in library of high-precision transcendentals.

Run a file:

  mathscript script.mscr

Or start the REPL with no arguments.`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runRoot,
	DisableAutoGenTag: true,
}

func init() {
	rootCmd.Flags().StringVar(&debugMode, "debug", "", "dump a pipeline stage: lexer, parser, lexer-parser, all")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "print the version and exit")

	rootCmd.MarkFlagsMutuallyExclusive("debug", "version")
}

// Execute is the CLI's sole entry point, called from main.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(c *cobra.Command, args []string) error {
	if showVersion {
		if len(args) == 1 {
			return fmt.Errorf("--version cannot be combined with a file argument")
		}
		fmt.Printf("mathscript v%s\n", mathscript.Version)
		return nil
	}

	if len(args) == 1 {
		return runFile(args[0], debugMode)
	}

	if debugMode != "" {
		return fmt.Errorf("--debug requires a file argument")
	}

	return runREPL(runtime.GOOS)
}
