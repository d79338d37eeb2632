package cmd

import (
	"fmt"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/mathscript-lang/mathscript/internal/lexer"
	"github.com/mathscript-lang/mathscript/internal/parser"
	"github.com/mathscript-lang/mathscript/pkg/mathscript"
)

// runFile reads filename and either dumps the requested pipeline stage(s) or
// runs the program to completion, mirroring the teacher's run command's
// read-lex-parse-execute shape.
func runFile(filename, debugMode string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	if debugMode == "" {
		debugMode = env.Str("MATHSCRIPT_DEBUG", "")
	}

	opts := optionsFromEnv()

	switch debugMode {
	case "":
		// fall through to normal execution below
	case "lexer":
		return dumpLexer(filename, source)
	case "parser":
		return dumpParser(filename, source)
	case "lexer-parser":
		if err := dumpLexer(filename, source); err != nil {
			return err
		}
		return dumpParser(filename, source)
	case "all":
		if err := dumpLexer(filename, source); err != nil {
			return err
		}
		if err := dumpParser(filename, source); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown --debug mode %q (want lexer, parser, lexer-parser or all)", debugMode)
	}

	if debugMode == "lexer" || debugMode == "parser" {
		return nil
	}

	_, err = mathscript.Run(filename, source, opts)
	return err
}

func dumpLexer(filename, source string) error {
	tokens, err := lexer.Tokenize(filename, source)
	if err != nil {
		return err
	}
	fmt.Println("Tokens:")
	for _, tok := range tokens {
		fmt.Printf("  %s\n", tok.String())
	}
	return nil
}

func dumpParser(filename, source string) error {
	tokens, err := lexer.Tokenize(filename, source)
	if err != nil {
		return err
	}
	node, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	fmt.Printf("AST:\n  %+v\n", node)
	return nil
}

// optionsFromEnv reads the MATHSCRIPT_DPS override into Options. The other
// two CLI overrides are read elsewhere in this package (MATHSCRIPT_DEBUG by
// runFile and the REPL, NO_COLOR by the REPL); the core packages never
// consult the environment themselves.
func optionsFromEnv() mathscript.Options {
	var opts mathscript.Options
	if digits := env.Int("MATHSCRIPT_DPS", 0); digits > 0 {
		opts.PrecisionDigits = digits
	}
	return opts
}
