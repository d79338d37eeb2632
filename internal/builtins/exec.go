package builtins

import (
	"errors"
	"fmt"
	"os"

	"github.com/mathscript-lang/mathscript/internal/value"
)

func init() {
	register(Spec{Name: "exec", PositionalArgs: []string{"code_or_filename"}, Fn: execExecProgram})
	register(Spec{Name: "length", PositionalArgs: []string{"iterable"}, Fn: execLength})
}

// execExecProgram runs code_or_filename as a nested MathScript program. A
// string that names an existing, readable file on disk is treated as a
// filename and its contents are loaded; otherwise the string itself is
// run as inline source, matching the reference implementation's
// is_filename/'<code>' split (decided here with a plain file-existence
// check rather than porting its path-shaped regular expression).
func execExecProgram(ctx *Context, args map[string]value.Value) (value.Value, error) {
	s, ok := args["code_or_filename"].(value.String)
	if !ok {
		return nil, errors.New("Argument code_or_filename must be a String.")
	}

	filename := "<code>"
	code := s.V

	if info, err := os.Stat(s.V); err == nil && !info.IsDir() {
		contents, readErr := os.ReadFile(s.V)
		if readErr != nil {
			return nil, fmt.Errorf("Failed to open file %q because of the following exception:\n%s", s.V, readErr)
		}
		filename = s.V
		code = string(contents)
	}

	if ctx.RunFile == nil {
		return nil, errors.New("exec is not available in this context")
	}

	_, err := ctx.RunFile(filename, code)
	if err != nil {
		return nil, fmt.Errorf("Failed to run %q because of the following exception:\n%s", filename, err)
	}

	return value.NewNull(), nil
}

func execLength(ctx *Context, args map[string]value.Value) (value.Value, error) {
	switch v := args["iterable"].(type) {
	case value.List:
		return value.NewIntegerInt64(int64(len(v.Elements))), nil
	case value.String:
		return value.NewIntegerInt64(int64(len([]rune(v.V)))), nil
	default:
		return nil, errors.New("Argument iterable must be a List or a String.")
	}
}
