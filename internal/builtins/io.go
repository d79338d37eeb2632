package builtins

import (
	"fmt"
	"strings"

	"github.com/mathscript-lang/mathscript/internal/value"
)

func init() {
	register(Spec{
		Name:           "print",
		PositionalArgs: []string{"value"},
		OptionalArgs: []OptionalArg{
			{Name: "sep", Default: value.NewNull()},
			{Name: "end_char", Default: value.NewNull()},
		},
		Fn: execPrint,
	})
	register(Spec{
		Name:           "input",
		PositionalArgs: nil,
		OptionalArgs:   []OptionalArg{{Name: "placeholder", Default: value.NewNull()}},
		Fn:             execInput,
	})
	register(Spec{
		Name:           "clear",
		PositionalArgs: nil,
		OptionalArgs:   nil,
		Fn:             execClear,
	})
	register(Spec{
		Name:           "exit",
		PositionalArgs: nil,
		OptionalArgs:   []OptionalArg{{Name: "code", Default: value.NewNull()}},
		Fn:             execExit,
	})
	register(Spec{
		Name:           "type",
		PositionalArgs: []string{"obj"},
		OptionalArgs:   nil,
		Fn:             execType,
	})
}

func execPrint(ctx *Context, args map[string]value.Value) (value.Value, error) {
	v := args["value"]
	sep := args["sep"]
	endChar := args["end_char"]

	end := "\n"
	if _, isNull := endChar.(value.Null); !isNull {
		end = endChar.String()
	}

	if list, isList := v.(value.List); isList {
		if _, sepIsNull := sep.(value.Null); !sepIsNull {
			parts := make([]string, len(list.Elements))
			for i, e := range list.Elements {
				parts[i] = e.String()
			}
			fmt.Fprint(ctx.Stdout, strings.Join(parts, sep.String()), end)
			return value.NewNull(), nil
		}
	}

	fmt.Fprint(ctx.Stdout, v.String(), end)
	return value.NewNull(), nil
}

func execInput(ctx *Context, args map[string]value.Value) (value.Value, error) {
	if _, isNull := args["placeholder"].(value.Null); !isNull {
		fmt.Fprint(ctx.Stdout, args["placeholder"].String())
	}

	line, err := ctx.Stdin.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return value.NewString(""), nil
	}
	return value.NewString(line), nil
}

func execClear(ctx *Context, args map[string]value.Value) (value.Value, error) {
	fmt.Fprint(ctx.Stdout, "\033c")
	return value.NewNull(), nil
}

func execExit(ctx *Context, args map[string]value.Value) (value.Value, error) {
	code := args["code"]
	if _, isNull := code.(value.Null); !isNull {
		fmt.Fprintln(ctx.Stdout, "Exited:", code.String())
		ctx.Exit(codeToInt(code))
		return value.NewNull(), nil
	}
	ctx.Exit(0)
	return value.NewNull(), nil
}

func codeToInt(v value.Value) int {
	if i, ok := v.(value.Integer); ok && i.V.IsInt64() {
		return int(i.V.Int64())
	}
	return 1
}

func execType(ctx *Context, args map[string]value.Value) (value.Value, error) {
	return value.NewString(args["obj"].Type()), nil
}
