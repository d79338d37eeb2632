package builtins

import "github.com/mathscript-lang/mathscript/internal/value"

// OptionalArg is a built-in's optional argument: a name and the default
// value.Value used when a call doesn't supply it by keyword.
type OptionalArg struct {
	Name    string
	Default value.Value
}

// Spec declares one built-in function's calling convention and
// implementation, the Go analogue of an execute_* method plus its
// positional_arg_names/optional_arg_names attributes.
type Spec struct {
	Name           string
	PositionalArgs []string
	OptionalArgs   []OptionalArg
	Fn             func(ctx *Context, args map[string]value.Value) (value.Value, error)
}

var registry map[string]Spec

func register(s Spec) {
	if registry == nil {
		registry = make(map[string]Spec)
	}
	registry[s.Name] = s
}

// Lookup resolves a built-in by name.
func Lookup(name string) (Spec, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names lists every built-in function name, in the order the reference
// implementation's global_symbol_table binds them, for seeding the
// interpreter's global environment.
func Names() []string {
	return []string{"print", "input", "clear", "exit", "type", "sin", "cos", "exec", "length"}
}
