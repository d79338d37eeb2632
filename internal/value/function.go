package value

// Function and Builtin are data-only value kinds: they carry everything the
// interpreter needs to invoke them, but calling is the interpreter's job
// (package value has no dependency on ast/interp, so it cannot define an
// Execute method itself — see internal/interp's Call dispatch).

// OptionalParam is a function parameter with a default value, computed once
// at the point the function is defined (matching the reference
// implementation's eager evaluation of default-argument expressions against
// the defining scope, not the call site).
type OptionalParam struct {
	Name    string
	Default Value
}

// Function is a user-defined function value: a name, its declared parameter
// names, the body to evaluate, whether the body's value is returned as the
// call's value (true for "=>" arrow bodies; block-bodied defs return null
// unless they `return`), and the lexical environment it closes over.
type Function struct {
	unsupported
	Name             string
	ParamNames       []string
	OptionalParams   []OptionalParam
	Body             any // ast.Node; kept untyped here to avoid an import cycle
	ShouldAutoReturn bool
	Closure          *Environment
}

// NewFunction builds a Function value. name may be "" for anonymous
// function expressions, displayed as "<anonymous>".
func NewFunction(name string, params []string, optional []OptionalParam, body any, shouldAutoReturn bool, closure *Environment) Function {
	return Function{
		unsupported:      unsupported{kind: "Function"},
		Name:             displayName(name),
		ParamNames:       params,
		OptionalParams:   optional,
		Body:             body,
		ShouldAutoReturn: shouldAutoReturn,
		Closure:          closure,
	}
}

func (f Function) Type() string   { return "Function" }
func (f Function) IsTrue() bool   { return true }
func (f Function) String() string { return "<function " + f.Name + ">" }

// Builtin is a native function value. Package builtins owns a registry
// mapping Builtin.Name to its Go implementation and argument arity/shape
// (positional names, optional names with defaults); Builtin itself only
// identifies which native function a call site refers to.
type Builtin struct {
	unsupported
	Name string
}

// NewBuiltin builds a Builtin value referring to a native function by name.
func NewBuiltin(name string) Builtin { return Builtin{unsupported: unsupported{kind: "Builtin"}, Name: name} }

func (b Builtin) Type() string   { return "Builtin" }
func (b Builtin) IsTrue() bool   { return true }
func (b Builtin) String() string { return "<built-in function " + b.Name + ">" }

func displayName(name string) string {
	if name == "" {
		return "<anonymous>"
	}
	return name
}
