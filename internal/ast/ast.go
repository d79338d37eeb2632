// Package ast defines the syntax tree produced by internal/parser and walked
// by internal/interp. Every node carries its source.Span so runtime errors
// can point back at the exact construct that failed.
package ast

import "github.com/mathscript-lang/mathscript/internal/source"

// Node is satisfied by every syntax tree node.
type Node interface {
	Span() source.Span
}

type base struct{ span source.Span }

func (b base) Span() source.Span { return b.span }

// IntegerLit is an integer literal, carrying its decimal digit text so the
// interpreter can parse it at arbitrary precision via math/big.
type IntegerLit struct {
	base
	Text string
}

func NewIntegerLit(text string, span source.Span) *IntegerLit {
	return &IntegerLit{base: base{span}, Text: text}
}

// DecimalLit is a decimal literal, carrying its literal text.
type DecimalLit struct {
	base
	Text string
}

func NewDecimalLit(text string, span source.Span) *DecimalLit {
	return &DecimalLit{base: base{span}, Text: text}
}

// ComplexLit is a complex literal (e.g. "3i"), carrying the imaginary part's
// literal text; the real part is always zero at the literal level.
type ComplexLit struct {
	base
	ImagText string
}

func NewComplexLit(imagText string, span source.Span) *ComplexLit {
	return &ComplexLit{base: base{span}, ImagText: imagText}
}

// StringLit is a quoted string literal with escapes already resolved by the
// lexer, or a backtick raw string with escapes left untouched.
type StringLit struct {
	base
	Value string
	Raw   bool
}

func NewStringLit(value string, raw bool, span source.Span) *StringLit {
	return &StringLit{base: base{span}, Value: value, Raw: raw}
}

// ListLit is a bracketed, comma-separated list expression.
type ListLit struct {
	base
	Elements []Node
}

func NewListLit(elements []Node, span source.Span) *ListLit {
	return &ListLit{base: base{span}, Elements: elements}
}

// Pass is the no-op statement.
type Pass struct{ base }

func NewPass(span source.Span) *Pass { return &Pass{base{span}} }

// VarAccess reads a variable by name.
type VarAccess struct {
	base
	Name string
}

func NewVarAccess(name string, span source.Span) *VarAccess {
	return &VarAccess{base: base{span}, Name: name}
}

// VarAssign binds Name to the value of Value in the current scope.
type VarAssign struct {
	base
	Name  string
	Value Node
}

func NewVarAssign(name string, value Node, span source.Span) *VarAssign {
	return &VarAssign{base: base{span}, Name: name, Value: value}
}

// BinOp is a binary operator application; Op is the operator's token text
// (e.g. "+", "and", "==") so the interpreter can switch on it directly.
type BinOp struct {
	base
	Left  Node
	Op    string
	Right Node
}

func NewBinOp(left Node, op string, right Node, span source.Span) *BinOp {
	return &BinOp{base: base{span}, Left: left, Op: op, Right: right}
}

// UnaryOp is a prefix operator application ("-", "+", "not").
type UnaryOp struct {
	base
	Op   string
	Node Node
}

func NewUnaryOp(op string, node Node, span source.Span) *UnaryOp {
	return &UnaryOp{base: base{span}, Op: op, Node: node}
}

// IfCase is one "if"/"elif" condition-body pair. ShouldReturnNull marks a
// block-bodied case, whose value is discarded (null) unless it returns.
type IfCase struct {
	Condition        Node
	Body             Node
	ShouldReturnNull bool
}

// If is an if/elif/.../else expression.
type If struct {
	base
	Cases    []IfCase
	ElseBody Node // nil if there is no else clause
	ElseNull bool
}

func NewIf(cases []IfCase, elseBody Node, elseNull bool, span source.Span) *If {
	return &If{base: base{span}, Cases: cases, ElseBody: elseBody, ElseNull: elseNull}
}

// For is a counted loop: for <var> = <start> to <end> [step <step>] then <body>.
type For struct {
	base
	VarName          string
	StartValue       Node
	EndValue         Node
	StepValue        Node // nil if omitted, defaults to 1
	Body             Node
	ShouldReturnNull bool
}

func NewFor(varName string, start, end, step, body Node, shouldReturnNull bool, span source.Span) *For {
	return &For{
		base: base{span}, VarName: varName, StartValue: start, EndValue: end,
		StepValue: step, Body: body, ShouldReturnNull: shouldReturnNull,
	}
}

// While is a conditional loop: while <condition> then <body>.
type While struct {
	base
	Condition        Node
	Body             Node
	ShouldReturnNull bool
}

func NewWhile(condition, body Node, shouldReturnNull bool, span source.Span) *While {
	return &While{base: base{span}, Condition: condition, Body: body, ShouldReturnNull: shouldReturnNull}
}

// OptionalParam is a function parameter declared with a default value
// (e.g. "func f(x, y = 2)"), which callers may omit or supply by name.
type OptionalParam struct {
	Name    string
	Default Node
}

// FuncDef is a function definition: func [name](params) => expr, or
// func [name](params)\n ... end for a block body. Params may mix required
// positional names with trailing name=default optional parameters.
type FuncDef struct {
	base
	Name             string // "" for an anonymous function expression
	ParamNames       []string
	OptionalParams   []OptionalParam
	Body             Node
	ShouldAutoReturn bool // true when the body is a single arrow expression
}

func NewFuncDef(name string, params []string, optional []OptionalParam, body Node, shouldAutoReturn bool, span source.Span) *FuncDef {
	return &FuncDef{
		base: base{span}, Name: name, ParamNames: params, OptionalParams: optional,
		Body: body, ShouldAutoReturn: shouldAutoReturn,
	}
}

// Call invokes Callee with Args.
type Call struct {
	base
	Callee Node
	Args   []Node
}

func NewCall(callee Node, args []Node, span source.Span) *Call {
	return &Call{base: base{span}, Callee: callee, Args: args}
}

// Return is a return statement; Value is nil for a bare "return".
type Return struct {
	base
	Value Node
}

func NewReturn(value Node, span source.Span) *Return { return &Return{base: base{span}, Value: value} }

// Continue is a continue statement.
type Continue struct{ base }

func NewContinue(span source.Span) *Continue { return &Continue{base{span}} }

// Break is a break statement.
type Break struct{ base }

func NewBreak(span source.Span) *Break { return &Break{base{span}} }

// StatementList groups consecutive statements separated by newlines/semicolons.
type StatementList struct {
	base
	Statements []Node
}

func NewStatementList(statements []Node, span source.Span) *StatementList {
	return &StatementList{base: base{span}, Statements: statements}
}
