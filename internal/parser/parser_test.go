package parser

import (
	"testing"

	"github.com/mathscript-lang/mathscript/internal/ast"
	"github.com/mathscript-lang/mathscript/internal/lexer"
)

func parse(t *testing.T, src string) ast.Node {
	t.Helper()
	tokens, err := lexer.Tokenize("<test>", src)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	node, err := Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return node
}

func singleStatement(t *testing.T, src string) ast.Node {
	t.Helper()
	list, ok := parse(t, src).(*ast.StatementList)
	if !ok {
		t.Fatalf("expected *ast.StatementList, got %T", parse(t, src))
	}
	if len(list.Statements) != 1 {
		t.Fatalf("expected exactly one statement, got %d", len(list.Statements))
	}
	return list.Statements[0]
}

func TestParseArithmeticPrecedence(t *testing.T) {
	// 1 + 2 * 3 should bind as 1 + (2 * 3), not (1 + 2) * 3.
	node := singleStatement(t, "1 + 2 * 3")
	bin, ok := node.(*ast.BinOp)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected top-level '+', got %#v", node)
	}
	right, ok := bin.Right.(*ast.BinOp)
	if !ok || right.Op != "*" {
		t.Fatalf("expected right operand to be a '*' BinOp, got %#v", bin.Right)
	}
}

func TestParsePowerIsRightAssociativeAboveUnary(t *testing.T) {
	node := singleStatement(t, "2 ^ 3 ^ 2")
	bin, ok := node.(*ast.BinOp)
	if !ok || bin.Op != "^" {
		t.Fatalf("expected '^' BinOp, got %#v", node)
	}
	if _, ok := bin.Right.(*ast.BinOp); !ok {
		t.Errorf("expected right-hand side to itself be a '^' BinOp, got %#v", bin.Right)
	}

	// -2 ^ 2 should bind as -(2 ^ 2): the unary minus wraps the power.
	neg := singleStatement(t, "-2 ^ 2")
	unary, ok := neg.(*ast.UnaryOp)
	if !ok || unary.Op != "-" {
		t.Fatalf("expected top-level unary '-', got %#v", neg)
	}
	if inner, ok := unary.Node.(*ast.BinOp); !ok || inner.Op != "^" {
		t.Errorf("expected the unary operand to be a '^' BinOp, got %#v", unary.Node)
	}
}

func TestParseVarAssign(t *testing.T) {
	node := singleStatement(t, "x = 5")
	assign, ok := node.(*ast.VarAssign)
	if !ok {
		t.Fatalf("expected *ast.VarAssign, got %#v", node)
	}
	if assign.Name != "x" {
		t.Errorf("got name %q, want x", assign.Name)
	}
}

func TestParseListLiteralVsParenGrouping(t *testing.T) {
	// A single parenthesized expression is grouping, not a one-element list.
	grouped := singleStatement(t, "(1 + 2)")
	if _, ok := grouped.(*ast.BinOp); !ok {
		t.Errorf("expected parenthesized single expr to stay a BinOp, got %#v", grouped)
	}

	list := singleStatement(t, "(1, 2, 3)")
	lit, ok := list.(*ast.ListLit)
	if !ok || len(lit.Elements) != 3 {
		t.Errorf("expected a 3-element ListLit, got %#v", list)
	}

	empty := singleStatement(t, "()")
	emptyLit, ok := empty.(*ast.ListLit)
	if !ok || len(emptyLit.Elements) != 0 {
		t.Errorf("expected an empty ListLit, got %#v", empty)
	}
}

func TestParseIfExpressionSingleLine(t *testing.T) {
	node := singleStatement(t, "if x > 0 then 1 else 2")
	ifNode, ok := node.(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %#v", node)
	}
	if len(ifNode.Cases) != 1 || ifNode.Cases[0].ShouldReturnNull {
		t.Errorf("expected one inline case, got %#v", ifNode.Cases)
	}
	if ifNode.ElseBody == nil || ifNode.ElseNull {
		t.Error("expected an inline else body")
	}
}

func TestParseIfBlockFormRequiresEnd(t *testing.T) {
	node := singleStatement(t, "if x > 0 then\nreturn 1\nend")
	ifNode, ok := node.(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %#v", node)
	}
	if !ifNode.Cases[0].ShouldReturnNull {
		t.Error("a block-bodied if case should collapse its value to null")
	}

	tokens, err := lexer.Tokenize("<test>", "if x > 0 then\nreturn 1")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if _, err := Parse(tokens); err == nil {
		t.Error("expected a parse error for a block-form if without 'end'")
	}
}

func TestParseForLoop(t *testing.T) {
	node := singleStatement(t, "for i = 1 to 10 step 2 then i")
	forNode, ok := node.(*ast.For)
	if !ok {
		t.Fatalf("expected *ast.For, got %#v", node)
	}
	if forNode.VarName != "i" {
		t.Errorf("got var name %q, want i", forNode.VarName)
	}
	if forNode.StepValue == nil {
		t.Error("expected an explicit step value")
	}
}

func TestParseWhileLoop(t *testing.T) {
	node := singleStatement(t, "while x < 10 then x = x + 1")
	whileNode, ok := node.(*ast.While)
	if !ok {
		t.Fatalf("expected *ast.While, got %#v", node)
	}
	if whileNode.Condition == nil || whileNode.Body == nil {
		t.Error("expected both condition and body to be populated")
	}
}

func TestParseFuncDefArrowAndBlockForms(t *testing.T) {
	arrow := singleStatement(t, "func square(x) => x * x")
	fn, ok := arrow.(*ast.FuncDef)
	if !ok || !fn.ShouldAutoReturn {
		t.Fatalf("expected an auto-return arrow FuncDef, got %#v", arrow)
	}
	if fn.Name != "square" || len(fn.ParamNames) != 1 {
		t.Errorf("unexpected signature: %#v", fn)
	}

	block := singleStatement(t, "func noop()\npass\nend")
	blockFn, ok := block.(*ast.FuncDef)
	if !ok || blockFn.ShouldAutoReturn {
		t.Fatalf("expected a block-bodied FuncDef, got %#v", block)
	}
}

func TestParseFuncDefOptionalParams(t *testing.T) {
	node := singleStatement(t, "func greet(name, greeting = \"hi\") => greeting")
	fn, ok := node.(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected *ast.FuncDef, got %#v", node)
	}
	if len(fn.ParamNames) != 1 || fn.ParamNames[0] != "name" {
		t.Errorf("unexpected required params: %#v", fn.ParamNames)
	}
	if len(fn.OptionalParams) != 1 || fn.OptionalParams[0].Name != "greeting" {
		t.Errorf("unexpected optional params: %#v", fn.OptionalParams)
	}
}

func TestParseCallWithKeywordArgument(t *testing.T) {
	node := singleStatement(t, `print("hi", sep = ",")`)
	call, ok := node.(*ast.Call)
	if !ok {
		t.Fatalf("expected *ast.Call, got %#v", node)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
	if _, ok := call.Args[1].(*ast.VarAssign); !ok {
		t.Errorf("keyword argument should parse as a VarAssign, got %#v", call.Args[1])
	}
}

func TestParseSubscriptChain(t *testing.T) {
	node := singleStatement(t, `"hello"_0`)
	bin, ok := node.(*ast.BinOp)
	if !ok || bin.Op != "_" {
		t.Fatalf("expected a '_' subscript BinOp, got %#v", node)
	}
}

func TestParseInvalidSyntaxReportsError(t *testing.T) {
	tokens, err := lexer.Tokenize("<test>", "1 +")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if _, err := Parse(tokens); err == nil {
		t.Error("expected a parse error for a dangling '+'")
	}
}
