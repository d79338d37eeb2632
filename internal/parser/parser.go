// Package parser builds an internal/ast tree from an internal/lexer token
// stream via recursive descent, one production method per grammar rule, the
// same shape as the teacher's hand-written Parser.
package parser

import (
	"github.com/mathscript-lang/mathscript/internal/ast"
	"github.com/mathscript-lang/mathscript/internal/lexer"
	"github.com/mathscript-lang/mathscript/internal/mserrors"
	"github.com/mathscript-lang/mathscript/internal/source"
)

// Parser consumes a fixed token slice and builds an ast.Node tree.
type Parser struct {
	tokens []lexer.Token
	idx    int
}

// New builds a Parser over an already-scanned token stream.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a full program: a statement list followed by EOF.
func Parse(tokens []lexer.Token) (ast.Node, error) {
	return New(tokens).Parse()
}

// Parse parses a full program: a statement list followed by EOF.
func (p *Parser) Parse() (ast.Node, error) {
	node, err := p.statements()
	if err != nil {
		return nil, err
	}
	if p.cur().Type != lexer.EOF {
		return nil, p.errorHere("Expected '+', '-', '*', '/', '^', '==', '!=', '<', '>', '<=', '>=', 'and' or 'or'")
	}
	return node, nil
}

func (p *Parser) cur() lexer.Token {
	if p.idx < len(p.tokens) {
		return p.tokens[p.idx]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() lexer.Token {
	if p.idx < len(p.tokens)-1 {
		p.idx++
	}
	return p.cur()
}

func (p *Parser) errorHere(msg string) error {
	s := p.cur().Span
	return mserrors.New(mserrors.InvalidSyntax, s.Start, s.End, msg)
}

func sp(start, end source.Position) source.Span { return source.Span{Start: start, End: end} }

// --- statements -------------------------------------------------------

func (p *Parser) statements() (ast.Node, error) {
	start := p.cur().Span.Start
	var stmts []ast.Node

	for p.cur().Type == lexer.NEWLINE {
		p.advance()
	}

	first, err := p.statement()
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, first)

	for {
		newlineCount := 0
		for p.cur().Type == lexer.NEWLINE {
			p.advance()
			newlineCount++
		}
		if newlineCount == 0 {
			break
		}

		save := p.idx
		stmt, err := p.statement()
		if err != nil {
			p.idx = save
			break
		}
		stmts = append(stmts, stmt)
	}

	return ast.NewStatementList(stmts, sp(start, p.cur().Span.Start)), nil
}

func (p *Parser) statement() (ast.Node, error) {
	start := p.cur().Span

	if p.cur().Matches(lexer.KEYWORD, "return") {
		p.advance()
		save := p.idx
		value, err := p.expr()
		if err != nil {
			p.idx = save
			value = nil
		}
		return ast.NewReturn(value, sp(start.Start, p.cur().Span.Start)), nil
	}

	if p.cur().Matches(lexer.KEYWORD, "continue") {
		p.advance()
		return ast.NewContinue(sp(start.Start, p.cur().Span.Start)), nil
	}

	if p.cur().Matches(lexer.KEYWORD, "break") {
		p.advance()
		return ast.NewBreak(sp(start.Start, p.cur().Span.Start)), nil
	}

	return p.expr()
}

// --- if / for / while ---------------------------------------------------

func (p *Parser) ifExpr() (ast.Node, error) {
	start := p.cur().Span.Start
	cases, elseBody, elseNull, err := p.ifExprCases("if")
	if err != nil {
		return nil, err
	}
	return ast.NewIf(cases, elseBody, elseNull, sp(start, p.cur().Span.Start)), nil
}

func (p *Parser) ifExprCases(keyword string) ([]ast.IfCase, ast.Node, bool, error) {
	if !p.cur().Matches(lexer.KEYWORD, keyword) {
		return nil, nil, false, p.errorHere("Expected '" + keyword + "'")
	}
	p.advance()

	condition, err := p.expr()
	if err != nil {
		return nil, nil, false, err
	}

	if !p.cur().Matches(lexer.KEYWORD, "then") {
		return nil, nil, false, p.errorHere("Expected 'then'")
	}
	p.advance()

	var cases []ast.IfCase

	if p.cur().Type == lexer.NEWLINE {
		p.advance()
		body, err := p.statements()
		if err != nil {
			return nil, nil, false, err
		}
		cases = append(cases, ast.IfCase{Condition: condition, Body: body, ShouldReturnNull: true})

		if p.cur().Matches(lexer.KEYWORD, "end") {
			p.advance()
			return cases, nil, false, nil
		}
		if !p.cur().Matches(lexer.KEYWORD, "elif") && !p.cur().Matches(lexer.KEYWORD, "else") {
			return nil, nil, false, p.errorHere("Expected 'end', 'elif' or 'else'")
		}
		moreCases, elseBody, elseNull, err := p.elifOrElseExpr()
		if err != nil {
			return nil, nil, false, err
		}
		cases = append(cases, moreCases...)
		return cases, elseBody, elseNull, nil
	}

	body, err := p.statement()
	if err != nil {
		return nil, nil, false, err
	}
	cases = append(cases, ast.IfCase{Condition: condition, Body: body, ShouldReturnNull: false})

	moreCases, elseBody, elseNull, err := p.elifOrElseExpr()
	if err != nil {
		return nil, nil, false, err
	}
	cases = append(cases, moreCases...)
	return cases, elseBody, elseNull, nil
}

func (p *Parser) elifOrElseExpr() ([]ast.IfCase, ast.Node, bool, error) {
	if p.cur().Matches(lexer.KEYWORD, "elif") {
		return p.ifExprCases("elif")
	}
	elseBody, elseNull, err := p.elseExpr()
	return nil, elseBody, elseNull, err
}

func (p *Parser) elseExpr() (ast.Node, bool, error) {
	if !p.cur().Matches(lexer.KEYWORD, "else") {
		return nil, false, nil
	}
	p.advance()

	if p.cur().Type == lexer.NEWLINE {
		p.advance()
		body, err := p.statements()
		if err != nil {
			return nil, false, err
		}
		if !p.cur().Matches(lexer.KEYWORD, "end") {
			return nil, false, p.errorHere("Expected 'end'")
		}
		p.advance()
		return body, true, nil
	}

	stmt, err := p.statement()
	if err != nil {
		return nil, false, err
	}
	return stmt, false, nil
}

func (p *Parser) forExpr() (ast.Node, error) {
	start := p.cur().Span.Start
	if !p.cur().Matches(lexer.KEYWORD, "for") {
		return nil, p.errorHere("Expected 'for'")
	}
	p.advance()

	if p.cur().Type != lexer.IDENTIFIER {
		return nil, p.errorHere("Expected identifier")
	}
	varName := p.cur().Value.(string)
	p.advance()

	if p.cur().Type != lexer.EQ {
		return nil, p.errorHere("Expected '='")
	}
	p.advance()

	startValue, err := p.expr()
	if err != nil {
		return nil, err
	}

	if !p.cur().Matches(lexer.KEYWORD, "to") {
		return nil, p.errorHere("Expected 'to'")
	}
	p.advance()

	endValue, err := p.expr()
	if err != nil {
		return nil, err
	}

	var stepValue ast.Node
	if p.cur().Matches(lexer.KEYWORD, "step") {
		p.advance()
		stepValue, err = p.expr()
		if err != nil {
			return nil, err
		}
	}

	if !p.cur().Matches(lexer.KEYWORD, "then") {
		return nil, p.errorHere("Expected 'then'")
	}
	p.advance()

	if p.cur().Type == lexer.NEWLINE {
		p.advance()
		body, err := p.statements()
		if err != nil {
			return nil, err
		}
		if !p.cur().Matches(lexer.KEYWORD, "end") {
			return nil, p.errorHere("Expected 'end'")
		}
		p.advance()
		return ast.NewFor(varName, startValue, endValue, stepValue, body, true, sp(start, p.cur().Span.Start)), nil
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return ast.NewFor(varName, startValue, endValue, stepValue, body, false, sp(start, p.cur().Span.Start)), nil
}

func (p *Parser) whileExpr() (ast.Node, error) {
	start := p.cur().Span.Start
	if !p.cur().Matches(lexer.KEYWORD, "while") {
		return nil, p.errorHere("Expected 'while'")
	}
	p.advance()

	condition, err := p.expr()
	if err != nil {
		return nil, err
	}

	if !p.cur().Matches(lexer.KEYWORD, "then") {
		return nil, p.errorHere("Expected 'then'")
	}
	p.advance()

	if p.cur().Type == lexer.NEWLINE {
		p.advance()
		body, err := p.statements()
		if err != nil {
			return nil, err
		}
		if !p.cur().Matches(lexer.KEYWORD, "end") {
			return nil, p.errorHere("Expected 'end'")
		}
		p.advance()
		return ast.NewWhile(condition, body, true, sp(start, p.cur().Span.Start)), nil
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(condition, body, false, sp(start, p.cur().Span.Start)), nil
}

// --- func def ------------------------------------------------------------

func (p *Parser) funcDef() (ast.Node, error) {
	start := p.cur().Span.Start
	if !p.cur().Matches(lexer.KEYWORD, "func") {
		return nil, p.errorHere("Expected 'func'")
	}
	p.advance()

	name := ""
	if p.cur().Type == lexer.IDENTIFIER {
		name = p.cur().Value.(string)
		p.advance()
	}

	if p.cur().Type != lexer.LPAREN {
		if name == "" {
			return nil, p.errorHere("Expected identifier or '('")
		}
		return nil, p.errorHere("Expected '('")
	}
	p.advance()

	var params []string
	var optional []ast.OptionalParam

	if p.cur().Type == lexer.IDENTIFIER {
		pname, def, err := p.paramDecl()
		if err != nil {
			return nil, err
		}
		if def == nil {
			params = append(params, pname)
		} else {
			optional = append(optional, ast.OptionalParam{Name: pname, Default: def})
		}

		for p.cur().Type == lexer.COMMA {
			p.advance()
			if p.cur().Type != lexer.IDENTIFIER {
				return nil, p.errorHere("Expected identifier")
			}
			pname, def, err := p.paramDecl()
			if err != nil {
				return nil, err
			}
			if def == nil {
				params = append(params, pname)
			} else {
				optional = append(optional, ast.OptionalParam{Name: pname, Default: def})
			}
		}

		if p.cur().Type != lexer.RPAREN && p.cur().Type != lexer.EQ {
			return nil, p.errorHere("Expected ',' or ')'")
		}
	} else if p.cur().Type != lexer.RPAREN {
		return nil, p.errorHere("Expected identifier or ')'")
	}

	p.advance() // consume ')'

	if p.cur().Type == lexer.ARROW {
		p.advance()
		body, err := p.expr()
		if err != nil {
			return nil, err
		}
		return ast.NewFuncDef(name, params, optional, body, true, sp(start, body.Span().End)), nil
	}

	if p.cur().Type != lexer.NEWLINE {
		return nil, p.errorHere("Expected '=>', ';' or new line")
	}
	p.advance()

	body, err := p.statements()
	if err != nil {
		return nil, err
	}
	if !p.cur().Matches(lexer.KEYWORD, "end") {
		return nil, p.errorHere("Expected 'end'")
	}
	p.advance()

	return ast.NewFuncDef(name, params, optional, body, false, sp(start, p.cur().Span.Start)), nil
}

func (p *Parser) paramDecl() (string, ast.Node, error) {
	name := p.cur().Value.(string)
	p.advance()
	if p.cur().Type != lexer.EQ {
		return name, nil, nil
	}
	p.advance()
	def, err := p.expr()
	if err != nil {
		return "", nil, err
	}
	return name, def, nil
}

// --- expressions -----------------------------------------------------------

func (p *Parser) atom() (ast.Node, error) {
	tok := p.cur()

	switch tok.Type {
	case lexer.INTEGER:
		p.advance()
		return ast.NewIntegerLit(tok.Value.(string), tok.Span), nil
	case lexer.DECIMAL:
		p.advance()
		return ast.NewDecimalLit(tok.Value.(string), tok.Span), nil
	case lexer.COMPLEX:
		p.advance()
		return ast.NewComplexLit(tok.Value.(string), tok.Span), nil
	case lexer.STRING, lexer.RAWSTRING:
		p.advance()
		node := ast.Node(ast.NewStringLit(tok.Value.(string), tok.Type == lexer.RAWSTRING, tok.Span))
		return p.subscriptChain(node)
	case lexer.IDENTIFIER:
		p.advance()
		return ast.NewVarAccess(tok.Value.(string), tok.Span), nil
	case lexer.LPAREN:
		node, err := p.listExpr()
		if err != nil {
			return nil, err
		}
		return p.subscriptChain(node)
	case lexer.KEYWORD:
		switch tok.Value.(string) {
		case "if":
			return p.ifExpr()
		case "for":
			return p.forExpr()
		case "while":
			return p.whileExpr()
		case "func":
			return p.funcDef()
		}
	}

	return nil, p.errorHere("Expected integer, decimal, identifier, '+', '-', '(', '()', 'if', 'for', 'while' or 'func'")
}

// subscriptChain builds left-associative "_" subscript BinOps directly
// after a string or list atom, matching the grammar's special-cased
// bin_op(self.atom, (TT_SUBSCRIPT,), self.expr, left_value=...).
func (p *Parser) subscriptChain(left ast.Node) (ast.Node, error) {
	for p.cur().Type == lexer.SUBSCRIPT {
		p.advance()
		right, err := p.expr()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinOp(left, "_", right, sp(left.Span().Start, right.Span().End))
	}
	return left, nil
}

func (p *Parser) listExpr() (ast.Node, error) {
	start := p.cur().Span.Start
	if p.cur().Type != lexer.LPAREN {
		return nil, p.errorHere("Expected '('")
	}
	p.advance()

	if p.cur().Type == lexer.RPAREN {
		p.advance()
		return ast.NewListLit(nil, sp(start, p.cur().Span.Start)), nil
	}

	first, err := p.expr()
	if err != nil {
		return nil, err
	}

	if p.cur().Type != lexer.COMMA {
		if p.cur().Type == lexer.RPAREN {
			p.advance()
			return first, nil
		}
		return nil, p.errorHere("Expected ')' or ','")
	}

	elements := []ast.Node{first}
	for p.cur().Type == lexer.COMMA {
		p.advance()
		if p.cur().Type == lexer.RPAREN {
			break
		}
		el, err := p.expr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}

	if p.cur().Type != lexer.RPAREN {
		return nil, p.errorHere("Expected ',' or ')'")
	}
	p.advance()

	return ast.NewListLit(elements, sp(start, p.cur().Span.Start)), nil
}

func (p *Parser) call() (ast.Node, error) {
	callee, err := p.atom()
	if err != nil {
		return nil, err
	}

	if p.cur().Type != lexer.LPAREN {
		return callee, nil
	}
	p.advance()

	var args []ast.Node
	if p.cur().Type == lexer.RPAREN {
		p.advance()
		return ast.NewCall(callee, args, sp(callee.Span().Start, p.cur().Span.Start)), nil
	}

	arg, err := p.expr()
	if err != nil {
		return nil, err
	}
	args = append(args, arg)

	for p.cur().Type == lexer.COMMA {
		p.advance()
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	if p.cur().Type != lexer.RPAREN {
		return nil, p.errorHere("Expected ',' or ')'")
	}
	p.advance()

	return ast.NewCall(callee, args, sp(callee.Span().Start, p.cur().Span.Start)), nil
}

func (p *Parser) power() (ast.Node, error) {
	return p.binOp(p.call, []opMatch{tt(lexer.POW)}, p.factor)
}

func (p *Parser) factor() (ast.Node, error) {
	tok := p.cur()
	if tok.Type == lexer.PLUS || tok.Type == lexer.MINUS {
		p.advance()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		op := "+"
		if tok.Type == lexer.MINUS {
			op = "-"
		}
		return ast.NewUnaryOp(op, operand, sp(tok.Span.Start, operand.Span().End)), nil
	}
	return p.power()
}

func (p *Parser) term() (ast.Node, error) {
	return p.binOp(p.factor, []opMatch{tt(lexer.MUL), tt(lexer.DIV)}, p.factor)
}

func (p *Parser) arithExpr() (ast.Node, error) {
	return p.binOp(p.term, []opMatch{tt(lexer.PLUS), tt(lexer.MINUS)}, p.term)
}

func (p *Parser) compExpr() (ast.Node, error) {
	if p.cur().Matches(lexer.KEYWORD, "not") {
		tok := p.cur()
		p.advance()
		operand, err := p.compExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOp("not", operand, sp(tok.Span.Start, operand.Span().End)), nil
	}

	node, err := p.binOp(p.arithExpr, []opMatch{
		tt(lexer.EE), tt(lexer.NE), tt(lexer.LT), tt(lexer.GT), tt(lexer.LTE), tt(lexer.GTE),
	}, p.arithExpr)
	if err != nil {
		return nil, p.errorHere("Expected integer, decimal, identifier, '+', '-', '(' or 'not'")
	}
	return node, nil
}

func (p *Parser) expr() (ast.Node, error) {
	if p.cur().Type == lexer.IDENTIFIER {
		save := p.idx
		varTok := p.cur()
		p.advance()

		if p.cur().Type == lexer.EQ {
			p.advance()
			value, err := p.expr()
			if err != nil {
				return nil, err
			}
			return ast.NewVarAssign(varTok.Value.(string), value, sp(varTok.Span.Start, value.Span().End)), nil
		}

		p.idx = save
	} else if p.cur().Matches(lexer.KEYWORD, "pass") || (p.cur().Type == lexer.EOF && len(p.tokens) == 1) {
		tok := p.cur()
		p.advance()
		return ast.NewPass(tok.Span), nil
	}

	node, err := p.binOp(p.compExpr, []opMatch{kw("and"), kw("or")}, p.compExpr)
	if err != nil {
		return nil, p.errorHere("Expected 'if', 'for', 'while', 'func', integer, decimal, identifier, '+', '-', '(' or 'not'")
	}
	return node, nil
}

// --- generic binary-operator chain -----------------------------------------

type opMatch struct {
	typ lexer.TokenType
	kw  string
}

func tt(t lexer.TokenType) opMatch { return opMatch{typ: t} }
func kw(v string) opMatch          { return opMatch{typ: lexer.KEYWORD, kw: v} }

func (p *Parser) matchesAny(ops []opMatch) bool {
	for _, o := range ops {
		if o.kw != "" {
			if p.cur().Matches(lexer.KEYWORD, o.kw) {
				return true
			}
		} else if p.cur().Type == o.typ {
			return true
		}
	}
	return false
}

var symbolText = map[lexer.TokenType]string{
	lexer.PLUS: "+", lexer.MINUS: "-", lexer.MUL: "*", lexer.DIV: "/", lexer.POW: "^",
	lexer.EE: "==", lexer.NE: "!=", lexer.LT: "<", lexer.GT: ">", lexer.LTE: "<=", lexer.GTE: ">=",
}

func (p *Parser) opText(tok lexer.Token) string {
	if tok.Type == lexer.KEYWORD {
		return tok.Value.(string)
	}
	return symbolText[tok.Type]
}

func (p *Parser) binOp(leftFn func() (ast.Node, error), ops []opMatch, rightFn func() (ast.Node, error)) (ast.Node, error) {
	left, err := leftFn()
	if err != nil {
		return nil, err
	}

	for p.matchesAny(ops) {
		opTok := p.cur()
		opText := p.opText(opTok)
		p.advance()
		right, err := rightFn()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinOp(left, opText, right, sp(left.Span().Start, right.Span().End))
	}

	return left, nil
}
