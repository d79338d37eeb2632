// Package lexer turns MathScript source text into a flat token stream.
// Scanning follows the teacher's functional-options Lexer shape (New plus
// Option constructors), generalized to the language's smaller token set.
package lexer

import "github.com/mathscript-lang/mathscript/internal/source"

// TokenType identifies the lexical category of a Token.
type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF
	NEWLINE

	// Literals
	INTEGER
	DECIMAL
	COMPLEX
	STRING
	RAWSTRING
	IDENTIFIER
	KEYWORD

	// Operators
	PLUS
	MINUS
	MUL
	DIV
	POW
	SUBSCRIPT

	// Delimiters
	LPAREN
	RPAREN
	LSQUARE
	RSQUARE
	COMMA
	ARROW

	// Assignment / comparison
	EQ
	EE
	NE
	LT
	GT
	LTE
	GTE
)

var tokenNames = map[TokenType]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	NEWLINE:    "NEWLINE",
	INTEGER:    "INTEGER",
	DECIMAL:    "DECIMAL",
	COMPLEX:    "COMPLEX",
	STRING:     "STRING",
	RAWSTRING:  "RAWSTRING",
	IDENTIFIER: "IDENTIFIER",
	KEYWORD:    "KEYWORD",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	MUL:        "MUL",
	DIV:        "DIV",
	POW:        "POW",
	SUBSCRIPT:  "SUBSCRIPT",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LSQUARE:    "LSQUARE",
	RSQUARE:    "RSQUARE",
	COMMA:      "COMMA",
	ARROW:      "ARROW",
	EQ:         "EQ",
	EE:         "EE",
	NE:         "NE",
	LT:         "LT",
	GT:         "GT",
	LTE:        "LTE",
	GTE:        "GTE",
}

func (t TokenType) String() string {
	if n, ok := tokenNames[t]; ok {
		return n
	}
	return "UNKNOWN"
}

// Keywords lists every reserved identifier; anything else scans as IDENTIFIER.
var Keywords = map[string]bool{
	"and": true, "or": true, "not": true,
	"if": true, "elif": true, "else": true,
	"for": true, "to": true, "step": true, "while": true,
	"func": true, "then": true, "pass": true, "end": true,
	"return": true, "break": true, "continue": true,
}

// Token is one lexical unit: its kind, its literal Value (nil for
// punctuation), and the span of source it covers.
type Token struct {
	Type  TokenType
	Value any
	Span  source.Span
}

// Matches reports whether the token is a KEYWORD/IDENTIFIER with the given
// literal text, used by the parser the way the reference grammar checks
// tok.matches(TT_KEYWORD, 'end').
func (t Token) Matches(typ TokenType, value string) bool {
	s, ok := t.Value.(string)
	return t.Type == typ && ok && s == value
}

func (t Token) String() string {
	if t.Value != nil {
		return t.Type.String()
	}
	return t.Type.String()
}
