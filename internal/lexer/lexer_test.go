package lexer

import "testing"

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestTokenizeLiterals(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		typ     TokenType
		value   any
	}{
		{"integer", "42", INTEGER, "42"},
		{"decimal", "3.14", DECIMAL, "3.14"},
		{"complex with magnitude", "3i", COMPLEX, "3"},
		{"identifier", "radius", IDENTIFIER, "radius"},
		{"keyword", "return", KEYWORD, "return"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tokens, err := Tokenize("<test>", c.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tokens) != 2 || tokens[1].Type != EOF {
				t.Fatalf("expected one token + EOF, got %v", tokenTypes(tokens))
			}
			if tokens[0].Type != c.typ {
				t.Errorf("got type %s, want %s", tokens[0].Type, c.typ)
			}
			if tokens[0].Value != c.value {
				t.Errorf("got value %v, want %v", tokens[0].Value, c.value)
			}
		})
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	tokens, err := Tokenize("<test>", `"a\nb\tc\"d"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Type != STRING {
		t.Fatalf("expected STRING, got %s", tokens[0].Type)
	}
	want := "a\nb\tc\"d"
	if tokens[0].Value != want {
		t.Errorf("got %q, want %q", tokens[0].Value, want)
	}
}

func TestTokenizeRawStringLeavesEscapesUntouched(t *testing.T) {
	tokens, err := Tokenize("<test>", "`a\\nb`")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Type != RAWSTRING {
		t.Fatalf("expected RAWSTRING, got %s", tokens[0].Type)
	}
	if tokens[0].Value != `a\nb` {
		t.Errorf("raw string escapes should survive verbatim: got %q", tokens[0].Value)
	}
}

func TestTokenizeInvalidEscapeIsIllegalCharacter(t *testing.T) {
	_, err := Tokenize("<test>", `"a\qb"`)
	if err == nil {
		t.Fatal("expected an error for an unknown escape sequence")
	}
}

func TestTokenizeOperatorsAndDelimiters(t *testing.T) {
	tokens, err := Tokenize("<test>", "+-*/^_()[],==!=<><=>== =>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TokenType{
		PLUS, MINUS, MUL, DIV, POW, SUBSCRIPT, LPAREN, RPAREN, LSQUARE, RSQUARE, COMMA,
		EE, NE, LT, GT, LTE, GTE, EQ, ARROW, EOF,
	}
	got := tokenTypes(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenizeCommentsAreSkipped(t *testing.T) {
	tokens, err := Tokenize("<test>", "1 # a comment\n2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := tokenTypes(tokens)
	want := []TokenType{INTEGER, NEWLINE, INTEGER, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	_, err := Tokenize("<test>", "1 @ 2")
	if err == nil {
		t.Fatal("expected an illegal character error for '@'")
	}
}

func TestTokenizeKeywordsAreCaseSensitive(t *testing.T) {
	// The grammar's keywords are lowercase only; differently cased spellings
	// scan as plain identifiers rather than matching a keyword.
	tokens, err := Tokenize("<test>", "RETURN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Type != IDENTIFIER {
		t.Errorf("expected IDENTIFIER for 'RETURN', got %s", tokens[0].Type)
	}
}
