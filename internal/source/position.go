// Package source tracks where a token or AST node came from: an offset into
// the original file, a line/column for humans, and a shared copy of the full
// source text so error snippets can slice out context without re-reading the
// file.
package source

import "strings"

// Position identifies one point in a source file. Every Position produced
// while compiling the same file shares the same FullText pointer, so slicing
// out a context line never touches disk again.
type Position struct {
	Index    int
	Line     int
	Column   int
	Filename string
	FullText string
}

// New returns the starting Position for a freshly loaded file.
func New(filename, fullText string) Position {
	return Position{Index: 0, Line: 0, Column: 0, Filename: filename, FullText: fullText}
}

// Advance moves the position past ch, tracking line/column resets on '\n'.
func (p Position) Advance(ch rune) Position {
	p.Index++
	p.Column++

	if ch == '\n' {
		p.Line++
		p.Column = 0
	}

	return p
}

// Line1 returns the 1-indexed line number for error messages.
func (p Position) Line1() int {
	return p.Line + 1
}

// SourceLine returns the text of the given 0-indexed line, or "" if out of range.
func (p Position) SourceLine(line int) string {
	lines := strings.Split(p.FullText, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return lines[line]
}

// Span is a half-open [Start, End) region of source, satisfying
// Start.Index <= End.Index per the language invariant.
type Span struct {
	Start Position
	End   Position
}
