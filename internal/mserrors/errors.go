// Package mserrors formats MathScript's four error kinds with source context
// and, for runtime errors, a call-stack traceback. It mirrors the teacher's
// internal/errors.CompilerError (caret-underlined snippets, word-wrapped
// details) generalized to the language's own error taxonomy.
package mserrors

import (
	"fmt"
	"strings"

	"github.com/mathscript-lang/mathscript/internal/source"
)

// Kind tags which of the four error categories a Error value belongs to.
type Kind string

const (
	IllegalCharacter Kind = "Illegal Character"
	ExpectedCharacter Kind = "Expected Character"
	InvalidSyntax     Kind = "Invalid Syntax"
	RuntimeErrorKind  Kind = "Runtime Error"
)

// Error is a single compile-time or run-time failure with its source span.
// Runtime errors additionally carry Frames, a call-context chain used to
// render a traceback the way Python tracebacks do.
type Error struct {
	Kind    Kind
	Start   source.Position
	End     source.Position
	Details string
	Frames  []Frame
}

// Frame is one entry in a runtime traceback: where execution was (Pos) and
// which function/program display name it was executing in.
type Frame struct {
	Pos         source.Position
	DisplayName string
}

// New builds a compile-time error (no call-stack frames).
func New(kind Kind, start, end source.Position, details string) *Error {
	return &Error{Kind: kind, Start: start, End: end, Details: wordWrap(details, 60)}
}

// NewRuntime builds a runtime error carrying the call-stack frames active at
// the point of failure, innermost frame last (Python convention: the
// traceback's "most recent call last").
func NewRuntime(start, end source.Position, details string, frames []Frame) *Error {
	return &Error{Kind: RuntimeErrorKind, Start: start, End: end, Details: wordWrap(details, 60), Frames: frames}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Format()
}

// Format renders the full, human-facing error: header, optional traceback,
// message, and caret-underlined snippet — matching spec.md §6 exactly.
func (e *Error) Format() string {
	var sb strings.Builder

	if e.Kind == RuntimeErrorKind {
		sb.WriteString(e.traceback())
	}

	sb.WriteString(fmt.Sprintf("%s: %s\n", e.Kind, e.Details))

	if e.Kind != RuntimeErrorKind {
		sb.WriteString(fmt.Sprintf("File %s, line %d at column %d", e.Start.Filename, e.Start.Line1(), e.Start.Column))
	}

	sb.WriteString("\n\n")
	sb.WriteString(source.StringWithArrows(e.Start.FullText, e.Start, e.End))

	return sb.String()
}

// traceback renders "Traceback (most recent call last):" followed by one
// "File ..., line ..., in ..." line per frame, oldest call first.
func (e *Error) traceback() string {
	var sb strings.Builder
	sb.WriteString("Traceback (most recent call last):\n")

	for _, f := range e.Frames {
		sb.WriteString(fmt.Sprintf("  File %s, line %d, in %s\n", f.Pos.Filename, f.Pos.Line1(), f.DisplayName))
	}

	return sb.String()
}

// wordWrap breaks details into lines of at most width characters, breaking
// only at word boundaries, matching the original's Error.__init__ wrapper.
func wordWrap(details string, width int) string {
	words := strings.Fields(details)
	if len(words) == 0 {
		return details
	}

	var lines []string
	var current strings.Builder
	count := 0

	for _, w := range words {
		if count+len(w) > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
			count = 0
		}
		if current.Len() > 0 {
			current.WriteString(" ")
			count++
		}
		current.WriteString(w)
		count += len(w)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return strings.Join(lines, "\n")
}
