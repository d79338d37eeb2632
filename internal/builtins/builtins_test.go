package builtins

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mathscript-lang/mathscript/internal/value"
)

func TestNamesMatchesRegisteredSpecs(t *testing.T) {
	for _, name := range Names() {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Names() lists %q but Lookup found nothing for it", name)
		}
	}
}

func TestDefaultContextWiresRealProcessIO(t *testing.T) {
	ctx := DefaultContext()
	if ctx.Stdout == nil || ctx.Stdin == nil || ctx.Exit == nil {
		t.Error("DefaultContext should populate Stdout, Stdin and Exit")
	}
}

func TestPrintWritesValueAndNewline(t *testing.T) {
	var out bytes.Buffer
	ctx := &Context{Stdout: &out}
	spec, _ := Lookup("print")
	_, err := spec.Fn(ctx, map[string]value.Value{
		"value":    value.NewString("hi"),
		"sep":      value.NewNull(),
		"end_char": value.NewNull(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "hi\n" {
		t.Errorf("got %q, want %q", out.String(), "hi\n")
	}
}

func TestPrintJoinsListWithSeparator(t *testing.T) {
	var out bytes.Buffer
	ctx := &Context{Stdout: &out}
	spec, _ := Lookup("print")
	list := value.NewList([]value.Value{value.NewIntegerInt64(1), value.NewIntegerInt64(2), value.NewIntegerInt64(3)})
	_, err := spec.Fn(ctx, map[string]value.Value{
		"value":    list,
		"sep":      value.NewString(", "),
		"end_char": value.NewNull(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "1, 2, 3\n" {
		t.Errorf("got %q, want %q", out.String(), "1, 2, 3\n")
	}
}

func TestPrintEndCharOverridesNewline(t *testing.T) {
	var out bytes.Buffer
	ctx := &Context{Stdout: &out}
	spec, _ := Lookup("print")
	_, err := spec.Fn(ctx, map[string]value.Value{
		"value":    value.NewString("x"),
		"sep":      value.NewNull(),
		"end_char": value.NewString("!"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "x!" {
		t.Errorf("got %q, want %q", out.String(), "x!")
	}
}

func TestTypeReportsConcreteKind(t *testing.T) {
	spec, _ := Lookup("type")
	result, err := spec.Fn(nil, map[string]value.Value{"obj": value.NewString("s")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.String() != "String" {
		t.Errorf("got %s, want String", result.String())
	}
}

func TestExitCallsCtxExitWithCode(t *testing.T) {
	var gotCode int
	var called bool
	var out bytes.Buffer
	ctx := &Context{Stdout: &out, Exit: func(code int) {
		called = true
		gotCode = code
	}}
	spec, _ := Lookup("exit")
	_, err := spec.Fn(ctx, map[string]value.Value{"code": value.NewIntegerInt64(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called || gotCode != 3 {
		t.Errorf("expected Exit(3) to be called, got called=%v code=%d", called, gotCode)
	}
}

func TestExitWithNoCodeDefaultsToZero(t *testing.T) {
	var gotCode int
	ctx := &Context{Exit: func(code int) { gotCode = code }}
	spec, _ := Lookup("exit")
	_, err := spec.Fn(ctx, map[string]value.Value{"code": value.NewNull()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCode != 0 {
		t.Errorf("got code %d, want 0", gotCode)
	}
}

func TestLengthOfStringCountsRunesNotBytes(t *testing.T) {
	spec, _ := Lookup("length")
	result, err := spec.Fn(nil, map[string]value.Value{"iterable": value.NewString("héllo")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.String() != "5" {
		t.Errorf("got %s, want 5", result.String())
	}
}

func TestLengthOfListCountsElements(t *testing.T) {
	spec, _ := Lookup("length")
	list := value.NewList([]value.Value{value.NewIntegerInt64(1), value.NewIntegerInt64(2)})
	result, err := spec.Fn(nil, map[string]value.Value{"iterable": list})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.String() != "2" {
		t.Errorf("got %s, want 2", result.String())
	}
}

func TestLengthRejectsNonIterable(t *testing.T) {
	spec, _ := Lookup("length")
	_, err := spec.Fn(nil, map[string]value.Value{"iterable": value.NewIntegerInt64(5)})
	if err == nil {
		t.Error("expected an error for length(5)")
	}
}

func TestExecRunsInlineSourceThroughInjectedRunFile(t *testing.T) {
	var seenFilename, seenCode string
	ctx := &Context{
		RunFile: func(filename, source string) (value.Value, error) {
			seenFilename, seenCode = filename, source
			return value.NewIntegerInt64(42), nil
		},
	}
	spec, _ := Lookup("exec")
	_, err := spec.Fn(ctx, map[string]value.Value{"code_or_filename": value.NewString("1 + 1")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seenFilename != "<code>" || seenCode != "1 + 1" {
		t.Errorf("got filename=%q code=%q", seenFilename, seenCode)
	}
}

func TestExecWithoutRunFileIsAnError(t *testing.T) {
	ctx := &Context{}
	spec, _ := Lookup("exec")
	_, err := spec.Fn(ctx, map[string]value.Value{"code_or_filename": value.NewString("1 + 1")})
	if err == nil {
		t.Error("expected an error when Context.RunFile is nil")
	}
}

func TestExecRejectsNonStringArgument(t *testing.T) {
	spec, _ := Lookup("exec")
	_, err := spec.Fn(&Context{}, map[string]value.Value{"code_or_filename": value.NewIntegerInt64(1)})
	if err == nil || !strings.Contains(err.Error(), "String") {
		t.Errorf("expected a 'must be a String' error, got %v", err)
	}
}

func TestSinAndCosOfZero(t *testing.T) {
	sinSpec, _ := Lookup("sin")
	result, err := sinSpec.Fn(nil, map[string]value.Value{"theta": value.NewIntegerInt64(0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.String(), "0.0") {
		t.Errorf("sin(0) = %s, want a real and imaginary part of 0.0", result.String())
	}

	cosSpec, _ := Lookup("cos")
	result, err = cosSpec.Fn(nil, map[string]value.Value{"theta": value.NewIntegerInt64(0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.String(), "1.0") {
		t.Errorf("cos(0) = %s, want a real part of 1.0", result.String())
	}
}
