package interpreter

import (
	"testing"

	"largo/interpreter-go/pkg/ast"
	"largo/interpreter-go/pkg/parser"
	"largo/interpreter-go/pkg/reason"
	"largo/interpreter-go/pkg/runtime"
)

func mustRead(t *testing.T, src string) ast.Expression {
	t.Helper()
	expr, _, err := parser.Read(src)
	if err != nil {
		t.Fatalf("read %q: %v", src, err)
	}
	return expr
}

func evalSource(t *testing.T, src string) (runtime.Value, error) {
	t.Helper()
	interp := New()
	return interp.Evaluate(mustRead(t, src), interp.GlobalEnvironment())
}

func expectNumber(t *testing.T, val runtime.Value, want float64) {
	t.Helper()
	num, ok := val.(runtime.NumberValue)
	if !ok {
		t.Fatalf("expected number %v, got %#v", want, val)
	}
	if num.Val != want {
		t.Fatalf("expected number %v, got %v", want, num.Val)
	}
}

func expectReason(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if !reason.Is(err) {
		t.Fatalf("expected reason error, got %T (%v)", err, err)
	}
	if got := reason.Message(err); got != want {
		t.Fatalf("expected reason %q, got %q", want, got)
	}
}
