package runtime

import (
	"strings"
	"testing"

	"largo/interpreter-go/pkg/ast"
	"largo/interpreter-go/pkg/reason"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindSymbol:         "symbol",
		KindNumber:         "number",
		KindList:           "list",
		KindNativeFunction: "native_function",
		Kind(42):           "unknown_kind_42",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}

func TestNativeFunctionCall(t *testing.T) {
	fn := NativeFunctionValue{
		Name: "count",
		Impl: func(_ *NativeCallContext, args []Value) (Value, error) {
			return NumberValue{Val: float64(len(args))}, nil
		},
	}
	var callable Callable = fn
	val, err := callable.Call(&NativeCallContext{}, []Value{NumberValue{}, NumberValue{}})
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if num, ok := val.(NumberValue); !ok || num.Val != 2 {
		t.Fatalf("unexpected result %#v", val)
	}
}

func TestNativeFunctionWithoutImpl(t *testing.T) {
	_, err := NativeFunctionValue{Name: "broken"}.Call(nil, nil)
	if err == nil || !strings.Contains(err.Error(), "broken") {
		t.Fatalf("expected error naming the function, got %v", err)
	}
	if !reason.Is(err) {
		t.Fatalf("expected reason error, got %T", err)
	}
	if got := reason.Message(err); got != "native function broken has no implementation" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestFromExpression(t *testing.T) {
	val := FromExpression(ast.L(ast.Sym("+"), ast.Num(1), ast.L()))
	list, ok := val.(ListValue)
	if !ok || len(list.Items) != 3 {
		t.Fatalf("expected three-item list, got %#v", val)
	}
	if sym, ok := list.Items[0].(SymbolValue); !ok || sym.Name != "+" {
		t.Fatalf("unexpected operator %#v", list.Items[0])
	}
	if num, ok := list.Items[1].(NumberValue); !ok || num.Val != 1 {
		t.Fatalf("unexpected number %#v", list.Items[1])
	}
	if inner, ok := list.Items[2].(ListValue); !ok || len(inner.Items) != 0 {
		t.Fatalf("unexpected inner list %#v", list.Items[2])
	}
}
