package runtime

import (
	"fmt"

	"largo/interpreter-go/pkg/ast"
	"largo/interpreter-go/pkg/reason"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindSymbol Kind = iota
	KindNumber
	KindList
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "symbol"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	case KindNativeFunction:
		return "native_function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Data
//-----------------------------------------------------------------------------

type SymbolValue struct {
	Name string
}

func (v SymbolValue) Kind() Kind { return KindSymbol }

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type ListValue struct {
	Items []Value
}

func (v ListValue) Kind() Kind { return KindList }

//-----------------------------------------------------------------------------
// Functions
//-----------------------------------------------------------------------------

// Callable is anything the evaluator may apply in operator position.
type Callable interface {
	Value
	Call(ctx *NativeCallContext, args []Value) (Value, error)
}

// NativeCallContext provides hooks for native functions.
type NativeCallContext struct {
	Env *Environment
}

type NativeFunc func(*NativeCallContext, []Value) (Value, error)

// NativeFunctionValue wraps a Go implementation. Argument checking is the
// implementation's job.
type NativeFunctionValue struct {
	Name string
	Impl NativeFunc
}

func (v NativeFunctionValue) Kind() Kind { return KindNativeFunction }

func (v NativeFunctionValue) Call(ctx *NativeCallContext, args []Value) (Value, error) {
	if v.Impl == nil {
		return nil, reason.Newf("native function %s has no implementation", v.Name)
	}
	return v.Impl(ctx, args)
}

//-----------------------------------------------------------------------------
// Utility helpers
//-----------------------------------------------------------------------------

// FromExpression converts a syntax tree into the equivalent data value
// without evaluating it.
func FromExpression(expr ast.Expression) Value {
	switch e := expr.(type) {
	case *ast.Symbol:
		return SymbolValue{Name: e.Name}
	case *ast.Number:
		return NumberValue{Val: e.Value}
	case *ast.List:
		items := make([]Value, 0, len(e.Items))
		for _, item := range e.Items {
			items = append(items, FromExpression(item))
		}
		return ListValue{Items: items}
	default:
		panic(fmt.Sprintf("runtime: unknown expression %T", expr))
	}
}
