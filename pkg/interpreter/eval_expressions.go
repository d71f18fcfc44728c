package interpreter

import (
	"largo/interpreter-go/pkg/ast"
	"largo/interpreter-go/pkg/reason"
	"largo/interpreter-go/pkg/runtime"
)

// Evaluate reduces a syntax tree to a value. Symbols resolve through env,
// numbers evaluate to themselves and lists are calls whose operator must
// resolve to a callable.
func (i *Interpreter) Evaluate(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Symbol:
		return lookupSymbol(n.Name, env)
	case *ast.Number:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.List:
		if len(n.Items) == 0 {
			return nil, reason.New("expected non-empty list")
		}
		op, err := i.Evaluate(n.Items[0], env)
		if err != nil {
			return nil, err
		}
		callee, ok := op.(runtime.Callable)
		if !ok {
			return nil, reason.New("operator must be a function")
		}
		args := make([]runtime.Value, 0, len(n.Items)-1)
		for _, item := range n.Items[1:] {
			val, err := i.Evaluate(item, env)
			if err != nil {
				return nil, err
			}
			args = append(args, val)
		}
		return callee.Call(&runtime.NativeCallContext{Env: env}, args)
	default:
		return nil, reason.Newf("unsupported expression %T", node)
	}
}

// EvaluateValue evaluates a runtime value placed in expression position.
// It follows the same rules as Evaluate; a bare function value is not
// evaluable.
func (i *Interpreter) EvaluateValue(val runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	switch v := val.(type) {
	case runtime.SymbolValue:
		return lookupSymbol(v.Name, env)
	case runtime.NumberValue:
		return v, nil
	case runtime.ListValue:
		if len(v.Items) == 0 {
			return nil, reason.New("expected non-empty list")
		}
		op, err := i.EvaluateValue(v.Items[0], env)
		if err != nil {
			return nil, err
		}
		callee, ok := op.(runtime.Callable)
		if !ok {
			return nil, reason.New("operator must be a function")
		}
		args := make([]runtime.Value, 0, len(v.Items)-1)
		for _, item := range v.Items[1:] {
			arg, err := i.EvaluateValue(item, env)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return callee.Call(&runtime.NativeCallContext{Env: env}, args)
	case runtime.Callable:
		return nil, reason.New("cannot evaluate a function")
	default:
		return nil, reason.Newf("unsupported value %T", val)
	}
}

func lookupSymbol(name string, env *runtime.Environment) (runtime.Value, error) {
	if env == nil {
		return nil, reason.Newf("unexpected symbol `%s`", name)
	}
	return env.Get(name)
}
