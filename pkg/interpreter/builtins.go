package interpreter

import (
	"largo/interpreter-go/pkg/reason"
	"largo/interpreter-go/pkg/runtime"
)

// DefaultEnvironment returns a fresh environment holding the builtin
// operators.
func DefaultEnvironment() *runtime.Environment {
	env := runtime.NewEnvironment()
	registerBuiltins(env)
	return env
}

func registerBuiltins(env *runtime.Environment) {
	env.Define("+", runtime.NativeFunctionValue{Name: "+", Impl: builtinAdd})
	env.Define("-", runtime.NativeFunctionValue{Name: "-", Impl: builtinSubtract})
}

func builtinAdd(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	nums, err := numberArgs(args)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return runtime.NumberValue{Val: sum}, nil
}

// builtinSubtract folds as first - sum(rest). A single argument comes back
// unchanged; it does not negate.
func builtinSubtract(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	nums, err := numberArgs(args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, reason.New("`-` requires at least one operand")
	}
	rest := 0.0
	for _, n := range nums[1:] {
		rest += n
	}
	return runtime.NumberValue{Val: nums[0] - rest}, nil
}

func numberArgs(args []runtime.Value) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, arg := range args {
		num, ok := arg.(runtime.NumberValue)
		if !ok {
			return nil, reason.New("expected a number")
		}
		out = append(out, num.Val)
	}
	return out, nil
}
