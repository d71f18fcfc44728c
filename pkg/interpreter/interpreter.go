package interpreter

import (
	"largo/interpreter-go/pkg/ast"
	"largo/interpreter-go/pkg/parser"
	"largo/interpreter-go/pkg/runtime"
)

// Interpreter evaluates parsed largo expressions against a global
// environment. It holds no other state between evaluations.
type Interpreter struct {
	global *runtime.Environment
}

// New returns an interpreter whose global environment holds the builtins.
func New() *Interpreter {
	return &Interpreter{global: DefaultEnvironment()}
}

// NewWithEnvironment returns an interpreter over a caller-supplied table.
func NewWithEnvironment(env *runtime.Environment) *Interpreter {
	if env == nil {
		env = runtime.NewEnvironment()
	}
	return &Interpreter{global: env}
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// EvaluateString reads the first expression in src and evaluates it in the
// global environment. Tokens after that expression are ignored.
func (i *Interpreter) EvaluateString(src string) (runtime.Value, error) {
	expr, _, err := parser.Read(src)
	if err != nil {
		return nil, err
	}
	return i.Evaluate(expr, i.global)
}

// EvaluateProgram evaluates every top-level expression in src in order and
// returns their results. It stops at the first failure.
func (i *Interpreter) EvaluateProgram(src string) ([]runtime.Value, error) {
	forms, err := ReadAll(src)
	if err != nil {
		return nil, err
	}
	results := make([]runtime.Value, 0, len(forms))
	for _, form := range forms {
		val, err := i.Evaluate(form, i.global)
		if err != nil {
			return nil, err
		}
		results = append(results, val)
	}
	return results, nil
}

// ReadAll parses every top-level expression in src.
func ReadAll(src string) ([]ast.Expression, error) {
	tokens := parser.Tokenize(src)
	forms := make([]ast.Expression, 0)
	for len(tokens) > 0 {
		expr, rest, err := parser.Parse(tokens)
		if err != nil {
			return nil, err
		}
		forms = append(forms, expr)
		tokens = rest
	}
	return forms, nil
}
