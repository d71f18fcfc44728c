package interpreter

import (
	"fmt"
	"strings"

	"largo/interpreter-go/pkg/ast"
	"largo/interpreter-go/pkg/runtime"
)

// ValueToString renders a value the way the read/print loop shows it:
// symbols as their name, numbers in shortest decimal form, lists as
// comma-joined elements in parens and functions as an opaque placeholder.
func ValueToString(val runtime.Value) string {
	switch v := val.(type) {
	case nil:
		return ""
	case runtime.SymbolValue:
		return v.Name
	case runtime.NumberValue:
		return ast.FormatNumber(v.Val)
	case runtime.ListValue:
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			parts = append(parts, ValueToString(item))
		}
		return "(" + strings.Join(parts, ",") + ")"
	case runtime.NativeFunctionValue:
		return fmt.Sprintf("<builtin %s>", v.Name)
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}
