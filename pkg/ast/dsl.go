package ast

// Tree construction helpers used by tests and callers building forms by hand.

// Sym is shorthand for NewSymbol.
func Sym(name string) *Symbol {
	return NewSymbol(name)
}

// Num is shorthand for NewNumber.
func Num(value float64) *Number {
	return NewNumber(value)
}

// L builds a list from its arguments.
func L(items ...Expression) *List {
	return NewList(items)
}

// Call builds (op args...) with a symbol operator.
func Call(op string, args ...Expression) *List {
	items := make([]Expression, 0, len(args)+1)
	items = append(items, Sym(op))
	items = append(items, args...)
	return NewList(items)
}
