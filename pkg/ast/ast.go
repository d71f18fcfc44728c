package ast

import (
	"strconv"
	"strings"
)

// NodeType names the concrete node variant; it is the "type" field in JSON.
type NodeType string

const (
	NodeSymbol NodeType = "Symbol"
	NodeNumber NodeType = "Number"
	NodeList   NodeType = "List"
)

// Node is implemented by every syntax tree node. The set is closed: only the
// types in this package satisfy it.
type Node interface {
	NodeType() NodeType
	String() string
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

// Expression is any node that can appear as a program form or list item.
type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Atom is a leaf expression: a Symbol or a Number.
type Atom interface {
	Expression
	atomNode()
}

type atomMarker struct{}

func (atomMarker) atomNode() {}

// Symbol is any token that is not a number or a paren, kept verbatim.
type Symbol struct {
	nodeImpl
	expressionMarker
	atomMarker

	Name string `json:"name"`
}

// NewSymbol returns a symbol node for name.
func NewSymbol(name string) *Symbol {
	return &Symbol{nodeImpl: newNodeImpl(NodeSymbol), Name: name}
}

func (s *Symbol) String() string { return s.Name }

// Number is a numeric literal held as a float64.
type Number struct {
	nodeImpl
	expressionMarker
	atomMarker

	Value float64 `json:"value"`
}

// NewNumber returns a number node.
func NewNumber(value float64) *Number {
	return &Number{nodeImpl: newNodeImpl(NodeNumber), Value: value}
}

func (n *Number) String() string { return FormatNumber(n.Value) }

// List is a compound form; Items[0] is the operator position. An empty list
// is a legal tree that fails at evaluation time.
type List struct {
	nodeImpl
	expressionMarker

	Items []Expression `json:"items"`
}

// NewList wraps items in a list node. A nil slice becomes an empty one.
func NewList(items []Expression) *List {
	if items == nil {
		items = []Expression{}
	}
	return &List{nodeImpl: newNodeImpl(NodeList), Items: items}
}

// String renders the list with comma-joined elements, e.g. (+,1,2).
func (l *List) String() string {
	parts := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		parts = append(parts, item.String())
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// FormatNumber renders a float in shortest decimal form without exponent.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
