// Package ast defines the lightweight JSX-aware tree the parser façade
// builds from a tree-sitter concrete syntax tree. It captures exactly what
// domlower/ssrlower need — element/fragment/expression/text shape,
// attribute spellings, and raw source spans for everything else — and
// nothing more; non-JSX code is never represented here, only located.
package ast

import "github.com/vcrobe/jsxc/common"

// NodeKind discriminates the handful of JSX constructs the compiler lowers.
type NodeKind int

const (
	KindElement NodeKind = iota
	KindFragment
	KindExpressionContainer
	KindText
	KindSpreadChild
)

// Node is one JSX construct: an element, a fragment, a {expression} child,
// a run of text, or a {...spread} child.
type Node struct {
	Span common.Span

	kind NodeKind

	// Element / Fragment
	TagName     string
	Attrs       []Attribute
	Children    []*Node
	SelfClosing bool

	// ExpressionContainer / SpreadChild
	Expr *Expression

	// Text
	Text string
}

// NodeKindOf returns n's discriminant.
func (n *Node) NodeKindOf() NodeKind { return n.kind }

// NewElement constructs an element/fragment node.
func NewElement(tag string, span common.Span, selfClosing bool) *Node {
	k := KindElement
	if tag == "" {
		k = KindFragment
	}
	return &Node{kind: k, TagName: tag, Span: span, SelfClosing: selfClosing}
}

// NewText constructs a text node.
func NewText(text string, span common.Span) *Node {
	return &Node{kind: KindText, Text: text, Span: span}
}

// NewExpressionContainer wraps expr as a {expr} child.
func NewExpressionContainer(expr *Expression, span common.Span) *Node {
	return &Node{kind: KindExpressionContainer, Expr: expr, Span: span}
}

// NewSpreadChild wraps expr as a {...expr} child.
func NewSpreadChild(expr *Expression, span common.Span) *Node {
	return &Node{kind: KindSpreadChild, Expr: expr, Span: span}
}

// Attribute is one JSX attribute: either name="literal", name={expr}, or
// {...expr} (IsSpread true, Name empty).
type Attribute struct {
	Name     string
	IsSpread bool
	IsExpr   bool
	ValueText string // for literal: the unquoted string; for expr: raw source text
	Value    *Expression
	Span     common.Span
}

// Expression is the raw text of a JS expression span plus enough shape
// information for common.IsDynamic, and the JSX roots nested inside it
// (e.g. the <Item/> inside `items.map(i => <Item/>)`), each located by
// byte offsets relative to Text's start so lowering can splice their
// compiled replacements back in.
type Expression struct {
	Text  string
	Span  common.Span
	Shape *common.Expr

	// NestedJSX holds JSX roots found anywhere inside this expression,
	// in source order, each carrying offsets into Text.
	NestedJSX []*NestedJSX
}

// NestedJSX locates a JSX root embedded inside a larger expression and the
// lowered Node that root parses to.
type NestedJSX struct {
	OffsetStart, OffsetEnd int // byte offsets into the enclosing Expression.Text
	Node                   *Node
}

// Program is the result of parsing one source file: the raw source plus
// every top-level JSX root found in it (a JSX root is a JSX node with no
// JSX ancestor; anything nested inside one is reached via Expression's
// NestedJSX rather than listed again here).
type Program struct {
	Source []byte
	Roots  []*JSXRoot
}

// JSXRoot is one top-level JSX expression and its location in Program.Source.
type JSXRoot struct {
	Span common.Span
	Node *Node
}
