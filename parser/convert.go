package parser

import (
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/vcrobe/jsxc/ast"
	"github.com/vcrobe/jsxc/common"
)

// converter carries the source bytes being walked; it has no other state,
// so a fresh one is created per Parse call.
type converter struct {
	src []byte
}

func (c *converter) text(n sitter.Node) string {
	return string(c.src[n.StartByte():n.EndByte()])
}

func (c *converter) span(n sitter.Node) common.Span {
	pt := n.StartPoint()
	return common.Span{
		Start: int(n.StartByte()),
		End:   int(n.EndByte()),
		Line:  int(pt.Row) + 1,
		Col:   int(pt.Column) + 1,
	}
}

func isJSXKind(t string) bool {
	switch t {
	case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
		return true
	default:
		return false
	}
}

// findJSXRoots walks n's whole subtree and returns every JSX node that has
// no JSX ancestor, i.e. the top-level JSX expressions embedded in ordinary
// JS/TS code. Nested JSX (inside a `{...}` expression or inside another
// JSX element) is reached separately, through Expression.NestedJSX and
// through Node.Children, so it is intentionally not revisited here.
func (c *converter) findJSXRoots(n sitter.Node) []sitter.Node {
	var roots []sitter.Node
	var visit func(sitter.Node)
	visit = func(n sitter.Node) {
		if isJSXKind(n.Type()) {
			roots = append(roots, n)
			return
		}
		cnt := n.ChildCount()
		for i := uint32(0); i < cnt; i++ {
			ch := n.Child(i)
			if ch != nil && !ch.IsNull() {
				visit(*ch)
			}
		}
	}
	visit(n)
	return roots
}

// convertJSXNode converts a jsx_element / jsx_self_closing_element /
// jsx_fragment tree-sitter node into an *ast.Node.
func (c *converter) convertJSXNode(n sitter.Node) *ast.Node {
	switch n.Type() {
	case "jsx_self_closing_element":
		tag, attrs := c.openingContents(n)
		node := ast.NewElement(tag, c.span(n), true)
		node.Attrs = attrs
		return node
	case "jsx_fragment":
		node := ast.NewElement("", c.span(n), false)
		node.Children = c.convertChildList(n)
		return node
	case "jsx_element":
		var tag string
		var attrs []ast.Attribute
		cnt := n.NamedChildCount()
		for i := uint32(0); i < cnt; i++ {
			child := *n.NamedChild(i)
			if child.Type() == "jsx_opening_element" {
				tag, attrs = c.openingContents(child)
				break
			}
		}
		node := ast.NewElement(tag, c.span(n), false)
		node.Attrs = attrs
		node.Children = c.convertChildList(n)
		return node
	default:
		// Shouldn't happen; callers only pass JSX kinds.
		return ast.NewText("", c.span(n))
	}
}

// openingContents extracts the tag name and attribute list from a
// jsx_opening_element or jsx_self_closing_element node.
func (c *converter) openingContents(n sitter.Node) (string, []ast.Attribute) {
	var tag string
	var attrs []ast.Attribute
	cnt := n.NamedChildCount()
	for i := uint32(0); i < cnt; i++ {
		child := *n.NamedChild(i)
		switch child.Type() {
		case "identifier", "nested_identifier", "jsx_namespace_name", "member_expression":
			if tag == "" {
				tag = c.tagName(child)
			}
		case "jsx_attribute":
			attrs = append(attrs, c.convertAttribute(child))
		case "jsx_expression":
			if argNode, ok := c.spreadArgumentNode(child); ok {
				attrs = append(attrs, ast.Attribute{
					IsSpread:  true,
					IsExpr:    true,
					ValueText: c.text(argNode),
					Value:     c.convertExpressionNode(argNode),
					Span:      c.span(child),
				})
			}
		}
	}
	return tag, attrs
}

// tagName renders an identifier / nested_identifier / jsx_namespace_name /
// member_expression node back into its dotted or namespaced spelling.
func (c *converter) tagName(n sitter.Node) string {
	switch n.Type() {
	case "identifier", "property_identifier":
		return c.text(n)
	case "jsx_namespace_name":
		parts := []string{}
		cnt := n.NamedChildCount()
		for i := uint32(0); i < cnt; i++ {
			parts = append(parts, c.text(*n.NamedChild(i)))
		}
		return strings.Join(parts, ":")
	case "nested_identifier", "member_expression":
		cnt := n.NamedChildCount()
		parts := make([]string, 0, cnt)
		for i := uint32(0); i < cnt; i++ {
			parts = append(parts, c.tagName(*n.NamedChild(i)))
		}
		return strings.Join(parts, ".")
	default:
		return c.text(n)
	}
}

// convertChildList converts the children of a jsx_element/jsx_fragment
// between its opening and closing tags.
func (c *converter) convertChildList(n sitter.Node) []*ast.Node {
	var out []*ast.Node
	cnt := n.NamedChildCount()
	for i := uint32(0); i < cnt; i++ {
		child := *n.NamedChild(i)
		switch child.Type() {
		case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
			out = append(out, c.convertJSXNode(child))
		case "jsx_text":
			text := c.text(child)
			if strings.TrimSpace(text) == "" && !strings.Contains(text, "\n") {
				continue
			}
			out = append(out, ast.NewText(text, c.span(child)))
		case "jsx_expression":
			out = append(out, c.convertJSXExpression(child))
		case "jsx_opening_element", "jsx_closing_element", "comment":
			// structural/non-content nodes, skip
		default:
			// Unknown named child inside JSX children; treat it as an
			// opaque expression container so nothing is silently lost.
			out = append(out, ast.NewExpressionContainer(c.convertExpressionNode(child), c.span(child)))
		}
	}
	return out
}

// convertJSXExpression converts a jsx_expression node (the `{...}` around a
// child expression, or an empty `{}`/comment-only container, or a spread
// `{...expr}`) into the matching ast.Node.
func (c *converter) convertJSXExpression(n sitter.Node) *ast.Node {
	cnt := n.NamedChildCount()
	if cnt == 0 {
		return ast.NewText("", c.span(n))
	}
	inner := *n.NamedChild(0)
	if inner.Type() == "spread_element" {
		if argNode, ok := c.spreadElementArgument(inner); ok {
			return ast.NewSpreadChild(c.convertExpressionNode(argNode), c.span(n))
		}
		return ast.NewSpreadChild(c.convertExpressionNode(inner), c.span(n))
	}
	return ast.NewExpressionContainer(c.convertExpressionNode(inner), c.span(n))
}

// spreadArgumentNode finds a `{...expr}` spread inside a jsx_expression
// node (used for spread attributes on an opening tag) and returns its
// argument node.
func (c *converter) spreadArgumentNode(jsxExpr sitter.Node) (sitter.Node, bool) {
	cnt := jsxExpr.NamedChildCount()
	for i := uint32(0); i < cnt; i++ {
		child := *jsxExpr.NamedChild(i)
		if child.Type() == "spread_element" {
			return c.spreadElementArgument(child)
		}
	}
	return sitter.Node{}, false
}

func (c *converter) spreadElementArgument(spread sitter.Node) (sitter.Node, bool) {
	if spread.NamedChildCount() == 0 {
		return sitter.Node{}, false
	}
	return *spread.NamedChild(0), true
}

// convertAttribute converts a jsx_attribute node into an ast.Attribute.
func (c *converter) convertAttribute(n sitter.Node) ast.Attribute {
	attr := ast.Attribute{Span: c.span(n)}
	cnt := n.NamedChildCount()
	if cnt == 0 {
		return attr
	}
	nameNode := *n.NamedChild(0)
	attr.Name = c.tagName(nameNode)
	if cnt < 2 {
		// Valueless boolean shorthand, e.g. <input disabled>.
		attr.ValueText = "true"
		attr.IsExpr = true
		attr.Value = &ast.Expression{Text: "true", Span: c.span(n), Shape: &common.Expr{Kind: common.ExprLiteral}}
		return attr
	}
	valueNode := *n.NamedChild(1)
	switch valueNode.Type() {
	case "string":
		attr.ValueText = unquoteJSXAttrString(c.text(valueNode))
		attr.IsExpr = false
	case "jsx_expression":
		inner := valueNode
		if valueNode.NamedChildCount() > 0 {
			inner = *valueNode.NamedChild(0)
		}
		attr.ValueText = c.text(inner)
		attr.IsExpr = true
		attr.Value = c.convertExpressionNode(inner)
	default:
		attr.ValueText = c.text(valueNode)
		attr.IsExpr = true
		attr.Value = c.convertExpressionNode(valueNode)
	}
	return attr
}

func unquoteJSXAttrString(raw string) string {
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}

// convertExpressionNode builds an *ast.Expression from a JS expression
// tree-sitter node: its raw source text, a classification shape for
// common.IsDynamic, and any JSX roots nested inside it.
func (c *converter) convertExpressionNode(n sitter.Node) *ast.Expression {
	expr := &ast.Expression{
		Text:  c.text(n),
		Span:  c.span(n),
		Shape: c.classify(n),
	}
	base := int(n.StartByte())
	var visit func(sitter.Node)
	visit = func(m sitter.Node) {
		if isJSXKind(m.Type()) {
			node := c.convertJSXNode(m)
			expr.NestedJSX = append(expr.NestedJSX, &ast.NestedJSX{
				OffsetStart: int(m.StartByte()) - base,
				OffsetEnd:   int(m.EndByte()) - base,
				Node:        node,
			})
			return
		}
		cnt := m.ChildCount()
		for i := uint32(0); i < cnt; i++ {
			ch := m.Child(i)
			if ch != nil && !ch.IsNull() {
				visit(*ch)
			}
		}
	}
	cnt := n.ChildCount()
	for i := uint32(0); i < cnt; i++ {
		ch := n.Child(i)
		if ch != nil && !ch.IsNull() {
			visit(*ch)
		}
	}
	return expr
}

// classify maps a tree-sitter node onto the coarse common.Expr shape
// common.IsDynamic needs, recursing into binary/unary operands and
// object/array elements.
func (c *converter) classify(n sitter.Node) *common.Expr {
	switch n.Type() {
	case "string", "number", "true", "false", "null", "undefined":
		return &common.Expr{Kind: common.ExprLiteral, Text: c.text(n)}
	case "template_string":
		if n.NamedChildCount() == 0 {
			return &common.Expr{Kind: common.ExprStaticTemplateLiteral, Text: c.text(n)}
		}
		hasSubstitution := false
		cnt := n.NamedChildCount()
		for i := uint32(0); i < cnt; i++ {
			if n.NamedChild(i).Type() == "template_substitution" {
				hasSubstitution = true
				break
			}
		}
		if !hasSubstitution {
			return &common.Expr{Kind: common.ExprStaticTemplateLiteral, Text: c.text(n)}
		}
		return &common.Expr{Kind: common.ExprOther, Text: c.text(n)}
	case "call_expression":
		return &common.Expr{Kind: common.ExprCall, Text: c.text(n)}
	case "new_expression":
		return &common.Expr{Kind: common.ExprNew, Text: c.text(n)}
	case "member_expression", "subscript_expression":
		return &common.Expr{Kind: common.ExprMember, Text: c.text(n)}
	case "identifier", "this":
		return &common.Expr{Kind: common.ExprIdentifier, Text: c.text(n)}
	case "ternary_expression":
		return &common.Expr{Kind: common.ExprConditional, Text: c.text(n)}
	case "binary_expression":
		operands := c.binaryOperands(n)
		if isLogicalOperator(c.operatorOf(n)) {
			return &common.Expr{Kind: common.ExprLogical, Text: c.text(n), Operands: operands}
		}
		return &common.Expr{Kind: common.ExprBinary, Text: c.text(n), Operands: operands}
	case "unary_expression":
		var operands []*common.Expr
		if n.NamedChildCount() > 0 {
			operands = []*common.Expr{c.classify(*n.NamedChild(n.NamedChildCount() - 1))}
		}
		return &common.Expr{Kind: common.ExprUnary, Text: c.text(n), Operands: operands}
	case "arrow_function", "function", "function_expression":
		return &common.Expr{Kind: common.ExprArrowOrFunction, Text: c.text(n)}
	case "object":
		return &common.Expr{Kind: common.ExprObject, Text: c.text(n), Elements: c.objectPropertyValues(n)}
	case "array":
		return &common.Expr{Kind: common.ExprArray, Text: c.text(n), Elements: c.arrayElements(n)}
	case "parenthesized_expression":
		if n.NamedChildCount() > 0 {
			return c.classify(*n.NamedChild(0))
		}
		return &common.Expr{Kind: common.ExprOther, Text: c.text(n)}
	default:
		return &common.Expr{Kind: common.ExprOther, Text: c.text(n)}
	}
}

func (c *converter) operatorOf(n sitter.Node) string {
	cnt := n.ChildCount()
	for i := uint32(0); i < cnt; i++ {
		ch := n.Child(i)
		if ch == nil || ch.IsNull() || ch.NamedChildCount() > 0 {
			continue
		}
		t := c.text(*ch)
		switch t {
		case "&&", "||", "??":
			return t
		}
	}
	return ""
}

func isLogicalOperator(op string) bool {
	return op == "&&" || op == "||" || op == "??"
}

func (c *converter) binaryOperands(n sitter.Node) []*common.Expr {
	cnt := n.NamedChildCount()
	if cnt < 2 {
		return nil
	}
	return []*common.Expr{c.classify(*n.NamedChild(0)), c.classify(*n.NamedChild(cnt - 1))}
}

func (c *converter) objectPropertyValues(n sitter.Node) []*common.Expr {
	var out []*common.Expr
	cnt := n.NamedChildCount()
	for i := uint32(0); i < cnt; i++ {
		prop := *n.NamedChild(i)
		switch prop.Type() {
		case "pair":
			if prop.NamedChildCount() >= 2 {
				out = append(out, c.classify(*prop.NamedChild(prop.NamedChildCount()-1)))
			}
		case "spread_element":
			if prop.NamedChildCount() > 0 {
				out = append(out, c.classify(*prop.NamedChild(0)))
			}
		case "shorthand_property_identifier":
			out = append(out, &common.Expr{Kind: common.ExprIdentifier, Text: c.text(prop)})
		case "method_definition":
			out = append(out, &common.Expr{Kind: common.ExprArrowOrFunction, Text: c.text(prop)})
		}
	}
	return out
}

// arrayElements classifies each element of an array literal. Elisions
// ([, , x]) never appear as named children in the grammar, so they are
// skipped implicitly rather than producing an ExprElision node; is_dynamic
// treats a hole as static anyway, so the omission changes nothing.
func (c *converter) arrayElements(n sitter.Node) []*common.Expr {
	var out []*common.Expr
	cnt := n.NamedChildCount()
	for i := uint32(0); i < cnt; i++ {
		el := *n.NamedChild(i)
		switch el.Type() {
		case "spread_element":
			if el.NamedChildCount() > 0 {
				out = append(out, c.classify(*el.NamedChild(0)))
			}
		default:
			out = append(out, c.classify(el))
		}
	}
	return out
}
